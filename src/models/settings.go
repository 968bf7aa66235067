package models

// --- AppSettings ---
// Singleton record. Overwritten wholesale on save.
type AppSettings struct {
	WaAPIKey  string `bson:"waApiKey" json:"waApiKey"`
	WaBaseURL string `bson:"waBaseUrl" json:"waBaseUrl"`
	WaFooter  string `bson:"waFooter" json:"waFooter"`
}
