package models

// --- Contact ---
// Autocomplete source when adding a facilitator; copied by value.
type Contact struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Whatsapp string `bson:"whatsapp" json:"whatsapp"`
}
