package models

// Question categories in the global catalog.
const (
	CategoryFacilitator = "facilitator"
	CategoryProcess     = "process"
)

// --- GlobalQuestion ---
// A reusable question template. Copied by value into new trainings,
// never referenced live.
type GlobalQuestion struct {
	ID        string       `bson:"_id" json:"id"`
	Label     string       `bson:"label" json:"label"`
	Type      QuestionType `bson:"type" json:"type"`
	Category  string       `bson:"category" json:"category"`
	IsDefault bool         `bson:"isDefault" json:"isDefault"`
}
