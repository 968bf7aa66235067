package models

// Response target types.
const (
	ResponseFacilitator = "facilitator"
	ResponseProcess     = "process"

	// ProcessTargetName labels process evaluations, which have no facilitator.
	ProcessTargetName = "Proses Penyelenggaraan"
)

// --- Response ---
// Append-only: never mutated after creation. Answers map question id to a
// number (star/slider) or a string (text).
type Response struct {
	ID            string                 `bson:"_id" json:"id"`
	TrainingID    string                 `bson:"trainingId" json:"trainingId"`
	Type          string                 `bson:"type" json:"type"`
	TargetName    string                 `bson:"targetName,omitempty" json:"targetName,omitempty"`
	TargetSubject string                 `bson:"targetSubject,omitempty" json:"targetSubject,omitempty"`
	Answers       map[string]interface{} `bson:"answers" json:"answers"`
	Timestamp     int64                  `bson:"timestamp" json:"timestamp"`
}
