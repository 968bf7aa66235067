package models

// QuestionType of a rating question.
type QuestionType string

const (
	QuestionStar   QuestionType = "star"   // 1-5 discrete
	QuestionSlider QuestionType = "slider" // 0-100 continuous
	QuestionText   QuestionType = "text"   // free-form
)

// --- Question ---
type Question struct {
	ID    string       `bson:"_id" json:"id"`
	Label string       `bson:"label" json:"label"`
	Type  QuestionType `bson:"type" json:"type"`
}

// --- Facilitator ---
// Owned by its Training; no independent lifecycle.
type Facilitator struct {
	ID          string `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Subject     string `bson:"subject" json:"subject"`
	SessionDate string `bson:"sessionDate" json:"sessionDate"`
	Whatsapp    string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

// --- Training ---
type Training struct {
	ID                    string        `bson:"_id" json:"id"`
	AccessCode            string        `bson:"accessCode" json:"accessCode"`
	Title                 string        `bson:"title" json:"title"`
	StartDate             string        `bson:"startDate" json:"startDate"`
	EndDate               string        `bson:"endDate" json:"endDate"`
	ProcessEvaluationDate string        `bson:"processEvaluationDate" json:"processEvaluationDate"`
	Facilitators          []Facilitator `bson:"facilitators" json:"facilitators"`
	FacilitatorQuestions  []Question    `bson:"facilitatorQuestions" json:"facilitatorQuestions"`
	ProcessQuestions      []Question    `bson:"processQuestions" json:"processQuestions"`
	CreatedAt             int64         `bson:"createdAt" json:"createdAt"`

	// Auto-report configuration: respondent counts at which a summary is
	// sent, and the ledger of "{facilitatorId}_{count}" keys already sent.
	Targets         []int           `bson:"targets" json:"targets"`
	ReportedTargets map[string]bool `bson:"reportedTargets" json:"reportedTargets"`
}
