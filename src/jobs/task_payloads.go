package jobs

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const TypeAutoReport = "report:auto"

type AutoReportPayload struct {
	TrainingID      string `json:"trainingId"`
	FacilitatorID   string `json:"facilitatorId"`
	FacilitatorName string `json:"facilitatorName"`
}

func (p *AutoReportPayload) Normalize() {
	p.TrainingID = strings.TrimSpace(p.TrainingID)
	p.FacilitatorID = strings.TrimSpace(p.FacilitatorID)
	p.FacilitatorName = strings.TrimSpace(p.FacilitatorName)
}

func NewAutoReportTask(trainingID, facilitatorID, facilitatorName string) (*asynq.Task, error) {
	payload := AutoReportPayload{
		TrainingID:      trainingID,
		FacilitatorID:   facilitatorID,
		FacilitatorName: facilitatorName,
	}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAutoReport, b), nil
}
