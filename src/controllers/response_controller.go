package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Backend-EvalApp/src/jobs"
	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/responses"
)

// --------- Input DTOs ---------

type responseIn struct {
	Type          string                 `json:"type"`
	TargetName    string                 `json:"targetName,omitempty"`
	TargetSubject string                 `json:"targetSubject,omitempty"`
	FacilitatorID string                 `json:"facilitatorId,omitempty"`
	Answers       map[string]interface{} `json:"answers"`
}

// --------- Handlers ---------

// CreateResponse persists one evaluation response and, for facilitator
// evaluations, queues the auto-report threshold check. The respondent
// gets their confirmation immediately; the check runs detached.
func CreateResponse(c *fiber.Ctx) error {
	var in responseIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if in.Type != models.ResponseFacilitator && in.Type != models.ResponseProcess {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid type"})
	}
	if len(in.Answers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "answers required"})
	}

	targetName := in.TargetName
	if in.Type == models.ResponseProcess {
		targetName = models.ProcessTargetName
	}

	response := models.Response{
		ID:            uuid.NewString(),
		TrainingID:    c.Params("id"),
		Type:          in.Type,
		TargetName:    targetName,
		TargetSubject: in.TargetSubject,
		Answers:       in.Answers,
		Timestamp:     time.Now().UnixMilli(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := responses.SaveResponse(ctx, response); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save response"})
	}

	if in.Type == models.ResponseFacilitator && in.FacilitatorID != "" {
		jobs.DispatchAutoReport(response.TrainingID, in.FacilitatorID, targetName)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// GetResponsesForTraining lists every response of a training.
func GetResponsesForTraining(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rs, err := responses.GetResponses(ctx, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load responses"})
	}
	return c.JSON(rs)
}
