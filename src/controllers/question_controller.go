package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/questions"
)

type globalQuestionIn struct {
	ID        string              `json:"id,omitempty"`
	Label     string              `json:"label" validate:"required"`
	Type      models.QuestionType `json:"type" validate:"required,oneof=star slider text"`
	Category  string              `json:"category" validate:"required,oneof=facilitator process"`
	IsDefault bool                `json:"isDefault"`
}

// GetGlobalQuestions lists the question catalog.
func GetGlobalQuestions(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	qs, err := questions.GetGlobalQuestions(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load questions"})
	}
	return c.JSON(qs)
}

// SaveGlobalQuestion creates or updates one catalog entry.
func SaveGlobalQuestion(c *fiber.Ctx) error {
	var in globalQuestionIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	q := models.GlobalQuestion{
		ID:        in.ID,
		Label:     in.Label,
		Type:      in.Type,
		Category:  in.Category,
		IsDefault: in.IsDefault,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := questions.SaveGlobalQuestion(ctx, q); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save question"})
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

// DeleteGlobalQuestion removes one catalog entry.
func DeleteGlobalQuestion(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := questions.DeleteGlobalQuestion(ctx, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
