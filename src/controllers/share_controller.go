package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-EvalApp/src/services/share"
	"Backend-EvalApp/src/services/trainings"
)

type accessIn struct {
	Code string `json:"code"`
}

// ResolveAccess handles the respondent entry point: a short access code
// or a full share token, either way resolving to a training.
func ResolveAccess(c *fiber.Ctx) error {
	var in accessIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "code required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := share.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, trainings.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Code not found"})
		}
		if errors.Is(err, share.ErrBadToken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid token format"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve access"})
	}

	return c.JSON(t)
}

// ImportTraining decodes a share token and saves the training locally.
func ImportTraining(c *fiber.Ctx) error {
	var in struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	t, err := share.DecodeTraining(in.Token)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid token format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := trainings.SaveTraining(ctx, t); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to import training"})
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}
