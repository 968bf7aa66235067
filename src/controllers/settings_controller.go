package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/settings"
)

// GetSettings returns the gateway configuration.
func GetSettings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := settings.GetSettings(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
	}
	return c.JSON(s)
}

// SaveSettings overwrites the gateway configuration wholesale.
func SaveSettings(c *fiber.Ctx) error {
	var s models.AppSettings
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := settings.SaveSettings(ctx, s); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save settings"})
	}
	return c.JSON(s)
}
