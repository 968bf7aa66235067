package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-EvalApp/src/services/reports"
	"Backend-EvalApp/src/services/trainings"
)

// GetResults returns the aggregated evaluation results of a training.
func GetResults(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := reports.BuildResults(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, trainings.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build results"})
	}
	return c.JSON(res)
}

// ExportCSV streams the report as a CSV download.
func ExportCSV(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := trainings.GetTrainingByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, trainings.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load training"})
	}

	data, err := reports.ExportCSV(ctx, t.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export report"})
	}

	filename := "Laporan_" + strings.ReplaceAll(t.Title, " ", "_") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
