package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/contacts"
)

type contactIn struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Whatsapp string `json:"whatsapp" validate:"required"`
}

// GetContacts lists the contact book.
func GetContacts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cs, err := contacts.GetContacts(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load contacts"})
	}
	return c.JSON(cs)
}

// SaveContact creates or updates one contact.
func SaveContact(c *fiber.Ctx) error {
	var in contactIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	contact := models.Contact{ID: in.ID, Name: in.Name, Whatsapp: in.Whatsapp}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := contacts.SaveContact(ctx, contact); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save contact"})
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

// DeleteContact removes one contact.
func DeleteContact(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := contacts.DeleteContact(ctx, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete contact"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
