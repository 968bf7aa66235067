package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-EvalApp/src/services"
)

type loginIn struct {
	Password string `json:"password"`
}

// Login checks the admin password and issues a session token.
func Login(c *fiber.Ctx) error {
	var body loginIn
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	token, err := services.AuthenticateAdmin(body.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"token": token})
}
