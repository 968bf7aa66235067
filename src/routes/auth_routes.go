package routes

import (
	"Backend-EvalApp/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/login", controllers.Login)
}
