package routes

import (
	"Backend-EvalApp/src/controllers"
	"Backend-EvalApp/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func settingsRoutes(router fiber.Router) {
	s := router.Group("/settings", middleware.AuthJWT)

	s.Get("/", controllers.GetSettings)
	s.Put("/", controllers.SaveSettings)
}
