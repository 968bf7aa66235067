package routes

import (
	"Backend-EvalApp/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// shareRoutes are public: tokens and access codes are the respondent's
// way in.
func shareRoutes(router fiber.Router) {
	s := router.Group("/share")

	s.Post("/access", controllers.ResolveAccess)
	s.Post("/import", controllers.ImportTraining)
}
