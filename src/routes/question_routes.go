package routes

import (
	"Backend-EvalApp/src/controllers"
	"Backend-EvalApp/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func questionRoutes(router fiber.Router) {
	qs := router.Group("/global-questions", middleware.AuthJWT)

	qs.Get("/", controllers.GetGlobalQuestions)
	qs.Post("/", controllers.SaveGlobalQuestion)
	qs.Put("/:id", controllers.SaveGlobalQuestion)
	qs.Delete("/:id", controllers.DeleteGlobalQuestion)
}
