package routes

import (
	"Backend-EvalApp/src/controllers"
	"Backend-EvalApp/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func contactRoutes(router fiber.Router) {
	cs := router.Group("/contacts", middleware.AuthJWT)

	cs.Get("/", controllers.GetContacts)
	cs.Post("/", controllers.SaveContact)
	cs.Put("/:id", controllers.SaveContact)
	cs.Delete("/:id", controllers.DeleteContact)
}
