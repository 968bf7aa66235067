package routes

import (
	"Backend-EvalApp/src/controllers"
	"Backend-EvalApp/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// trainingRoutes covers trainings plus their responses and reports.
// Submitting a response and resolving an access code stay public:
// respondents have no session.
func trainingRoutes(router fiber.Router) {
	ts := router.Group("/trainings")

	ts.Get("/code/:code", controllers.GetTrainingByCode)
	ts.Get("/:id", controllers.GetTrainingByID)
	ts.Post("/:id/responses", controllers.CreateResponse)

	ts.Get("/", middleware.AuthJWT, controllers.GetTrainings)
	ts.Post("/", middleware.AuthJWT, controllers.CreateTraining)
	ts.Put("/:id", middleware.AuthJWT, controllers.UpdateTraining)
	ts.Delete("/:id", middleware.AuthJWT, controllers.DeleteTraining)

	ts.Get("/:id/share", middleware.AuthJWT, controllers.ShareTraining)
	ts.Get("/:id/responses", middleware.AuthJWT, controllers.GetResponsesForTraining)
	ts.Get("/:id/results", middleware.AuthJWT, controllers.GetResults)
	ts.Get("/:id/export/csv", middleware.AuthJWT, controllers.ExportCSV)
}
