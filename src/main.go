package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"Backend-EvalApp/src/database"
	"Backend-EvalApp/src/jobs"
	"Backend-EvalApp/src/routes"
	"Backend-EvalApp/src/services/autoreport"
	"Backend-EvalApp/src/services/contacts"
	"Backend-EvalApp/src/services/questions"
	"Backend-EvalApp/src/services/responses"
	"Backend-EvalApp/src/services/settings"
	"Backend-EvalApp/src/services/trainings"
	"Backend-EvalApp/src/services/whatsapp"
	"Backend-EvalApp/src/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis/Asynq are optional; without them the auto-report check runs
	// in-process.
	database.InitRedis()
	database.InitAsynq()

	store := storage.NewMongoStore()
	trainings.Init(store)
	responses.Init(store)
	questions.Init(store)
	contacts.Init(store)
	settings.Init(store)
	autoreport.Init(whatsapp.NewClient())

	jobs.StartWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
