package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	// DBName holds every EvalApp collection. Overridable via MONGO_DB.
	DBName = "EvalAppDB"
)

// Collection keys: one logical collection per entity kind plus the
// settings singleton record.
const (
	TrainingsKey       = "trainings"
	ResponsesKey       = "responses"
	GlobalQuestionsKey = "global_questions"
	ContactsKey        = "contacts"
	SettingsKey        = "settings"
)

// ConnectMongoDB connects to MongoDB exactly once.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}
	if name := os.Getenv("MONGO_DB"); name != "" {
		DBName = name
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the EvalApp database.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(DBName).Collection(collectionName)
}
