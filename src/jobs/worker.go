package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-EvalApp/src/database"
	"Backend-EvalApp/src/services/autoreport"

	"github.com/hibiken/asynq"
)

// HandleAutoReportTask runs the threshold check for one freshly saved
// facilitator response. The trigger swallows its own failures, so the
// task never retries.
func HandleAutoReportTask(ctx context.Context, t *asynq.Task) error {
	var payload AutoReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	autoreport.CheckAndSendAutoReport(ctx, payload.TrainingID, payload.FacilitatorID, payload.FacilitatorName)
	return nil
}

// StartWorker runs the asynq server when Redis is configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not be started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAutoReport, HandleAutoReportTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}

// DispatchAutoReport queues the threshold check for a saved response.
// Fire-and-forget: the submission flow never waits on it. Without Redis
// the check runs on a plain goroutine instead.
func DispatchAutoReport(trainingID, facilitatorID, facilitatorName string) {
	if database.AsynqClient != nil {
		task, err := NewAutoReportTask(trainingID, facilitatorID, facilitatorName)
		if err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err == nil {
				return
			}
			log.Println("⚠️ Enqueue failed, falling back to goroutine")
		}
	}

	go autoreport.CheckAndSendAutoReport(context.Background(), trainingID, facilitatorID, facilitatorName)
}
