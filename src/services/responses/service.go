package responses

import (
	"context"

	"Backend-EvalApp/src/database"
	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/storage"
)

var store storage.RecordStore

// Init wires the record store. Must be called before any other function.
func Init(s storage.RecordStore) {
	store = s
}

// GetResponses returns every response for one training. Responses live in
// a single global collection filtered by exact trainingId match.
func GetResponses(ctx context.Context, trainingID string) ([]models.Response, error) {
	var all []models.Response
	if err := store.Read(ctx, database.ResponsesKey, &all); err != nil {
		return nil, err
	}

	filtered := make([]models.Response, 0, len(all))
	for _, r := range all {
		if r.TrainingID == trainingID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// SaveResponse appends one response. Append-only: no dedup and no
// validation against the referenced training or its question set.
func SaveResponse(ctx context.Context, response models.Response) error {
	var all []models.Response
	if err := store.Read(ctx, database.ResponsesKey, &all); err != nil {
		return err
	}

	all = append(all, response)
	return store.WriteAll(ctx, database.ResponsesKey, all)
}
