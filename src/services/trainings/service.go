package trainings

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"Backend-EvalApp/src/database"
	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/storage"
)

var ErrNotFound = errors.New("training not found")

var store storage.RecordStore

// Init wires the record store. Must be called before any other function.
func Init(s storage.RecordStore) {
	store = s
}

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAccessCode returns a 5-character uppercase alphanumeric code.
// There is no uniqueness retry: collisions are accepted as negligible at
// the expected scale (tens of trainings).
func GenerateAccessCode() string {
	code := make([]byte, 5)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			code[i] = codeCharset[0]
			continue
		}
		code[i] = codeCharset[n.Int64()]
	}
	return string(code)
}

// Normalize backfills fields older documents may lack: accessCode,
// targets and reportedTargets. Forward-only: fields are added, never
// removed. Pure function so the migration is testable without storage.
func Normalize(t models.Training) (models.Training, bool) {
	changed := false
	if t.AccessCode == "" {
		t.AccessCode = GenerateAccessCode()
		changed = true
	}
	if t.Targets == nil {
		t.Targets = []int{}
		changed = true
	}
	if t.ReportedTargets == nil {
		t.ReportedTargets = map[string]bool{}
		changed = true
	}
	return t, changed
}

// GetTrainings reads all trainings, running the lazy migration on each.
// If any document was corrected, the full collection is written back
// before returning.
func GetTrainings(ctx context.Context) ([]models.Training, error) {
	var ts []models.Training
	if err := store.Read(ctx, database.TrainingsKey, &ts); err != nil {
		return nil, err
	}

	anyChanged := false
	for i, t := range ts {
		normalized, changed := Normalize(t)
		if changed {
			ts[i] = normalized
			anyChanged = true
		}
	}

	if anyChanged {
		if err := store.WriteAll(ctx, database.TrainingsKey, ts); err != nil {
			return nil, err
		}
	}

	return ts, nil
}

// GetTrainingByID returns the training with the given id.
func GetTrainingByID(ctx context.Context, id string) (*models.Training, error) {
	ts, err := GetTrainings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ts {
		if ts[i].ID == id {
			return &ts[i], nil
		}
	}
	return nil, ErrNotFound
}

// GetTrainingByCode looks a training up by access code, case-insensitive.
func GetTrainingByCode(ctx context.Context, code string) (*models.Training, error) {
	ts, err := GetTrainings(ctx)
	if err != nil {
		return nil, err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	for i := range ts {
		if strings.ToUpper(ts[i].AccessCode) == code {
			return &ts[i], nil
		}
	}
	return nil, ErrNotFound
}

// SaveTraining upserts a training. On update the previously persisted
// reportedTargets always wins over the incoming value, so editing a
// training can never re-arm notifications that already fired. The
// auto-report ledger is written through MarkTargetReported instead.
func SaveTraining(ctx context.Context, training *models.Training) error {
	ts, err := GetTrainings(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range ts {
		if ts[i].ID == training.ID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		existing := ts[idx]
		training.ReportedTargets = existing.ReportedTargets
		if training.ReportedTargets == nil {
			training.ReportedTargets = map[string]bool{}
		}
		ts[idx] = *training
	} else {
		normalized, _ := Normalize(*training)
		*training = normalized
		ts = append(ts, *training)
	}

	return store.WriteAll(ctx, database.TrainingsKey, ts)
}

// DeleteTraining removes the training. Responses referencing it are left
// in place: there is no cascade.
func DeleteTraining(ctx context.Context, id string) error {
	ts, err := GetTrainings(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Training, 0, len(ts))
	for _, t := range ts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	return store.WriteAll(ctx, database.TrainingsKey, kept)
}

// MarkTargetReported merges one dedup key into the persisted
// reportedTargets ledger. Only the auto-report trigger writes through
// here, which keeps the ledger out of the general save path entirely.
func MarkTargetReported(ctx context.Context, trainingID, dedupKey string) error {
	ts, err := GetTrainings(ctx)
	if err != nil {
		return err
	}

	for i := range ts {
		if ts[i].ID != trainingID {
			continue
		}
		if ts[i].ReportedTargets == nil {
			ts[i].ReportedTargets = map[string]bool{}
		}
		ts[i].ReportedTargets[dedupKey] = true
		return store.WriteAll(ctx, database.TrainingsKey, ts)
	}

	return ErrNotFound
}
