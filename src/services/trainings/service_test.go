package trainings

import (
	"context"
	"regexp"
	"testing"

	"Backend-EvalApp/src/database"
	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{5}$`)

func seedTraining(t *testing.T, store storage.RecordStore, tr models.Training) {
	t.Helper()
	var existing []models.Training
	require.NoError(t, store.Read(context.Background(), database.TrainingsKey, &existing))
	existing = append(existing, tr)
	require.NoError(t, store.WriteAll(context.Background(), database.TrainingsKey, existing))
}

func TestNormalizeBackfillsMissingFields(t *testing.T) {
	normalized, changed := Normalize(models.Training{ID: "t1", Title: "Pelatihan A"})

	assert.True(t, changed)
	assert.Regexp(t, codePattern, normalized.AccessCode)
	assert.NotNil(t, normalized.Targets)
	assert.Empty(t, normalized.Targets)
	assert.NotNil(t, normalized.ReportedTargets)

	// A complete document passes through untouched.
	again, changedAgain := Normalize(normalized)
	assert.False(t, changedAgain)
	assert.Equal(t, normalized, again)
}

func TestGetTrainingsAssignsStableAccessCode(t *testing.T) {
	store := storage.NewMemoryStore()
	Init(store)
	seedTraining(t, store, models.Training{ID: "t1", Title: "Pelatihan A"})

	first, err := GetTrainings(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Regexp(t, codePattern, first[0].AccessCode)

	// The backfilled code was written back, so repeated reads agree.
	second, err := GetTrainings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first[0].AccessCode, second[0].AccessCode)
}

func TestSaveTrainingPreservesReportedTargets(t *testing.T) {
	store := storage.NewMemoryStore()
	Init(store)

	original := models.Training{
		ID:              "t1",
		Title:           "Pelatihan A",
		AccessCode:      "AB12C",
		Targets:         []int{2, 5},
		ReportedTargets: map[string]bool{"fac-1_2": true},
	}
	require.NoError(t, SaveTraining(context.Background(), &original))

	// An edit that tries to reset the ledger must not win.
	edited := original
	edited.Title = "Pelatihan A (rev)"
	edited.ReportedTargets = map[string]bool{}
	require.NoError(t, SaveTraining(context.Background(), &edited))

	got, err := GetTrainingByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Pelatihan A (rev)", got.Title)
	assert.True(t, got.ReportedTargets["fac-1_2"])
}

func TestGetTrainingByCodeIsCaseInsensitive(t *testing.T) {
	store := storage.NewMemoryStore()
	Init(store)

	tr := models.Training{ID: "t1", AccessCode: "A7X9P", Targets: []int{}, ReportedTargets: map[string]bool{}}
	require.NoError(t, SaveTraining(context.Background(), &tr))

	got, err := GetTrainingByCode(context.Background(), "a7x9p")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	_, err = GetTrainingByCode(context.Background(), "ZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkTargetReportedMergesIntoLedger(t *testing.T) {
	store := storage.NewMemoryStore()
	Init(store)

	tr := models.Training{ID: "t1", AccessCode: "AB12C", Targets: []int{2}, ReportedTargets: map[string]bool{"fac-1_2": true}}
	require.NoError(t, SaveTraining(context.Background(), &tr))

	require.NoError(t, MarkTargetReported(context.Background(), "t1", "fac-1_5"))

	got, err := GetTrainingByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, got.ReportedTargets["fac-1_2"])
	assert.True(t, got.ReportedTargets["fac-1_5"])

	assert.ErrorIs(t, MarkTargetReported(context.Background(), "missing", "x_1"), ErrNotFound)
}

func TestDeleteTraining(t *testing.T) {
	store := storage.NewMemoryStore()
	Init(store)

	a := models.Training{ID: "t1", AccessCode: "AAAAA"}
	b := models.Training{ID: "t2", AccessCode: "BBBBB"}
	require.NoError(t, SaveTraining(context.Background(), &a))
	require.NoError(t, SaveTraining(context.Background(), &b))

	require.NoError(t, DeleteTraining(context.Background(), "t1"))

	_, err := GetTrainingByID(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = GetTrainingByID(context.Background(), "t2")
	assert.NoError(t, err)
}
