package share

import (
	"context"
	"testing"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/trainings"
	"Backend-EvalApp/src/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tr := models.Training{
		ID:         "t1",
		AccessCode: "A7X9P",
		Title:      "Pelatihan Dasar",
		Facilitators: []models.Facilitator{
			{ID: "fac-1", Name: "Budi", Subject: "Komunikasi"},
		},
		Targets:         []int{10},
		ReportedTargets: map[string]bool{},
	}

	token, err := EncodeTraining(tr)
	require.NoError(t, err)

	decoded, err := DecodeTraining(token)
	require.NoError(t, err)
	assert.Equal(t, tr, *decoded)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeTraining("not-base64!!!")
	assert.ErrorIs(t, err, ErrBadToken)

	// Valid base64, broken payload.
	_, err = DecodeTraining("aGVsbG8=")
	assert.ErrorIs(t, err, ErrBadToken)

	// Well-formed JSON without an id.
	_, err = DecodeTraining("e30=")
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestResolveShortCodeAndLongToken(t *testing.T) {
	store := storage.NewMemoryStore()
	trainings.Init(store)

	local := models.Training{ID: "t1", AccessCode: "A7X9P", Title: "Lokal"}
	require.NoError(t, trainings.SaveTraining(context.Background(), &local))

	// Short input: access-code lookup.
	got, err := Resolve(context.Background(), "a7x9p")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	_, err = Resolve(context.Background(), "ZZZZZ")
	assert.ErrorIs(t, err, trainings.ErrNotFound)

	// Long input: token import saves the training locally.
	foreign := models.Training{ID: "t2", AccessCode: "QQ2WW", Title: "Impor"}
	token, err := EncodeTraining(foreign)
	require.NoError(t, err)

	got, err = Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.ID)

	saved, err := trainings.GetTrainingByID(context.Background(), "t2")
	require.NoError(t, err)
	assert.Equal(t, "Impor", saved.Title)
}
