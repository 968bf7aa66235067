package questions

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

// DefaultQuestions seed the catalog on first read.
var DefaultQuestions = []models.GlobalQuestion{
	{ID: "def-1", Label: "Penguasaan Materi", Type: models.QuestionStar, Category: models.CategoryFacilitator, IsDefault: true},
	{ID: "def-2", Label: "Metode Penyampaian", Type: models.QuestionStar, Category: models.CategoryFacilitator, IsDefault: true},
	{ID: "def-3", Label: "Interaksi dengan Peserta", Type: models.QuestionSlider, Category: models.CategoryFacilitator, IsDefault: true},
	{ID: "def-4", Label: "Kenyamanan Ruangan", Type: models.QuestionStar, Category: models.CategoryProcess, IsDefault: true},
	{ID: "def-5", Label: "Kualitas Konsumsi", Type: models.QuestionStar, Category: models.CategoryProcess, IsDefault: true},
}

// GetGlobalQuestions returns the catalog, seeding the hardcoded defaults
// when the collection is empty.
func GetGlobalQuestions(ctx context.Context) ([]models.GlobalQuestion, error) {
	var qs []models.GlobalQuestion
	if err := store.Read(ctx, database.GlobalQuestionsKey, &qs); err != nil {
		return nil, err
	}

	if len(qs) == 0 {
		seeded := make([]models.GlobalQuestion, len(DefaultQuestions))
		copy(seeded, DefaultQuestions)
		if err := store.WriteAll(ctx, database.GlobalQuestionsKey, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	return qs, nil
}

// SaveGlobalQuestion upserts one catalog entry by id.
func SaveGlobalQuestion(ctx context.Context, question models.GlobalQuestion) error {
	qs, err := GetGlobalQuestions(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range qs {
		if qs[i].ID == question.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		qs[idx] = question
	} else {
		qs = append(qs, question)
	}

	return store.WriteAll(ctx, database.GlobalQuestionsKey, qs)
}

// DeleteGlobalQuestion removes one catalog entry.
func DeleteGlobalQuestion(ctx context.Context, id string) error {
	qs, err := GetGlobalQuestions(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.GlobalQuestion, 0, len(qs))
	for _, q := range qs {
		if q.ID != id {
			kept = append(kept, q)
		}
	}

	return store.WriteAll(ctx, database.GlobalQuestionsKey, kept)
}

// TemplatesByCategory returns catalog questions of one category as plain
// questions, ready to copy by value into a new training.
func TemplatesByCategory(ctx context.Context, category string) ([]models.Question, error) {
	qs, err := GetGlobalQuestions(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Question, 0, len(qs))
	for _, q := range qs {
		if q.Category == category {
			out = append(out, models.Question{ID: q.ID, Label: q.Label, Type: q.Type})
		}
	}
	return out, nil
}
