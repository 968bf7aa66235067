package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/questions"
	"Backend-EvalApp/src/services/share"
	"Backend-EvalApp/src/services/trainings"
)

var validate = validator.New()

// --------- Input DTOs ---------

type facilitatorIn struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Subject     string `json:"subject"`
	SessionDate string `json:"sessionDate"`
	Whatsapp    string `json:"whatsapp,omitempty"`
}

type questionIn struct {
	ID    string              `json:"id,omitempty"`
	Label string              `json:"label" validate:"required"`
	Type  models.QuestionType `json:"type" validate:"required,oneof=star slider text"`
}

type trainingIn struct {
	Title                 string          `json:"title" validate:"required"`
	StartDate             string          `json:"startDate" validate:"required"`
	EndDate               string          `json:"endDate" validate:"required"`
	ProcessEvaluationDate string          `json:"processEvaluationDate"`
	Facilitators          []facilitatorIn `json:"facilitators" validate:"dive"`
	FacilitatorQuestions  []questionIn    `json:"facilitatorQuestions" validate:"dive"`
	ProcessQuestions      []questionIn    `json:"processQuestions" validate:"dive"`
	Targets               []int           `json:"targets" validate:"dive,gt=0"`
}

const dateLayout = "2006-01-02"

func (in *trainingIn) datesValid() bool {
	start, err1 := time.Parse(dateLayout, in.StartDate)
	end, err2 := time.Parse(dateLayout, in.EndDate)
	if err1 != nil || err2 != nil {
		return false
	}
	return !start.After(end)
}

func (in *trainingIn) apply(t *models.Training) {
	t.Title = in.Title
	t.StartDate = in.StartDate
	t.EndDate = in.EndDate
	t.ProcessEvaluationDate = in.ProcessEvaluationDate
	if t.ProcessEvaluationDate == "" {
		t.ProcessEvaluationDate = in.EndDate
	}

	t.Facilitators = make([]models.Facilitator, 0, len(in.Facilitators))
	for _, f := range in.Facilitators {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		t.Facilitators = append(t.Facilitators, models.Facilitator{
			ID:          f.ID,
			Name:        f.Name,
			Subject:     f.Subject,
			SessionDate: f.SessionDate,
			Whatsapp:    f.Whatsapp,
		})
	}

	t.FacilitatorQuestions = toQuestions(in.FacilitatorQuestions)
	t.ProcessQuestions = toQuestions(in.ProcessQuestions)
	t.Targets = in.Targets
}

func toQuestions(ins []questionIn) []models.Question {
	qs := make([]models.Question, 0, len(ins))
	for _, q := range ins {
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		qs = append(qs, models.Question{ID: q.ID, Label: q.Label, Type: q.Type})
	}
	return qs
}

// --------- Handlers ---------

// GetTrainings lists every training.
func GetTrainings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ts, err := trainings.GetTrainings(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load trainings"})
	}
	return c.JSON(ts)
}

// GetTrainingByID returns one training.
func GetTrainingByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := trainings.GetTrainingByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, trainings.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load training"})
	}
	return c.JSON(t)
}

// GetTrainingByCode resolves an access code for the respondent flow.
func GetTrainingByCode(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := trainings.GetTrainingByCode(ctx, c.Params("code"))
	if err != nil {
		if errors.Is(err, trainings.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Code not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load training"})
	}
	return c.JSON(t)
}

// CreateTraining creates a training. Empty question lists are filled from
// the global catalog, copied by value.
func CreateTraining(c *fiber.Ctx) error {
	var in trainingIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !in.datesValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "startDate must not be after endDate"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t := models.Training{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
	}
	in.apply(&t)

	if len(t.FacilitatorQuestions) == 0 {
		if qs, err := questions.TemplatesByCategory(ctx, models.CategoryFacilitator); err == nil {
			t.FacilitatorQuestions = qs
		}
	}
	if len(t.ProcessQuestions) == 0 {
		if qs, err := questions.TemplatesByCategory(ctx, models.CategoryProcess); err == nil {
			t.ProcessQuestions = qs
		}
	}

	if err := trainings.SaveTraining(ctx, &t); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save training"})
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}

// UpdateTraining replaces an existing training's editable config. The
// notification ledger survives the update regardless of the payload.
func UpdateTraining(c *fiber.Ctx) error {
	var in trainingIn
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !in.datesValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "startDate must not be after endDate"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := trainings.GetTrainingByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, trainings.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load training"})
	}

	t := *existing
	in.apply(&t)

	if err := trainings.SaveTraining(ctx, &t); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save training"})
	}
	return c.JSON(t)
}

// DeleteTraining removes a training. Responses are not cascaded.
func DeleteTraining(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := trainings.DeleteTraining(ctx, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete training"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// ShareTraining returns the portable token for a training.
func ShareTraining(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := trainings.GetTrainingByID(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, trainings.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load training"})
	}

	token, err := share.EncodeTraining(*t)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to encode training"})
	}

	return c.JSON(fiber.Map{
		"token":      token,
		"accessCode": t.AccessCode,
	})
}
