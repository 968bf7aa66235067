package autoreport

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/responses"
	"Backend-EvalApp/src/services/settings"
	"Backend-EvalApp/src/services/trainings"
	"Backend-EvalApp/src/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of the WhatsApp gateway.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, cfg models.AppSettings, target, message string) error {
	args := m.Called(ctx, cfg, target, message)
	return args.Error(0)
}

func setupTrigger(t *testing.T, targets []int) *MockSender {
	t.Helper()

	store := storage.NewMemoryStore()
	trainings.Init(store)
	responses.Init(store)
	settings.Init(store)

	tr := models.Training{
		ID:         "t1",
		Title:      "Pelatihan Kepemimpinan",
		AccessCode: "AB12C",
		Facilitators: []models.Facilitator{
			{ID: "fac-1", Name: "Budi", Subject: "Komunikasi", Whatsapp: "081234567890"},
			{ID: "fac-2", Name: "Sari", Subject: "Negosiasi"}, // no WhatsApp number
		},
		FacilitatorQuestions: []models.Question{
			{ID: "q1", Label: "Penguasaan Materi", Type: models.QuestionStar},
			{ID: "q2", Label: "Interaksi dengan Peserta", Type: models.QuestionSlider},
			{ID: "q3", Label: "Saran", Type: models.QuestionText},
		},
		Targets: targets,
	}
	require.NoError(t, trainings.SaveTraining(context.Background(), &tr))

	sender := new(MockSender)
	Init(sender)
	return sender
}

func submitResponse(t *testing.T, n int, targetName string) {
	t.Helper()
	for i := 0; i < n; i++ {
		r := models.Response{
			ID:         fmt.Sprintf("r-%s-%d", targetName, i),
			TrainingID: "t1",
			Type:       models.ResponseFacilitator,
			TargetName: targetName,
			Answers:    map[string]interface{}{"q1": 4.0, "q2": 80.0, "q3": "Bagus"},
		}
		require.NoError(t, responses.SaveResponse(context.Background(), r))
	}
}

func TestDispatchAtExactThresholdsWithDedup(t *testing.T) {
	sender := setupTrigger(t, []int{2, 5})
	sender.On("Send", mock.Anything, mock.Anything, "081234567890", mock.Anything).Return(nil)

	// 1st response: below every target, nothing sent.
	submitResponse(t, 1, "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	sender.AssertNumberOfCalls(t, "Send", 0)

	// 2nd response: count == 2, one dispatch keyed fac-1_2.
	submitResponse(t, 1, "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	sender.AssertNumberOfCalls(t, "Send", 1)

	got, err := trainings.GetTrainingByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, got.ReportedTargets["fac-1_2"])

	// 3rd response: 3 is not a target.
	submitResponse(t, 1, "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	sender.AssertNumberOfCalls(t, "Send", 1)

	// Up to 5: exactly one more dispatch, keyed fac-1_5.
	submitResponse(t, 2, "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	sender.AssertNumberOfCalls(t, "Send", 2)

	got, err = trainings.GetTrainingByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, got.ReportedTargets["fac-1_5"])
}

func TestTriggerIsIdempotentPerDedupKey(t *testing.T) {
	sender := setupTrigger(t, []int{2})
	sender.On("Send", mock.Anything, mock.Anything, "081234567890", mock.Anything).Return(nil)

	submitResponse(t, 2, "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")

	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestEmptyTargetsNeverDispatches(t *testing.T) {
	sender := setupTrigger(t, nil)

	submitResponse(t, 10, "Budi")
	for i := 0; i < 10; i++ {
		CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	}

	sender.AssertNumberOfCalls(t, "Send", 0)
}

func TestSubstringNameMatchCountsTowardFacilitator(t *testing.T) {
	sender := setupTrigger(t, []int{2})
	sender.On("Send", mock.Anything, mock.Anything, "081234567890", mock.Anything).Return(nil)

	// "Budi Santoso" contains the canonical "Budi" and must be counted.
	submitResponse(t, 1, "Budi")
	submitResponse(t, 1, "Budi Santoso")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")

	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestMissingContactIsSilentNoop(t *testing.T) {
	sender := setupTrigger(t, []int{1})

	submitResponse(t, 1, "Sari")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-2", "Sari")
	// Unknown facilitator id is a no-op too.
	CheckAndSendAutoReport(context.Background(), "t1", "fac-9", "Siapa")
	// Missing training is a no-op, not a panic.
	CheckAndSendAutoReport(context.Background(), "t9", "fac-1", "Budi")

	sender.AssertNumberOfCalls(t, "Send", 0)
}

func TestGatewayFailureLeavesLedgerUntouched(t *testing.T) {
	sender := setupTrigger(t, []int{2})
	sender.On("Send", mock.Anything, mock.Anything, "081234567890", mock.Anything).Return(errors.New("network down"))

	submitResponse(t, 2, "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")

	got, err := trainings.GetTrainingByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.False(t, got.ReportedTargets["fac-1_2"])

	// The count did not change, so re-running hits the same target again
	// and retries the send.
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")
	sender.AssertNumberOfCalls(t, "Send", 2)
}

func TestMessageContentSummarizesScores(t *testing.T) {
	sender := setupTrigger(t, []int{2})

	var sent string
	sender.On("Send", mock.Anything, mock.Anything, "081234567890", mock.Anything).
		Run(func(args mock.Arguments) { sent = args.String(3) }).
		Return(nil)

	submitResponse(t, 2, "Budi")
	CheckAndSendAutoReport(context.Background(), "t1", "fac-1", "Budi")

	sender.AssertNumberOfCalls(t, "Send", 1)
	assert.Contains(t, sent, "*LAPORAN EVALUASI OTOMATIS*")
	assert.Contains(t, sent, "Yth. Budi")
	assert.Contains(t, sent, "Pelatihan: Pelatihan Kepemimpinan")
	assert.Contains(t, sent, "Jumlah Responden: 2 orang")
	assert.Contains(t, sent, "- Penguasaan Materi: *4.00/5.0*")
	assert.Contains(t, sent, "- Interaksi dengan Peserta: *80.00/100*")
	assert.Contains(t, sent, "- Saran: *Isian Teks*")
	assert.Contains(t, sent, "Terima kasih telah memberikan yang terbaik!")
}
