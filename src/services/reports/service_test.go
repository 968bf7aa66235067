package reports

import (
	"context"
	"strings"
	"testing"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/responses"
	"Backend-EvalApp/src/services/trainings"
	"Backend-EvalApp/src/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportData(t *testing.T) {
	t.Helper()

	store := storage.NewMemoryStore()
	trainings.Init(store)
	responses.Init(store)

	tr := models.Training{
		ID:         "t1",
		Title:      "Pelatihan Dasar",
		AccessCode: "AB12C",
		StartDate:  "2024-01-10",
		EndDate:    "2024-01-12",
		Facilitators: []models.Facilitator{
			{ID: "fac-1", Name: "Budi", Subject: "Komunikasi"},
		},
		FacilitatorQuestions: []models.Question{
			{ID: "q1", Label: "Penguasaan Materi", Type: models.QuestionStar},
			{ID: "q2", Label: "Saran", Type: models.QuestionText},
		},
		ProcessQuestions: []models.Question{
			{ID: "p1", Label: "Kenyamanan Ruangan", Type: models.QuestionStar},
		},
	}
	require.NoError(t, trainings.SaveTraining(context.Background(), &tr))

	rs := []models.Response{
		{ID: "r1", TrainingID: "t1", Type: models.ResponseFacilitator, TargetName: "Budi", TargetSubject: "Komunikasi",
			Answers: map[string]interface{}{"q1": 4.0, "q2": "Mantap"}},
		{ID: "r2", TrainingID: "t1", Type: models.ResponseFacilitator, TargetName: "Budi",
			Answers: map[string]interface{}{"q1": 5.0, "q2": "  "}},
		{ID: "r3", TrainingID: "t1", Type: models.ResponseProcess, TargetName: models.ProcessTargetName,
			Answers: map[string]interface{}{"p1": 3.0}},
	}
	for _, r := range rs {
		require.NoError(t, responses.SaveResponse(context.Background(), r))
	}
}

func TestBuildResultsGroupsAndAverages(t *testing.T) {
	setupReportData(t)

	res, err := BuildResults(context.Background(), "t1")
	require.NoError(t, err)

	require.Len(t, res.Facilitator, 1)
	budi := res.Facilitator[0]
	assert.Equal(t, "Budi", budi.TargetName)
	assert.Equal(t, "Komunikasi", budi.TargetSubject)
	assert.Equal(t, 2, budi.Respondents)

	require.Len(t, budi.Stats, 2)
	assert.Equal(t, 4.5, budi.Stats[0].Average)
	// Blank text answers are dropped.
	assert.Equal(t, []string{"Mantap"}, budi.Stats[1].TextAnswers)

	require.Len(t, res.Process, 1)
	assert.Equal(t, models.ProcessTargetName, res.Process[0].TargetName)
	assert.Equal(t, 3.0, res.Process[0].Stats[0].Average)
}

func TestBuildResultsUnknownTraining(t *testing.T) {
	setupReportData(t)

	_, err := BuildResults(context.Background(), "missing")
	assert.ErrorIs(t, err, trainings.ErrNotFound)
}

func TestExportCSVLayout(t *testing.T) {
	setupReportData(t)

	data, err := ExportCSV(context.Background(), "t1")
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Laporan Evaluasi Pelatihan")
	assert.Contains(t, out, "Judul,Pelatihan Dasar")
	assert.Contains(t, out, "Periode,2024-01-10 s/d 2024-01-12")
	assert.Contains(t, out, "A. EVALUASI FASILITATOR")
	assert.Contains(t, out, "Nama Fasilitator,Materi,Jumlah Responden,Penguasaan Materi,Saran")
	assert.Contains(t, out, "Budi,Komunikasi,2,4.50,Teks")
	assert.Contains(t, out, "B. EVALUASI PENYELENGGARAAN")
	assert.Contains(t, out, "Jumlah Responden,1")
	assert.Contains(t, out, "Kenyamanan Ruangan,3.00")

	// Sections are separated by blank lines like the dashboard export.
	assert.True(t, strings.Contains(out, "\n\n"))
}
