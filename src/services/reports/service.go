package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strings"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/responses"
	"Backend-EvalApp/src/services/trainings"
)

// QuestionStat is one question's aggregate within a result group.
type QuestionStat struct {
	QuestionID  string              `json:"questionId"`
	Label       string              `json:"label"`
	Type        models.QuestionType `json:"type"`
	Average     float64             `json:"average"`
	TextAnswers []string            `json:"textAnswers,omitempty"`
}

// TargetResult groups the responses addressed to one target name
// (a facilitator, or the process-evaluation label).
type TargetResult struct {
	TargetName    string         `json:"targetName"`
	TargetSubject string         `json:"targetSubject,omitempty"`
	Respondents   int            `json:"respondents"`
	Stats         []QuestionStat `json:"stats"`
}

// TrainingResults is the full aggregation for one training.
type TrainingResults struct {
	TrainingID  string         `json:"trainingId"`
	Title       string         `json:"title"`
	Facilitator []TargetResult `json:"facilitator"`
	Process     []TargetResult `json:"process"`
}

// BuildResults aggregates every response of a training into per-target
// means and text-answer lists, split by evaluation type.
func BuildResults(ctx context.Context, trainingID string) (*TrainingResults, error) {
	training, err := trainings.GetTrainingByID(ctx, trainingID)
	if err != nil {
		return nil, err
	}

	all, err := responses.GetResponses(ctx, trainingID)
	if err != nil {
		return nil, err
	}

	res := &TrainingResults{TrainingID: training.ID, Title: training.Title}
	res.Facilitator = groupByTarget(filterByType(all, models.ResponseFacilitator), training.FacilitatorQuestions)
	res.Process = groupByTarget(filterByType(all, models.ResponseProcess), training.ProcessQuestions)
	return res, nil
}

// ExportCSV renders the admin report: a training header, section A with
// one row per facilitator and the per-question means, section B with the
// process-evaluation summary.
func ExportCSV(ctx context.Context, trainingID string) ([]byte, error) {
	training, err := trainings.GetTrainingByID(ctx, trainingID)
	if err != nil {
		return nil, err
	}

	all, err := responses.GetResponses(ctx, trainingID)
	if err != nil {
		return nil, err
	}

	facResponses := filterByType(all, models.ResponseFacilitator)
	procResponses := filterByType(all, models.ResponseProcess)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Laporan Evaluasi Pelatihan"})
	w.Write([]string{"Judul", training.Title})
	w.Write([]string{"Periode", training.StartDate + " s/d " + training.EndDate})
	w.Write([]string{})

	w.Write([]string{"A. EVALUASI FASILITATOR"})
	header := []string{"Nama Fasilitator", "Materi", "Jumlah Responden"}
	for _, q := range training.FacilitatorQuestions {
		header = append(header, q.Label)
	}
	w.Write(header)

	for _, f := range training.Facilitators {
		// The same substring match the auto-report uses, so the export
		// and the report agree on who counts toward a facilitator.
		fRes := make([]models.Response, 0, len(facResponses))
		for _, r := range facResponses {
			if r.TargetName == f.Name || (r.TargetName != "" && strings.Contains(r.TargetName, f.Name)) {
				fRes = append(fRes, r)
			}
		}

		row := []string{f.Name, f.Subject, fmt.Sprintf("%d", len(fRes))}
		for _, q := range training.FacilitatorQuestions {
			row = append(row, statValue(fRes, q))
		}
		w.Write(row)
	}

	w.Write([]string{})
	w.Write([]string{"B. EVALUASI PENYELENGGARAAN"})
	w.Write([]string{"Jumlah Responden", fmt.Sprintf("%d", len(procResponses))})
	for _, q := range training.ProcessQuestions {
		w.Write([]string{q.Label, statValue(procResponses, q)})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func filterByType(all []models.Response, typ string) []models.Response {
	out := make([]models.Response, 0, len(all))
	for _, r := range all {
		if r.Type == typ {
			out = append(out, r)
		}
	}
	return out
}

func groupByTarget(resps []models.Response, qs []models.Question) []TargetResult {
	order := []string{}
	groups := map[string][]models.Response{}
	subjects := map[string]string{}
	for _, r := range resps {
		key := r.TargetName
		if key == "" {
			key = "Umum"
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
		if r.TargetSubject != "" {
			subjects[key] = r.TargetSubject
		}
	}

	results := make([]TargetResult, 0, len(order))
	for _, key := range order {
		group := groups[key]
		stats := make([]QuestionStat, 0, len(qs))
		for _, q := range qs {
			stat := QuestionStat{QuestionID: q.ID, Label: q.Label, Type: q.Type}
			if q.Type == models.QuestionText {
				for _, r := range group {
					if s, ok := r.Answers[q.ID].(string); ok && strings.TrimSpace(s) != "" {
						stat.TextAnswers = append(stat.TextAnswers, s)
					}
				}
			} else {
				stat.Average = average(group, q.ID)
			}
			stats = append(stats, stat)
		}
		results = append(results, TargetResult{
			TargetName:    key,
			TargetSubject: subjects[key],
			Respondents:   len(group),
			Stats:         stats,
		})
	}
	return results
}

// average returns the mean of numeric answers rounded to one decimal,
// zero when nothing numeric was answered.
func average(resps []models.Response, questionID string) float64 {
	var sum float64
	var n int
	for _, r := range resps {
		if v, ok := answerNumber(r.Answers[questionID]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/float64(n)*10) / 10
}

func statValue(resps []models.Response, q models.Question) string {
	if q.Type == models.QuestionText {
		return "Teks"
	}
	var sum float64
	var n int
	for _, r := range resps {
		if v, ok := answerNumber(r.Answers[q.ID]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", sum/float64(n))
}

func answerNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
