package autoreport

import (
	"context"
	"fmt"
	"log"
	"strings"

	"Backend-EvalApp/src/models"
	"Backend-EvalApp/src/services/responses"
	"Backend-EvalApp/src/services/settings"
	"Backend-EvalApp/src/services/trainings"
	"Backend-EvalApp/src/services/whatsapp"
)

var sender whatsapp.Sender

// Init wires the message gateway. Must be called before the trigger runs.
func Init(s whatsapp.Sender) {
	sender = s
}

// DedupKey is the unit of at-most-once delivery: one facilitator at one
// exact respondent count.
func DedupKey(facilitatorID string, count int) string {
	return fmt.Sprintf("%s_%d", facilitatorID, count)
}

// CheckAndSendAutoReport runs after a facilitator response has been
// persisted. It recounts that facilitator's responses, and when the count
// lands exactly on a configured target that has not been reported yet, it
// sends a summary to the facilitator's WhatsApp number and records the
// threshold as handled.
//
// Every failure mode is a logged no-op: the submission flow has already
// completed and nothing is surfaced to the respondent. A send that fails
// at a reached count is not retried, because the count check is exact
// equality and the count only grows.
func CheckAndSendAutoReport(ctx context.Context, trainingID, facilitatorID, facilitatorName string) {
	training, err := trainings.GetTrainingByID(ctx, trainingID)
	if err != nil || training == nil || len(training.Targets) == 0 {
		return
	}

	var facilitator *models.Facilitator
	for i := range training.Facilitators {
		if training.Facilitators[i].ID == facilitatorID {
			facilitator = &training.Facilitators[i]
			break
		}
	}
	if facilitator == nil || facilitator.Whatsapp == "" {
		log.Println("AutoReport: facilitator not found or no WhatsApp number")
		return
	}

	all, err := responses.GetResponses(ctx, trainingID)
	if err != nil {
		log.Println("AutoReport: load responses failed:", err)
		return
	}

	// The substring fallback tolerates name drift between custom-entered
	// names and the canonical facilitator name. Fragile but intentional.
	facResponses := make([]models.Response, 0, len(all))
	for _, r := range all {
		if r.Type != models.ResponseFacilitator {
			continue
		}
		if r.TargetName == facilitatorName || (r.TargetName != "" && strings.Contains(r.TargetName, facilitatorName)) {
			facResponses = append(facResponses, r)
		}
	}

	count := len(facResponses)
	log.Printf("AutoReport check: count=%d targets=%v", count, training.Targets)

	// Exact equality: a count that skips past a target misses it for good.
	hit := false
	for _, target := range training.Targets {
		if count == target {
			hit = true
			break
		}
	}
	if !hit {
		return
	}

	key := DedupKey(facilitatorID, count)
	if training.ReportedTargets[key] {
		log.Printf("AutoReport: report %s already sent to %s", key, facilitatorName)
		return
	}

	cfg, err := settings.GetSettings(ctx)
	if err != nil {
		log.Println("AutoReport: load settings failed:", err)
		return
	}

	stats := calculateStats(facResponses, training.FacilitatorQuestions)
	message := buildMessage(training.Title, facilitator.Name, count, stats, cfg.WaFooter)

	if err := sender.Send(ctx, cfg, facilitator.Whatsapp, message); err != nil {
		log.Println("AutoReport: send failed:", err)
		return
	}

	if err := trainings.MarkTargetReported(ctx, trainingID, key); err != nil {
		log.Println("AutoReport: mark reported failed:", err)
		return
	}
	log.Printf("AutoReport: SUCCESS sent to %s (%s)", facilitator.Name, key)
}

type questionStat struct {
	Label string
	Value string
}

// calculateStats averages the numeric answers per question across the
// filtered response set. Text questions are reported as a placeholder
// label, not averaged.
func calculateStats(resps []models.Response, qs []models.Question) []questionStat {
	stats := make([]questionStat, 0, len(qs))
	for _, q := range qs {
		if q.Type == models.QuestionText {
			stats = append(stats, questionStat{Label: q.Label, Value: "Isian Teks"})
			continue
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
			stats = append(stats, questionStat{Label: q.Label, Value: "0.0"})
			continue
		}

		avg := fmt.Sprintf("%.2f", sum/float64(n))
		if q.Type == models.QuestionStar {
			stats = append(stats, questionStat{Label: q.Label, Value: avg + "/5.0"})
		} else {
			stats = append(stats, questionStat{Label: q.Label, Value: avg + "/100"})
		}
	}
	return stats
}

func buildMessage(title, facilitatorName string, count int, stats []questionStat, footer string) string {
	var b strings.Builder
	b.WriteString("*LAPORAN EVALUASI OTOMATIS*\n")
	b.WriteString("--------------------------\n")
	fmt.Fprintf(&b, "Yth. %s\n", facilitatorName)
	fmt.Fprintf(&b, "Pelatihan: %s\n", title)
	fmt.Fprintf(&b, "Jumlah Responden: %d orang\n\n", count)
	b.WriteString("*Ringkasan Nilai:*\n")
	for _, s := range stats {
		fmt.Fprintf(&b, "- %s: *%s*\n", s.Label, s.Value)
	}
	fmt.Fprintf(&b, "\n%s\n", footer)
	b.WriteString("(Sistem Evaluasi Pelatihan)")
	return b.String()
}

// answerNumber extracts a numeric answer regardless of whether the value
// came through JSON (float64) or BSON (int32/int64).
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
