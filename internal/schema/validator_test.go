package schema

import (
	"testing"

	"transcript-sentiment-service/internal/models"
)

func validUtterance() models.UtteranceScored {
	return models.UtteranceScored{
		EventType: "debate.utterance.scored",
		RunID:     "run-1",
		TurnID:    1,
		Speaker:   "David Dimbleby",
		Text:      "Good evening",
	}
}

func TestValidateUtterance(t *testing.T) {
	v := New()

	if err := v.ValidateUtterance(validUtterance()); err != nil {
		t.Errorf("valid event rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*models.UtteranceScored)
	}{
		{"missing run ID", func(ev *models.UtteranceScored) { ev.RunID = "" }},
		{"missing speaker", func(ev *models.UtteranceScored) { ev.Speaker = "" }},
		{"empty text", func(ev *models.UtteranceScored) { ev.Text = "" }},
		{"zero turn ID", func(ev *models.UtteranceScored) { ev.TurnID = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := validUtterance()
			tt.mutate(&ev)
			if err := v.ValidateUtterance(ev); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateSummary(t *testing.T) {
	v := New()

	valid := models.SummaryComputed{
		RunID:   "run-1",
		Summary: models.SpeakerSummary{Speaker: "Ed Milliband", Utterances: 3},
	}
	if err := v.ValidateSummary(valid); err != nil {
		t.Errorf("valid event rejected: %v", err)
	}

	noRun := valid
	noRun.RunID = ""
	if err := v.ValidateSummary(noRun); err == nil {
		t.Error("expected error for missing run ID")
	}

	empty := valid
	empty.Summary.Utterances = 0
	if err := v.ValidateSummary(empty); err == nil {
		t.Error("expected error for empty summary")
	}
}
