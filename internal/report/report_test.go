package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"transcript-sentiment-service/internal/models"
)

func TestWrite(t *testing.T) {
	root := t.TempDir()
	b := &Bundle{
		RunID:       "run-abc",
		Source:      "debate.txt",
		Provider:    "mock",
		GeneratedAt: time.Date(2026, 5, 2, 21, 0, 0, 0, time.UTC),
		Utterances: []models.ScoredUtterance{
			{
				Utterance: models.Utterance{TurnID: 1, Speaker: "Adam", Text: "hello"},
				Scores:    models.SentimentScores{Compound: 0.4, Neutral: 0.6, Positive: 0.4},
			},
		},
		Summaries: []models.SpeakerSummary{
			{Speaker: "Adam", Utterances: 1, Min: 0.4, Max: 0.4, Mean: 0.4, Median: 0.4},
		},
		Series: []models.TimeSeriesPoint{{TurnID: 1, Speaker: "Adam", Compound: 0.4}},
	}

	dir, err := Write(root, b)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Dir(dir) != root {
		t.Errorf("run dir %s not under root %s", dir, root)
	}

	var utts []models.ScoredUtterance
	data, err := os.ReadFile(filepath.Join(dir, "utterances.json"))
	if err != nil {
		t.Fatalf("reading utterances.json: %v", err)
	}
	if err := json.Unmarshal(data, &utts); err != nil {
		t.Fatalf("decoding utterances.json: %v", err)
	}
	if len(utts) != 1 || utts[0].Speaker != "Adam" {
		t.Errorf("unexpected utterances content: %+v", utts)
	}

	var summary struct {
		RunID     string                   `json:"runId"`
		Summaries []models.SpeakerSummary  `json:"summaries"`
		Series    []models.TimeSeriesPoint `json:"series"`
	}
	data, err = os.ReadFile(filepath.Join(dir, "summary.json"))
	if err != nil {
		t.Fatalf("reading summary.json: %v", err)
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decoding summary.json: %v", err)
	}
	if summary.RunID != "run-abc" || len(summary.Summaries) != 1 || len(summary.Series) != 1 {
		t.Errorf("unexpected summary content: %+v", summary)
	}
}

func TestWrite_BadRoot(t *testing.T) {
	// a file in place of the output root must fail, not silently succeed
	root := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Write(root, &Bundle{GeneratedAt: time.Now()})
	if err == nil {
		t.Fatal("expected error when output root is a file")
	}
}
