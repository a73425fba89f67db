// Package report persists run output bundles to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"transcript-sentiment-service/internal/models"
)

// Bundle is everything one run produced, written as a pair of JSON files
// under a per-run directory.
type Bundle struct {
	RunID       string                   `json:"runId"`
	Source      string                   `json:"source"`
	Provider    string                   `json:"provider"`
	GeneratedAt time.Time                `json:"generatedAt"`
	Utterances  []models.ScoredUtterance `json:"utterances"`
	Summaries   []models.SpeakerSummary  `json:"summaries"`
	Series      []models.TimeSeriesPoint `json:"series"`
}

type summaryFile struct {
	RunID       string                   `json:"runId"`
	Source      string                   `json:"source"`
	Provider    string                   `json:"provider"`
	GeneratedAt time.Time                `json:"generatedAt"`
	Summaries   []models.SpeakerSummary  `json:"summaries"`
	Series      []models.TimeSeriesPoint `json:"series"`
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Write creates a run_<timestamp> directory under outputsRoot and writes
// utterances.json (the full scored rows) and summary.json (per-speaker stats
// plus the plot series). It returns the directory path.
func Write(outputsRoot string, b *Bundle) (string, error) {
	dir := filepath.Join(outputsRoot, "run_"+b.GeneratedAt.Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create run dir: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, "utterances.json"), b.Utterances); err != nil {
		return "", fmt.Errorf("write utterances: %w", err)
	}

	s := summaryFile{
		RunID:       b.RunID,
		Source:      b.Source,
		Provider:    b.Provider,
		GeneratedAt: b.GeneratedAt,
		Summaries:   b.Summaries,
		Series:      b.Series,
	}
	if err := writeJSON(filepath.Join(dir, "summary.json"), s); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	return dir, nil
}
