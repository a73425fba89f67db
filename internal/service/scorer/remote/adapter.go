// Package remote scores text against an external lexicon service over HTTP.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"transcript-sentiment-service/internal/models"
)

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

// Adapter implements scorer.Adapter by POSTing each utterance to a lexicon
// service's /score endpoint.
type Adapter struct {
	baseURL string
	client  *http.Client
}

// New creates a remote adapter for the service at baseURL.
func New(baseURL string) *Adapter {
	return &Adapter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the provider name.
func (a *Adapter) Name() string { return "remote" }

// Score posts the text and decodes the service's score payload.
func (a *Adapter) Score(ctx context.Context, text string) (models.SentimentScores, error) {
	body, _ := json.Marshal(scoreRequest{Text: text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return models.SentimentScores{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return models.SentimentScores{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.SentimentScores{}, fmt.Errorf("lexicon service %s: %s", resp.Status, string(b))
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.SentimentScores{}, fmt.Errorf("lexicon decode: %w", err)
	}
	return models.SentimentScores{
		Negative: out.Negative,
		Neutral:  out.Neutral,
		Positive: out.Positive,
		Compound: out.Compound,
	}, nil
}
