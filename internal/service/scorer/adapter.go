// Package scorer defines the interface for sentiment lexicon providers.
package scorer

import (
	"context"

	"transcript-sentiment-service/internal/models"
)

// Adapter defines the interface for sentiment scoring providers
// (in-process VADER, remote lexicon service, mock for tests).
type Adapter interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// Score computes sentiment scores for one utterance text.
	Score(ctx context.Context, text string) (models.SentimentScores, error)
}
