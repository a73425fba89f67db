// Package mock provides a deterministic scorer for testing without the real
// lexicon. Scores are derived from small built-in word lists, so tests can
// assert on exact values.
package mock

import (
	"context"
	"strings"

	"transcript-sentiment-service/internal/models"
)

// Word lists kept deliberately tiny; anything not listed counts as neutral.
var (
	positiveWords = map[string]bool{
		"good": true, "great": true, "happy": true, "hope": true, "love": true,
	}
	negativeWords = map[string]bool{
		"bad": true, "awful": true, "sad": true, "fear": true, "hate": true,
	}
)

// Adapter implements scorer.Adapter with word-count based scores.
type Adapter struct{}

// New creates a mock scorer.
func New() *Adapter { return &Adapter{} }

// Name returns the provider name.
func (a *Adapter) Name() string { return "mock" }

// Score counts positive and negative words. The compound score is the signed
// balance of matches over total words, so "good good bad" scores positive.
func (a *Adapter) Score(ctx context.Context, text string) (models.SentimentScores, error) {
	if err := ctx.Err(); err != nil {
		return models.SentimentScores{}, err
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return models.SentimentScores{Neutral: 1}, nil
	}

	var pos, neg int
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:'\"")
		switch {
		case positiveWords[w]:
			pos++
		case negativeWords[w]:
			neg++
		}
	}

	n := float64(len(words))
	return models.SentimentScores{
		Negative: float64(neg) / n,
		Neutral:  float64(len(words)-pos-neg) / n,
		Positive: float64(pos) / n,
		Compound: float64(pos-neg) / n,
	}, nil
}
