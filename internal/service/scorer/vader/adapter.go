// Package vader scores text with the VADER sentiment lexicon, in process.
package vader

import (
	"context"
	"sync"

	"github.com/jonreiter/govader"

	"transcript-sentiment-service/internal/models"
)

// Adapter implements scorer.Adapter on top of govader.
// The analyzer is not documented as safe for concurrent use, so calls are
// serialized.
type Adapter struct {
	mu       sync.Mutex
	analyzer *govader.SentimentIntensityAnalyzer
}

// New creates a VADER adapter with the default lexicon.
func New() *Adapter {
	return &Adapter{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Name returns the provider name.
func (a *Adapter) Name() string { return "vader" }

// Score runs the lexicon over the text. Scoring is local and fast; the
// context is only consulted for cancellation between utterances.
func (a *Adapter) Score(ctx context.Context, text string) (models.SentimentScores, error) {
	if err := ctx.Err(); err != nil {
		return models.SentimentScores{}, err
	}

	a.mu.Lock()
	s := a.analyzer.PolarityScores(text)
	a.mu.Unlock()

	return models.SentimentScores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}, nil
}
