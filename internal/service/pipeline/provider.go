package pipeline

import (
	"fmt"

	"transcript-sentiment-service/internal/config"
	"transcript-sentiment-service/internal/service/scorer"
	"transcript-sentiment-service/internal/service/scorer/mock"
	"transcript-sentiment-service/internal/service/scorer/remote"
	"transcript-sentiment-service/internal/service/scorer/vader"
)

// ForProvider selects a scorer adapter from configuration. Unknown providers
// fail here, at startup, not mid-run.
func ForProvider(cfg *config.Config) (scorer.Adapter, error) {
	switch cfg.ScorerProvider {
	case "vader", "":
		return vader.New(), nil
	case "remote":
		if cfg.LexiconURL == "" {
			return nil, fmt.Errorf("remote scorer requires LEXICON_URL")
		}
		return remote.New(cfg.LexiconURL), nil
	case "mock":
		return mock.New(), nil
	default:
		return nil, fmt.Errorf("unknown scorer provider %q", cfg.ScorerProvider)
	}
}
