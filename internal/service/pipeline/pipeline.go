// Package pipeline coordinates attribution, scoring, aggregation and event
// publishing for one transcript run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"transcript-sentiment-service/internal/events"
	"transcript-sentiment-service/internal/models"
	"transcript-sentiment-service/internal/observability/logging"
	"transcript-sentiment-service/internal/observability/metrics"
	"transcript-sentiment-service/internal/schema"
	"transcript-sentiment-service/internal/service/aggregate"
	"transcript-sentiment-service/internal/service/scorer"
	"transcript-sentiment-service/internal/transcript"
)

const (
	eventUtteranceScored = "debate.utterance.scored"
	eventSummaryComputed = "debate.speaker.summary"
)

// Result is everything one run produced.
type Result struct {
	RunID      string                   `json:"runId"`
	Provider   string                   `json:"provider"`
	Utterances []models.ScoredUtterance `json:"utterances"`
	Summaries  []models.SpeakerSummary  `json:"summaries"`
	Series     []models.TimeSeriesPoint `json:"series"`
}

// Pipeline runs transcripts through attribution, scoring and aggregation.
// Safe for concurrent runs; all per-run state is local to Run.
type Pipeline struct {
	attributor *transcript.Attributor
	scorer     scorer.Adapter
	publisher  *events.Publisher
	validator  *schema.Validator
	metrics    *metrics.Metrics
}

// New creates a pipeline.
func New(attributor *transcript.Attributor, sc scorer.Adapter, publisher *events.Publisher) *Pipeline {
	return &Pipeline{
		attributor: attributor,
		scorer:     sc,
		publisher:  publisher,
		validator:  schema.New(),
		metrics:    metrics.DefaultMetrics,
	}
}

// Run processes one transcript blob. A scoring failure on a single utterance
// drops that utterance (silence over bad data); the run fails only when the
// transcript produced utterances and none of them could be scored.
func (p *Pipeline) Run(ctx context.Context, blob string) (*Result, error) {
	runID := uuid.NewString()
	provider := p.scorer.Name()
	logger := logging.WithRun(runID, provider)
	start := time.Now()

	lines := transcript.SplitLines(blob)
	utts, stats := p.attributor.Attribute(lines)
	p.metrics.RecordAttribution(stats.Lines, stats.Noise, stats.Labels, stats.Preamble, stats.Other, len(utts))

	logger.Info().
		Int("lines", stats.Lines).
		Int("noise", stats.Noise).
		Int("labels", stats.Labels).
		Int("preamble", stats.Preamble).
		Int("otherSpeaker", stats.Other).
		Int("utterances", len(utts)).
		Msg("Transcript attributed")

	scored := make([]models.ScoredUtterance, 0, len(utts))
	for _, u := range utts {
		if err := ctx.Err(); err != nil {
			p.metrics.RecordRun(false, time.Since(start).Seconds())
			return nil, err
		}

		scoreStart := time.Now()
		s, err := p.scorer.Score(ctx, u.Text)
		p.metrics.RecordScore(provider, err, time.Since(scoreStart).Seconds())
		if err != nil {
			logger.Warn().
				Err(err).
				Int("turnId", u.TurnID).
				Str("speaker", u.Speaker).
				Msg("Scoring failed, dropping utterance")
			continue
		}

		su := models.ScoredUtterance{Utterance: u, Scores: s}
		scored = append(scored, su)
		p.publishUtterance(ctx, logger, runID, provider, su)
	}

	if len(utts) > 0 && len(scored) == 0 {
		p.metrics.RecordRun(false, time.Since(start).Seconds())
		return nil, fmt.Errorf("scoring failed for all %d utterances", len(utts))
	}

	summaries := aggregate.Summarize(scored)
	series := aggregate.TimeSeries(scored)
	for _, s := range summaries {
		p.publishSummary(ctx, logger, runID, provider, s)
	}

	p.metrics.RecordRun(true, time.Since(start).Seconds())
	logger.Info().
		Int("scored", len(scored)).
		Int("speakers", len(summaries)).
		Dur("duration", time.Since(start)).
		Msg("Run completed")

	return &Result{
		RunID:      runID,
		Provider:   provider,
		Utterances: scored,
		Summaries:  summaries,
		Series:     series,
	}, nil
}

// publishUtterance emits one scored-utterance event. Publish failures are
// logged and counted but never fail the run.
func (p *Pipeline) publishUtterance(ctx context.Context, logger zerolog.Logger, runID, provider string, su models.ScoredUtterance) {
	if p.publisher == nil {
		return
	}
	ev := models.UtteranceScored{
		EventType: eventUtteranceScored,
		RunID:     runID,
		Timestamp: time.Now().UnixMilli(),
		TurnID:    su.TurnID,
		Speaker:   su.Speaker,
		Text:      su.Text,
		Provider:  provider,
		Scores:    su.Scores,
	}
	if err := p.validator.ValidateUtterance(ev); err != nil {
		logger.Error().Err(err).Int("turnId", su.TurnID).Msg("Invalid utterance event")
		return
	}
	if err := p.publisher.PublishUtterance(ctx, runID, ev); err != nil {
		logger.Warn().Err(err).Int("turnId", su.TurnID).Msg("Publish failed")
	}
}

// publishSummary emits one speaker-summary event.
func (p *Pipeline) publishSummary(ctx context.Context, logger zerolog.Logger, runID, provider string, s models.SpeakerSummary) {
	if p.publisher == nil {
		return
	}
	ev := models.SummaryComputed{
		EventType: eventSummaryComputed,
		RunID:     runID,
		Timestamp: time.Now().UnixMilli(),
		Provider:  provider,
		Summary:   s,
	}
	if err := p.validator.ValidateSummary(ev); err != nil {
		logger.Error().Err(err).Str("speaker", s.Speaker).Msg("Invalid summary event")
		return
	}
	if err := p.publisher.PublishSummary(ctx, runID, ev); err != nil {
		logger.Warn().Err(err).Str("speaker", s.Speaker).Msg("Publish failed")
	}
}
