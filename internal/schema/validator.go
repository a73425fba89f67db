// Package schema validates outbound events before they are published.
package schema

import (
	"errors"
	"fmt"

	"transcript-sentiment-service/internal/models"
)

var (
	ErrMissingRunID   = errors.New("event has no run ID")
	ErrMissingSpeaker = errors.New("event has no speaker")
	ErrEmptyText      = errors.New("utterance event has empty text")
)

// Validator checks event invariants that the attribution pass guarantees.
// A violation here means a bug upstream, not bad input.
type Validator struct{}

// New creates a validator.
func New() *Validator {
	return &Validator{}
}

// ValidateUtterance checks a scored-utterance event.
func (v *Validator) ValidateUtterance(ev models.UtteranceScored) error {
	if ev.RunID == "" {
		return ErrMissingRunID
	}
	if ev.Speaker == "" {
		return ErrMissingSpeaker
	}
	if ev.Text == "" {
		return ErrEmptyText
	}
	if ev.TurnID < 1 {
		return fmt.Errorf("utterance event has turn ID %d, want >= 1", ev.TurnID)
	}
	return nil
}

// ValidateSummary checks a speaker-summary event.
func (v *Validator) ValidateSummary(ev models.SummaryComputed) error {
	if ev.RunID == "" {
		return ErrMissingRunID
	}
	if ev.Summary.Speaker == "" {
		return ErrMissingSpeaker
	}
	if ev.Summary.Utterances < 1 {
		return fmt.Errorf("summary event for %q covers %d utterances, want >= 1",
			ev.Summary.Speaker, ev.Summary.Utterances)
	}
	return nil
}
