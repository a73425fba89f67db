package transcript

import (
	"regexp"
	"strings"

	"transcript-sentiment-service/internal/models"
)

// DefaultNoisePattern matches lines carrying no transcript content: blank
// lines and page markers left over from document extraction.
var DefaultNoisePattern = regexp.MustCompile(`^\s*(Page\s+\d+)?\s*$`)

// RawLine is one line of extracted document text, in document order.
type RawLine struct {
	Index int
	Text  string
}

// SplitLines splits an extracted text blob into raw lines.
func SplitLines(blob string) []RawLine {
	if blob == "" {
		return nil
	}
	parts := strings.Split(strings.ReplaceAll(blob, "\r\n", "\n"), "\n")
	lines := make([]RawLine, len(parts))
	for i, p := range parts {
		lines[i] = RawLine{Index: i, Text: p}
	}
	return lines
}

// Stats counts what a pass over the input dropped and kept.
type Stats struct {
	Lines    int // total input lines
	Noise    int // dropped by the noise pattern
	Labels   int // speaker label lines (consumed, not emitted)
	Preamble int // content lines before the first label
	Other    int // content lines attributed to an excluded speaker
}

// Attributor turns raw transcript lines into speaker-attributed utterances.
// It is stateless across calls and safe for concurrent use on independent
// inputs.
type Attributor struct {
	roster *Roster
	noise  *regexp.Regexp
}

// NewAttributor builds an attributor. A nil noise pattern selects
// DefaultNoisePattern.
func NewAttributor(roster *Roster, noise *regexp.Regexp) *Attributor {
	if noise == nil {
		noise = DefaultNoisePattern
	}
	return &Attributor{roster: roster, noise: noise}
}

// Attribute runs the single forward pass described by the transcript format:
//
//  1. noise lines are dropped before label detection, so they never start a
//     turn;
//  2. a line exactly matching a roster label sets the current speaker and
//     increments the turn counter, and is itself dropped;
//  3. every other line inherits the current speaker and turn (forward fill);
//     lines before the first label have neither and are dropped;
//  4. lines attributed to the excluded "Other" speaker are dropped;
//  5. surviving lines are grouped by (turn, speaker) and joined with single
//     spaces, in document order.
//
// Output turn IDs are renumbered to a dense 1..K sequence. Empty groups are
// never emitted. An input with no label lines yields no utterances and no
// error.
func (a *Attributor) Attribute(lines []RawLine) ([]models.Utterance, Stats) {
	stats := Stats{Lines: len(lines)}

	var (
		out      []models.Utterance
		speaker  string
		turn     int
		lastTurn = -1
	)

	for _, ln := range lines {
		if a.noise.MatchString(ln.Text) {
			stats.Noise++
			continue
		}
		if name, ok := a.roster.Resolve(ln.Text); ok {
			speaker = name
			turn++
			lastTurn = -1 // a label always starts a fresh group
			stats.Labels++
			continue
		}
		if speaker == "" {
			stats.Preamble++
			continue
		}
		if speaker == OtherSpeaker {
			stats.Other++
			continue
		}
		text := strings.TrimSpace(ln.Text)
		if text == "" {
			// only reachable with a custom noise pattern that lets
			// whitespace-only lines through
			stats.Noise++
			continue
		}
		if turn == lastTurn {
			out[len(out)-1].Text += " " + text
			continue
		}
		out = append(out, models.Utterance{Speaker: speaker, Text: text})
		lastTurn = turn
	}

	for i := range out {
		out[i].TurnID = i + 1
	}
	return out, stats
}
