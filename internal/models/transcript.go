// Package models defines the data structures for transcript scoring events.
package models

// Utterance is one contiguous speaker turn extracted from a transcript.
// Turn IDs are dense, start at 1 and follow document order.
type Utterance struct {
	TurnID  int    `json:"turnId"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// SentimentScores holds the lexicon scores for a single utterance.
// Negative/Neutral/Positive are proportions in [0,1]; Compound is the
// normalized aggregate in [-1,1].
type SentimentScores struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

// ScoredUtterance is an utterance together with its sentiment scores.
type ScoredUtterance struct {
	Utterance
	Scores SentimentScores `json:"scores"`
}

// SpeakerSummary aggregates compound scores over all of a speaker's utterances.
type SpeakerSummary struct {
	Speaker    string  `json:"speaker"`
	Utterances int     `json:"utterances"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
}

// TimeSeriesPoint is one plot-ready sample: the compound score of one turn.
type TimeSeriesPoint struct {
	TurnID   int     `json:"turnId"`
	Speaker  string  `json:"speaker"`
	Compound float64 `json:"compound"`
}

// UtteranceScored is the event published once per scored utterance.
type UtteranceScored struct {
	EventType string          `json:"eventType"`
	RunID     string          `json:"runId"`
	Timestamp int64           `json:"timestamp"`
	TurnID    int             `json:"turnId"`
	Speaker   string          `json:"speaker"`
	Text      string          `json:"text"`
	Provider  string          `json:"provider"`
	Scores    SentimentScores `json:"scores"`
}

// SummaryComputed is the event published once per speaker at the end of a run.
type SummaryComputed struct {
	EventType string         `json:"eventType"`
	RunID     string         `json:"runId"`
	Timestamp int64          `json:"timestamp"`
	Provider  string         `json:"provider"`
	Summary   SpeakerSummary `json:"summary"`
}
