// Package aggregate computes per-speaker summary statistics and the
// chronological score series consumed by plotting downstream.
package aggregate

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"transcript-sentiment-service/internal/models"
)

// Summarize groups scored utterances by speaker and computes min, max, mean
// and median of the compound scores. Speakers are returned in sorted order so
// output is deterministic.
func Summarize(scored []models.ScoredUtterance) []models.SpeakerSummary {
	bySpeaker := make(map[string][]float64)
	for _, u := range scored {
		bySpeaker[u.Speaker] = append(bySpeaker[u.Speaker], u.Scores.Compound)
	}

	speakers := make([]string, 0, len(bySpeaker))
	for s := range bySpeaker {
		speakers = append(speakers, s)
	}
	sort.Strings(speakers)

	out := make([]models.SpeakerSummary, 0, len(speakers))
	for _, s := range speakers {
		compounds := bySpeaker[s]
		sort.Float64s(compounds)
		out = append(out, models.SpeakerSummary{
			Speaker:    s,
			Utterances: len(compounds),
			Min:        compounds[0],
			Max:        compounds[len(compounds)-1],
			Mean:       stat.Mean(compounds, nil),
			Median:     stat.Quantile(0.5, stat.Empirical, compounds, nil),
		})
	}
	return out
}

// TimeSeries flattens scored utterances into plot-ready points ordered by
// turn ID.
func TimeSeries(scored []models.ScoredUtterance) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, 0, len(scored))
	for _, u := range scored {
		out = append(out, models.TimeSeriesPoint{
			TurnID:   u.TurnID,
			Speaker:  u.Speaker,
			Compound: u.Scores.Compound,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TurnID < out[j].TurnID })
	return out
}
