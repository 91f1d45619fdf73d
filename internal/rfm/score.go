package rfm

import (
	"sort"

	"github.com/shopmetrics/retailpulse/internal/model"
)

// ScoreMode selects the direction of a quintile score.
type ScoreMode int

// Score directions.
const (
	// Forward gives higher scores to higher raw values (frequency, monetary).
	Forward ScoreMode = iota
	// Reversed gives higher scores to lower raw values (recency).
	Reversed
)

// Cutpoints holds the four quintile cut values of one population.
type Cutpoints struct {
	P20 float64
	P40 float64
	P60 float64
	P80 float64
}

// CutpointsOf computes quintile cut values from a population sorted
// ascending. Cut positions use floor(n*p), matching deterministic boundary
// behavior for small or tied populations. The population must be non-empty
// and already sorted; callers sort once per dimension per analysis run.
func CutpointsOf(sorted []float64) Cutpoints {
	n := len(sorted)
	return Cutpoints{
		P20: sorted[n*20/100],
		P40: sorted[n*40/100],
		P60: sorted[n*60/100],
		P80: sorted[n*80/100],
	}
}

// Score converts a raw value into an ordinal 1-5 score relative to the
// population the cut points were derived from. Pure function; scoring the
// same value against the same cut points always yields the same score.
func Score(value float64, cuts Cutpoints, mode ScoreMode) int {
	if mode == Reversed {
		switch {
		case value <= cuts.P20:
			return 5
		case value <= cuts.P40:
			return 4
		case value <= cuts.P60:
			return 3
		case value <= cuts.P80:
			return 2
		default:
			return 1
		}
	}

	switch {
	case value <= cuts.P20:
		return 1
	case value <= cuts.P40:
		return 2
	case value <= cuts.P60:
		return 3
	case value <= cuts.P80:
		return 4
	default:
		return 5
	}
}

// ScoreProfiles assigns R/F/M scores and a segment to every profile,
// scoring each dimension against the full customer population. The profile
// list must be non-empty; empty customer sets are the caller's
// responsibility to guard. The input slice is not modified.
func ScoreProfiles(profiles []model.CustomerProfile) []model.CustomerProfile {
	recencies := make([]float64, len(profiles))
	frequencies := make([]float64, len(profiles))
	monetaries := make([]float64, len(profiles))
	for i, p := range profiles {
		recencies[i] = float64(p.Recency)
		frequencies[i] = float64(p.Frequency)
		monetaries[i] = p.Monetary
	}
	sort.Float64s(recencies)
	sort.Float64s(frequencies)
	sort.Float64s(monetaries)

	recencyCuts := CutpointsOf(recencies)
	frequencyCuts := CutpointsOf(frequencies)
	monetaryCuts := CutpointsOf(monetaries)

	scored := make([]model.CustomerProfile, len(profiles))
	for i, p := range profiles {
		p.RScore = Score(float64(p.Recency), recencyCuts, Reversed)
		p.FScore = Score(float64(p.Frequency), frequencyCuts, Forward)
		p.MScore = Score(p.Monetary, monetaryCuts, Forward)
		p.Segment = ClassifySegment(p.RScore, p.FScore)
		scored[i] = p
	}

	return scored
}
