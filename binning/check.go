// File: check.go
// Role: the per-bin tolerance predicate GRAIP's termination check uses
// (spec §4.6: "every binned P_i is within +-P_bounds_i of target").
package binning

// Observe converts a raw degree histogram (counts, not probabilities)
// into per-bin observed probabilities aligned with b's intervals.
func (b *Bins) Observe(hist []float64) []float64 {
	total := 0.0
	for _, c := range hist {
		total += c
	}

	observed := make([]float64, len(b.Intervals))
	if total <= 0 {
		return observed
	}
	for i, interval := range b.Intervals {
		mass := 0.0
		for d := interval.Lo; d <= interval.Hi && d < len(hist); d++ {
			mass += hist[d]
		}
		observed[i] = mass / total
	}

	return observed
}

// WithinTolerance reports whether every bin's observed probability lies
// within PBounds of PTarget.
func (b *Bins) WithinTolerance(hist []float64) bool {
	observed := b.Observe(hist)
	for i := range b.Intervals {
		diff := observed[i] - b.PTarget[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > b.PBounds[i] {
			return false
		}
	}

	return true
}
