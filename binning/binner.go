// File: binner.go
// Role: C6 — adaptive degree binning (spec §4.5): greedy right-to-left
// merge until every bin's mean mass is >=1 node in expectation, then
// tail-tightening of wide bins, then width-dependent bounds.
package binning

import (
	"math"

	"github.com/ninsei-dev/graiph/graiperr"
)

// mergeTolerance is the 0.1/N slack against rounding noise the spec
// allows when checking a bin's mass against the "one node in
// expectation" floor.
const mergeTolerance = 0.1

// tailFraction is the minimum share of a wide bin's total mass a single
// boundary degree must carry to stay inside the bin, per spec's "tail
// mass ... >= 1% of total" tightening rule.
const tailFraction = 0.01

// safetyMargin multiplies the wide-bin tolerance per spec §4.5 ("safety
// margin for different node counts").
const safetyMargin = 1.1

type workingBin struct {
	lo, hi int
	mass   float64 // probability mass, sums to 1 across all bins
}

// Build computes the binned degree distribution from a target's mean and
// std degree histograms (as produced by package sampler) and its sample
// size N. mean and std must have equal, positive length.
func Build(mean, std []float64, sampleSize int) (*Bins, error) {
	if len(mean) == 0 || len(mean) != len(std) {
		return nil, graiperr.New(graiperr.KindBadInputs, "mean/std degree histograms must be equal-length and non-empty")
	}
	if sampleSize <= 0 {
		return nil, graiperr.New(graiperr.KindBadInputs, "sample size must be > 0, got %d", sampleSize)
	}

	total := 0.0
	for _, m := range mean {
		total += m
	}
	if total <= 0 {
		return nil, graiperr.New(graiperr.KindBadInputs, "degree histogram carries no mass")
	}

	bins := make([]workingBin, len(mean))
	for d, m := range mean {
		bins[d] = workingBin{lo: d, hi: d, mass: m / total}
	}

	bins = mergeRightToLeft(bins, sampleSize)
	bins = tightenTails(bins, mean, total)

	out := &Bins{
		Intervals: make([]Bin, len(bins)),
		PTarget:   make([]float64, len(bins)),
		PBounds:   make([]float64, len(bins)),
	}
	for i, b := range bins {
		out.Intervals[i] = Bin{Lo: b.lo, Hi: b.hi}
		out.PTarget[i] = b.mass
		out.PBounds[i] = bound(b, std, total, sampleSize)
	}

	return out, nil
}

// mergeRightToLeft repeatedly folds a too-small bin into its left
// neighbour until every remaining bin's mass clears the "one node in
// expectation" floor (mass*N >= 1-mergeTolerance), scanning from the
// highest degree down.
func mergeRightToLeft(bins []workingBin, n int) []workingBin {
	threshold := (1 - mergeTolerance) / float64(n)

	for i := len(bins) - 1; i > 0; i-- {
		if bins[i].mass >= threshold {
			continue
		}
		bins[i-1].hi = bins[i].hi
		bins[i-1].mass += bins[i].mass
		bins = append(bins[:i], bins[i+1:]...)
	}

	return bins
}

// tightenTails shrinks wide bins inward, folding boundary degrees whose
// individual share of the bin's mass is below tailFraction into the
// adjacent bin, removing the zero/near-zero-mass tails a wide merged bin
// can accumulate. The low edge of the first bin and the high edge of the
// last bin have no adjacent bin and are left in place.
func tightenTails(bins []workingBin, mean []float64, total float64) []workingBin {
	for i := range bins {
		b := &bins[i]
		for i > 0 && b.hi > b.lo {
			if b.mass <= 0 {
				break
			}
			share := (mean[b.lo] / total) / b.mass
			if share >= tailFraction {
				break
			}
			moved := mean[b.lo] / total
			b.mass -= moved
			b.lo++
			bins[i-1].hi = b.lo - 1
			bins[i-1].mass += moved
		}
		for i < len(bins)-1 && b.hi > b.lo {
			if b.mass <= 0 {
				break
			}
			share := (mean[b.hi] / total) / b.mass
			if share >= tailFraction {
				break
			}
			moved := mean[b.hi] / total
			b.mass -= moved
			b.hi--
			bins[i+1].lo = b.hi + 1
			bins[i+1].mass += moved
		}
	}

	return bins
}

// bound computes PBounds for a bin: +-2*std (normalized) for width-1
// bins, or the scaled fractional-count margin for wider bins, per spec
// §4.5.
func bound(b workingBin, std []float64, total float64, n int) float64 {
	if b.lo == b.hi {
		return 2 * std[b.lo] / total
	}

	massCount := b.mass * float64(n)
	fracUp := math.Ceil(massCount) - massCount
	fracDown := massCount - math.Floor(massCount)
	margin := fracUp
	if fracDown > margin {
		margin = fracDown
	}

	return margin * safetyMargin / float64(n)
}
