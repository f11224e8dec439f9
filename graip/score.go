// File: score.go
// Role: the composite score function of spec §4.6 — a weighted blend of
// degree-histogram and graphlet-vector distance to the target.
package graip

import (
	"math"

	"github.com/ninsei-dev/graiph/binning"
)

const logClampP = 1e-9

// scoreDegree implements score_deg: the mean absolute relative error
// between H's and the target's binned survival function (cumulative
// mass from the high-degree tail downward), averaged over all bins.
func scoreDegree(bins *binning.Bins, hist []float64) float64 {
	observed := bins.Observe(hist)
	nBins := len(bins.PTarget)
	if nBins == 0 {
		return 0
	}

	cdfH := survivalCDF(observed)
	cdfTarget := survivalCDF(bins.PTarget)

	sum := 0.0
	for i := 0; i < nBins; i++ {
		if cdfTarget[i] == 0 {
			continue
		}
		sum += math.Abs(cdfH[i]-cdfTarget[i]) / cdfTarget[i]
	}

	return sum / float64(nBins)
}

// survivalCDF returns, for each index i, the sum of p[i:] — the
// cumulative mass from the high-degree tail down to bin i.
func survivalCDF(p []float64) []float64 {
	out := make([]float64, len(p))
	running := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		running += p[i]
		out[i] = running
	}

	return out
}

// scoreGraphlet implements score_gl: the per-class contribution f of
// spec §4.6, averaged over classes with non-zero expectation, times a
// 10x penalty if any zero-expectation class has a non-zero observed
// count.
func scoreGraphlet(counts []int64, eGL, stdGL []float64) float64 {
	sum := 0.0
	n := 0
	zeroExpectationViolated := false

	for i := range counts {
		e := eGL[i]
		std := stdGL[i]
		count := float64(counts[i])

		if e == 0 {
			if count != 0 {
				zeroExpectationViolated = true
			}
			continue
		}
		n++
		sum += classContribution(count, e, std)
	}

	score := 0.0
	if n > 0 {
		score = sum / float64(n)
	}
	if zeroExpectationViolated {
		score *= 10
	}

	return score
}

func classContribution(count, e, std float64) float64 {
	p := std / e
	switch {
	case count == 0 && e > std:
		return math.Log(0.1/e) / logOneMinus(p)
	case count < e-std:
		return math.Log(count/e) / logOneMinus(p)
	case count > e+std:
		return math.Log(count/e) / logOnePlus(p)
	default:
		return 0
	}
}

func logOneMinus(p float64) float64 {
	v := 1 - p
	if v < logClampP {
		v = logClampP
	}

	return math.Log(v)
}

func logOnePlus(p float64) float64 {
	return math.Log(1 + p)
}

// score blends scoreDegree and scoreGraphlet with weight w per spec
// §4.6: score = w*score_deg + (1-w)*score_gl.
func score(w float64, bins *binning.Bins, hist []float64, counts []int64, eGL, stdGL []float64) float64 {
	return w*scoreDegree(bins, hist) + (1-w)*scoreGraphlet(counts, eGL, stdGL)
}
