// File: accumulator.go
// Role: per-worker running sums for the mean/std reduction; merged by
// Sample into population statistics (divisor N, per spec §4.4).
package sampler

import "math"

type accumulator struct {
	n            int
	nodesSum     float64
	nodesSumSq   float64
	edgesSum     float64
	edgesSumSq   float64
	degSum       []float64
	degSumSq     []float64
	glSum        []float64
	glSumSq      []float64
}

func newAccumulator(degLen, glLen int) *accumulator {
	return &accumulator{
		degSum:   make([]float64, degLen),
		degSumSq: make([]float64, degLen),
		glSum:    make([]float64, glLen),
		glSumSq:  make([]float64, glLen),
	}
}

func (a *accumulator) add(nodes, edges int, deg []float64, gl []int64) {
	a.n++
	a.nodesSum += float64(nodes)
	a.nodesSumSq += float64(nodes) * float64(nodes)
	a.edgesSum += float64(edges)
	a.edgesSumSq += float64(edges) * float64(edges)
	for i, d := range deg {
		a.degSum[i] += d
		a.degSumSq[i] += d * d
	}
	for i, c := range gl {
		f := float64(c)
		a.glSum[i] += f
		a.glSumSq[i] += f * f
	}
}

func (a *accumulator) merge(b *accumulator) {
	a.n += b.n
	a.nodesSum += b.nodesSum
	a.nodesSumSq += b.nodesSumSq
	a.edgesSum += b.edgesSum
	a.edgesSumSq += b.edgesSumSq
	for i := range a.degSum {
		a.degSum[i] += b.degSum[i]
		a.degSumSq[i] += b.degSumSq[i]
	}
	for i := range a.glSum {
		a.glSum[i] += b.glSum[i]
		a.glSumSq[i] += b.glSumSq[i]
	}
}

// meanStd returns (mean, population std) for sum/sumSq accumulated over n
// trials. Population variance is clamped at 0 to absorb floating-point
// underflow when all trials agree.
func meanStd(sum, sumSq float64, n int) (float64, float64) {
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return mean, math.Sqrt(variance)
}

func meanStdVec(sum, sumSq []float64, n int) (mean, std []float64) {
	mean = make([]float64, len(sum))
	std = make([]float64, len(sum))
	for i := range sum {
		mean[i], std[i] = meanStd(sum[i], sumSq[i], n)
	}

	return mean, std
}
