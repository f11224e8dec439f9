// File: energy.go
// Role: the SwapCon objective (spec §4.7): mean relative graphlet-count
// deviation, zero-contribution skipped where both observed and
// expected counts are zero.
package swapcon

import "math"

// energy computes mean_i |gl_i - E_gl_i| / (gl_i + E_gl_i), skipping
// terms where both gl_i and eGL_i are zero (0/0 contributes nothing).
func energy(gl []int64, eGL []float64) float64 {
	total := 0.0
	for i, c := range gl {
		e := eGL[i]
		if c == 0 && e == 0 {
			continue
		}
		total += math.Abs(float64(c)-e) / (float64(c) + e)
	}

	return total / float64(len(gl))
}
