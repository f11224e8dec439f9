// File: transform21.go
// Role: the fixed 21x21 non-induced-to-induced count transform for
// 5-node graphlets, ported verbatim from the ESCAPE reference
// implementation. Applied as an exact integer matrix-vector product,
// never floating point.
package graphlet

type transformMatrix [21][21]int64

func (m transformMatrix) apply(x [21]int64) [21]int64 {
	var out [21]int64
	for i := 0; i < 21; i++ {
		var sum int64
		for j := 0; j < 21; j++ {
			sum += m[i][j] * x[j]
		}
		out[i] = sum
	}

	return out
}

var transform21 = transformMatrix{
	{1, 0, 0, -1, 0, 0, 0, 0, 1, 0, 1, 0, 0, -2, -1, -1, 0, 1, 2, -3, 5},
	{0, 1, 0, -2, -1, -2, -2, 0, 4, 4, 5, 4, 6, -12, -9, -10, -10, 20, 20, -36, 60},
	{0, 0, 1, 0, -2, -1, -2, -5, 4, 4, 2, 7, 6, -6, -6, -10, -14, 24, 18, -36, 60},
	{0, 0, 0, 1, 0, 0, 0, 0, -2, 0, -2, 0, 0, 6, 3, 3, 0, -4, -8, 15, -30},
	{0, 0, 0, 0, 1, 0, 0, 0, -4, -2, 0, -2, 0, 0, 3, 6, 6, -16, -12, 30, -60},
	{0, 0, 0, 0, 0, 1, 0, 0, 0, -2, -2, -1, 0, 6, 6, 5, 4, -12, -14, 30, -60},
	{0, 0, 0, 0, 0, 0, 1, 0, 0, -1, -1, -2, -6, 6, 3, 4, 8, -16, -12, 30, -60},
	{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, -1, 0, 0, 0, 1, 2, -4, -2, 6, -12},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, -1, 0, 2, 2, -6, 15},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, -3, -2, -2, 8, 8, -24, 60},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, -6, -3, -2, 0, 4, 10, -24, 60},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, -2, -4, 12, 6, -24, 60},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 0, 0, -1, 2, 1, -4, 10},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, -1, 3, -10},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, -2, 6, -20},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, -4, -4, 18, -60},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -4, -1, 9, -30},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, -3, 15},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -6, 30},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -10},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
}
