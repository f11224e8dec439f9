// File: stats.go
// Role: the TargetStats blob and its gob codec — the data contract
// between the sampler (C5) and the binner/driver (C6/C7).
package statsio

// TargetStats is the immutable target-statistics tuple of spec §3/§6:
// mean & std of node count, edge count, degree histogram and graphlet
// vector, plus the sample size they were estimated from.
//
// EDegrees/StdDegrees are padded to the same length (the target's
// maximum possible degree plus one, so index d holds degree d). EGraphlets/
// StdGraphlets have length 2, 8 or 29 depending on the arity the
// sampler was run with (graphlet.ClassNames3/4/5).
type TargetStats struct {
	Samples      int
	ENodes       float64
	StdNodes     float64
	EEdges       float64
	StdEdges     float64
	EDegrees     []float64
	StdDegrees   []float64
	EGraphlets   []float64
	StdGraphlets []float64
}
