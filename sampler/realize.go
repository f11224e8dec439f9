// File: realize.go
// Role: a single Bernoulli realization of a probabilistic Target.
package sampler

import (
	"math/rand"

	"github.com/ninsei-dev/graiph/graph"
)

// realize draws one concrete graph.Graph from target: every edge is
// included independently with its stored probability. Isolated vertices
// (no included incident edge) are still added, matching the Target's
// full vertex set, before the caller restricts to the largest component.
func realize(target *graph.Target, rng *rand.Rand) *graph.Graph {
	g := graph.NewGraph()
	for _, v := range target.Vertices() {
		_ = g.AddVertex(v)
	}
	for _, e := range target.Edges() {
		if rng.Float64() < e.Prob {
			_ = g.AddEdge(e.U, e.V)
		}
	}

	return g
}

// maxPossibleDegree returns the highest number of potential incident
// edges any target vertex carries (regardless of probability), used to
// size the padded degree histogram so every realization's histogram has
// the same length.
func maxPossibleDegree(target *graph.Target) int {
	degree := make(map[int]int, target.VertexCount())
	for _, e := range target.Edges() {
		degree[e.U]++
		degree[e.V]++
	}

	max := 0
	for _, d := range degree {
		if d > max {
			max = d
		}
	}

	return max
}
