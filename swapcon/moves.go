// File: moves.go
// Role: the double-edge-swap proposal of spec §4.7: pick disjoint edges
// (a,b),(c,d) with a not adjacent to d and b not adjacent to c, and
// replace them with (a,d),(b,c).
package swapcon

import (
	"math/rand"

	"github.com/ninsei-dev/graiph/graph"
)

// maxSwapAttempts bounds the search for a valid disjoint edge pair
// before proposeSwap gives up for this step.
const maxSwapAttempts = 100

// proposeSwap finds a valid double-edge-swap candidate and returns the
// resulting graph; g is not mutated. ok is false if no valid pair was
// found within maxSwapAttempts tries (the caller should just retry the
// step rather than treat this as fatal).
func proposeSwap(g *graph.Graph, rng *rand.Rand) (candidate *graph.Graph, ok bool) {
	edges := g.Edges()
	if len(edges) < 2 {
		return nil, false
	}

	for t := 0; t < maxSwapAttempts; t++ {
		e1 := edges[rng.Intn(len(edges))]
		e2 := edges[rng.Intn(len(edges))]
		a, b := e1[0], e1[1]
		c, d := e2[0], e2[1]

		if a == c && b == d {
			continue
		}
		if a == d || b == c {
			continue
		}
		if g.HasEdge(a, d) || g.HasEdge(b, c) {
			continue
		}

		candidate = g.Clone()
		_ = candidate.RemoveEdge(a, b)
		_ = candidate.RemoveEdge(c, d)
		_ = candidate.AddEdge(a, d)
		_ = candidate.AddEdge(b, c)

		return candidate, true
	}

	return nil, false
}
