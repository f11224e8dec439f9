// File: seed.go
// Role: the ten Barabasi-Albert seed candidates of spec §4.6, scored and
// the lowest-scoring kept. Hand-rolled preferential attachment: the
// exact gonum.org/v1/gonum/graph/graphs/gen.BarabasiAlbert signature is
// not grounded by any file in the retrieved pack, so this follows the
// textbook repeated-nodes construction instead (documented in
// DESIGN.md).
package graip

import (
	"math"
	"math/rand"

	"github.com/ninsei-dev/graiph/graph"
)

// barabasiAlbert builds an n-node graph by preferential attachment: start
// with m isolated nodes, then add one node at a time, connecting it to m
// distinct existing nodes chosen with probability proportional to
// degree (the classic "repeated nodes list" sampling scheme).
func barabasiAlbert(n, m int, rng *rand.Rand) *graph.Graph {
	if m < 1 {
		m = 1
	}
	if n <= m {
		n = m + 1
	}

	g := graph.NewGraph()
	for i := 0; i < m; i++ {
		_ = g.AddVertex(i)
	}

	repeated := make([]int, 0, 2*n*m)
	for i := 0; i < m; i++ {
		repeated = append(repeated, i)
	}

	for newNode := m; newNode < n; newNode++ {
		_ = g.AddVertex(newNode)
		targets := pickDistinctWeighted(repeated, m, newNode, rng)
		for _, t := range targets {
			_ = g.AddEdge(newNode, t)
		}
		repeated = append(repeated, targets...)
		for i := 0; i < m; i++ {
			repeated = append(repeated, newNode)
		}
	}

	return g
}

func pickDistinctWeighted(pool []int, count, exclude int, rng *rand.Rand) []int {
	if len(pool) == 0 {
		return nil
	}

	chosen := make(map[int]struct{}, count)
	out := make([]int, 0, count)
	const maxAttempts = 10000
	for attempts := 0; len(out) < count && attempts < maxAttempts; attempts++ {
		cand := pool[rng.Intn(len(pool))]
		if cand == exclude {
			continue
		}
		if _, ok := chosen[cand]; ok {
			continue
		}
		chosen[cand] = struct{}{}
		out = append(out, cand)
	}

	return out
}

// bestSeedCandidate generates 10 Barabasi-Albert candidates of n0=round
// (0.2*E_n) nodes and m=round(E_e/E_n) attachments, and returns the one
// with the lowest score.
func bestSeedCandidate(eNodes, eEdges float64, arity int, bins scoreInputs, rng *rand.Rand) *graph.Graph {
	n0 := int(math.Round(0.2 * eNodes))
	if n0 < 2 {
		n0 = 2
	}
	m := int(math.Round(eEdges / eNodes))
	if m < 1 {
		m = 1
	}

	var best *graph.Graph
	bestScore := math.Inf(1)

	for i := 0; i < 10; i++ {
		candidate := barabasiAlbert(n0, m, rng)
		s, err := scoreGraph(candidate, arity, bins)
		if err != nil {
			continue
		}
		if best == nil || s < bestScore {
			best, bestScore = candidate, s
		}
	}
	if best == nil {
		best = barabasiAlbert(n0, m, rng)
	}

	return best
}
