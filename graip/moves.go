// File: moves.go
// Role: the node-add/remove and edge-add/remove proposal moves of the
// GRAIP main loop (spec §4.6).
package graip

import (
	"math"
	"math/rand"

	"github.com/ninsei-dev/graiph/graph"
)

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// weightedVertexByDegree samples a vertex proportional to its degree. If
// every vertex has degree 0 (an edgeless graph), it falls back to a
// uniform pick.
func weightedVertexByDegree(g *graph.Graph, rng *rand.Rand) int {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return -1
	}

	total := 0.0
	weights := make([]float64, len(vertices))
	for i, v := range vertices {
		w := float64(g.Degree(v))
		weights[i] = w
		total += w
	}
	if total == 0 {
		return vertices[rng.Intn(len(vertices))]
	}

	target := rng.Float64() * total
	running := 0.0
	for i, w := range weights {
		running += w
		if target <= running {
			return vertices[i]
		}
	}

	return vertices[len(vertices)-1]
}

// globalClusteringCoefficient returns Cg = 3T/(W+3T) from the target's
// wedge/triangle counts (ClassNames3/4/5's first two entries).
func globalClusteringCoefficient(eWedge, eTriangle float64) float64 {
	denom := eWedge + 3*eTriangle
	if denom == 0 {
		return 0
	}

	return 3 * eTriangle / denom
}

// addNode adds vertex newID to g, connected per spec §4.6's clique-or-
// probabilistic rule. v is the degree-weighted
// "first neighbour" already sampled by the caller.
func addNode(g *graph.Graph, v, newID int, cg float64, rng *rand.Rand) {
	_ = g.AddVertex(newID)

	clique := maxCliqueContaining(g, v)
	if len(clique) >= 4 {
		for _, u := range clique {
			_ = g.AddEdge(newID, u)
		}

		return
	}

	nbrs, _ := g.Neighbors(v)
	deg := float64(len(nbrs))
	edgesAmongNeighbours := countEdgesAmong(g, nbrs)

	p := 0.0
	if deg > 0 {
		p = 0.5*(deg+1)*cg - float64(edgesAmongNeighbours)/deg
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	for _, n := range nbrs {
		if rng.Float64() < p {
			_ = g.AddEdge(newID, n)
		}
	}
	_ = g.AddEdge(newID, v)
}

func countEdgesAmong(g *graph.Graph, nodes []int) int {
	count := 0
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if g.HasEdge(nodes[i], nodes[j]) {
				count++
			}
		}
	}

	return count
}

// removeNode deletes a uniformly random vertex and returns it.
func removeNode(g *graph.Graph, rng *rand.Rand) int {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return -1
	}
	v := vertices[rng.Intn(len(vertices))]
	_ = g.RemoveVertex(v)

	return v
}

// addEdge samples two non-adjacent, distinct vertices and returns
// (u,v,ok); g is not modified.
func addEdge(g *graph.Graph, rng *rand.Rand) (int, int, bool) {
	vertices := g.Vertices()
	if len(vertices) < 2 {
		return 0, 0, false
	}

	const maxAttempts = 200
	for i := 0; i < maxAttempts; i++ {
		u := vertices[rng.Intn(len(vertices))]
		v := vertices[rng.Intn(len(vertices))]
		if u == v || g.HasEdge(u, v) {
			continue
		}

		return u, v, true
	}

	return 0, 0, false
}

// removeEdge samples a vertex of degree>=1 and one of its neighbours,
// and returns that edge as (u,v,ok); g is not modified.
func removeEdge(g *graph.Graph, rng *rand.Rand) (int, int, bool) {
	vertices := g.Vertices()
	candidates := make([]int, 0, len(vertices))
	for _, v := range vertices {
		if g.Degree(v) >= 1 {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}

	u := candidates[rng.Intn(len(candidates))]
	nbrs, _ := g.Neighbors(u)
	v := nbrs[rng.Intn(len(nbrs))]

	return u, v, true
}
