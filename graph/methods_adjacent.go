// File: methods_adjacent.go
// Role: neighbourhood queries — Neighbors, Degree, AdjacencyList.
// Determinism: Neighbors() and AdjacencyList() sort neighbour IDs
// ascending, matching the teacher's sorted-output convention.
package graph

import "sort"

// Neighbors returns a sorted snapshot of v's neighbours. Returns
// ErrVertexNotFound if v is absent.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns deg(v), or -1 if v is absent.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[v]
	if !ok {
		return -1
	}

	return len(nbrs)
}

// AdjacencyList returns a snapshot mapping each vertex to its sorted
// neighbour list. Each slice is freshly allocated.
// Complexity: O(V + E log maxDeg).
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		buf := make([]int, 0, len(nbrs))
		for n := range nbrs {
			buf = append(buf, n)
		}
		sort.Ints(buf)
		out[v] = buf
	}

	return out
}

// MaxDegree returns the highest degree among all vertices, or 0 for an
// empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	max := 0
	for _, nbrs := range g.adjacency {
		if len(nbrs) > max {
			max = len(nbrs)
		}
	}

	return max
}
