// File: methods_edges.go
// Role: edge lifecycle — AddEdge/RemoveEdge/HasEdge/EdgeCount/Edges.
// Both endpoints are auto-vivified via ensureVertex, mirroring the
// teacher's AddEdge-creates-vertices convention in core/methods_edges.go.
package graph

import "sort"

// AddEdge inserts an undirected edge {u,v}, creating either endpoint
// that does not yet exist. Returns ErrSelfLoop if u==v, ErrEdgeExists
// if the edge is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)

	if _, ok := g.adjacency[u][v]; ok {
		return ErrEdgeExists
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes edge {u,v}. Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} is present.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a snapshot of all edges as {u,v} pairs with u<v, sorted
// lexicographically.
// Complexity: O(V + E log E).
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][2]int, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}
