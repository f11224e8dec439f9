// File: methods_vertices.go
// Role: vertex lifecycle — AddVertex/RemoveVertex/HasVertex/Vertices/VertexCount.
package graph

import "sort"

// AddVertex inserts v with no incident edges. Returns ErrVertexExists if
// v is already present.
// Complexity: O(1).
func (g *Graph) AddVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[v]; ok {
		return ErrVertexExists
	}
	g.vertices[v] = struct{}{}
	g.adjacency[v] = make(map[int]struct{})

	return nil
}

// ensureVertex adds v if absent, silently. Must be called under g.mu write lock.
func (g *Graph) ensureVertex(v int) {
	if _, ok := g.vertices[v]; !ok {
		g.vertices[v] = struct{}{}
		g.adjacency[v] = make(map[int]struct{})
	}
}

// RemoveVertex deletes v and every edge incident to it.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[v]; !ok {
		return ErrVertexNotFound
	}
	for nbr := range g.adjacency[v] {
		delete(g.adjacency[nbr], v)
		g.edgeCount--
	}
	delete(g.adjacency, v)
	delete(g.vertices, v)

	return nil
}

// HasVertex reports whether v is present.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns a sorted snapshot of all vertex IDs.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
