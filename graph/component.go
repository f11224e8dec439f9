// File: component.go
// Role: largest-connected-component extraction, needed before sampling a
// Target and before seeding GRAIP/SwapCon, both of which operate on a
// single connected graph.
package graph

import (
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// LargestComponent returns the induced subgraph on g's largest connected
// component, keeping original vertex IDs. Ties are broken by the lowest
// minimum vertex ID among the tied components, so the result is
// deterministic for a fixed g. An empty g yields an empty result.
//
// The component search itself runs on a throwaway gonum simple.UndirectedGraph
// built from g's adjacency; only the induced subgraph is materialised back
// into g's own Graph type.
// Complexity: O(V + E).
func (g *Graph) LargestComponent() *Graph {
	g.mu.RLock()
	vertices := make([]int, 0, len(g.vertices))
	for v := range g.vertices {
		vertices = append(vertices, v)
	}
	adjacency := make(map[int]map[int]struct{}, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for n := range nbrs {
			cp[n] = struct{}{}
		}
		adjacency[v] = cp
	}
	g.mu.RUnlock()

	ug := simple.NewUndirectedGraph()
	for _, v := range vertices {
		ug.AddNode(simple.Node(v))
	}
	for u, nbrs := range adjacency {
		for v := range nbrs {
			if u < v {
				ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}

	components := topo.ConnectedComponents(ug)
	if len(components) == 0 {
		return NewGraph()
	}

	best := components[0]
	bestMin := minNodeID(best)
	for _, comp := range components[1:] {
		switch m := minNodeID(comp); {
		case len(comp) > len(best):
			best, bestMin = comp, m
		case len(comp) == len(best) && m < bestMin:
			best, bestMin = comp, m
		}
	}

	keep := make(map[int]struct{}, len(best))
	for _, n := range best {
		keep[int(n.ID())] = struct{}{}
	}

	out := NewGraph()
	for v := range keep {
		_ = out.AddVertex(v)
	}
	for u, nbrs := range adjacency {
		if _, ok := keep[u]; !ok {
			continue
		}
		for v := range nbrs {
			if u < v {
				if _, ok := keep[v]; ok {
					_ = out.AddEdge(u, v)
				}
			}
		}
	}

	return out
}

func minNodeID(nodes []gonumgraph.Node) int {
	m := nodes[0].ID()
	for _, n := range nodes[1:] {
		if n.ID() < m {
			m = n.ID()
		}
	}

	return int(m)
}
