// File: three.go
// Role: induced 3-node graphlet counts (wedges, triangles).
package graphlet

import "github.com/ninsei-dev/graiph/graph"

// ThreeCounts returns the induced wedge/triangle counts of g.
// Complexity: O(sum deg(v)^2) over all vertices v.
func ThreeCounts(g *graph.Graph) Vector3 {
	adj := g.AdjacencyList()

	var wedge, triangle int64
	for _, nbrs := range adj {
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				n2, n3 := nbrs[i], nbrs[j]
				if g.HasEdge(n2, n3) {
					triangle++
				} else {
					wedge++
				}
			}
		}
	}

	return Vector3{wedge, triangle / 3}
}
