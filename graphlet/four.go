// File: four.go
// Role: induced 3- and 4-node graphlet counts via the ESCAPE algorithm's
// "cut is a vertex / cut is an edge" accumulation over a degeneracy DAG.
package graphlet

import (
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/orient"
)

func allWedges(adj map[int][]int) PairDict {
	w := make(PairDict)
	for _, nbrs := range adj {
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				w.Inc(nbrs[i], nbrs[j], 1)
			}
		}
	}

	return w
}

func intersectCount(a, b []int) int {
	set := make(map[int]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	n := 0
	for _, y := range b {
		if _, ok := set[y]; ok {
			n++
		}
	}

	return n
}

func intersect(a, b []int) []int {
	set := make(map[int]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	out := make([]int, 0)
	for _, y := range b {
		if _, ok := set[y]; ok {
			out = append(out, y)
		}
	}

	return out
}

// FourCounts returns the induced counts of the 2 three-node and 6
// four-node graphlet classes of g, using dag (as produced by
// orient.Orient(g)) to avoid double-counting.
// Complexity: O(V + E*maxDeg) expected, bounded by the graph's degeneracy.
func FourCounts(g *graph.Graph, dag *orient.DAG) Vector4 {
	adj := g.AdjacencyList()
	wedges := allWedges(adj)

	var W int64
	for _, c := range wedges {
		W += c
	}

	var star, path, tailedTri, diamond, cycle, clique, T int64

	for n1, nbrs := range adj {
		deg1 := int64(len(nbrs))
		star += deg1 * (deg1 - 1) * (deg1 - 2) / 6

		for _, n2 := range dag.Out[n1] {
			deg2 := int64(len(adj[n2]))
			w12 := wedges.Get(n1, n2)

			T += w12
			path += (deg1 - 1) * (deg2 - 1)
			tailedTri += w12 * (deg1 + deg2 - 4)
			diamond += w12 * (w12 - 1) / 2

			for _, n3 := range intersect(dag.Out[n1], dag.Out[n2]) {
				clique += int64(intersectCount(intersect(dag.In[n1], dag.In[n2]), dag.In[n3]))
			}
		}
	}

	for _, w := range wedges {
		cycle += w * (w - 1) / 2
	}

	T /= 3
	path -= 3 * T
	tailedTri /= 2
	cycle /= 2

	return Vector4{
		W - 3*T, T,
		star - tailedTri + 2*diamond - 4*clique,
		path - 2*tailedTri - 4*cycle + 6*diamond - 12*clique,
		tailedTri - 4*diamond + 12*clique,
		cycle - diamond + 3*clique,
		diamond - 6*clique,
		clique,
	}
}
