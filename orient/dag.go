// File: dag.go
// Role: degeneracy ordering and DAG orientation.
package orient

import (
	"sort"

	"github.com/ninsei-dev/graiph/graph"
)

// DAG is a directed acyclic orientation of an undirected graph, where
// every edge points from a lower-rank to a higher-rank vertex in the
// degeneracy ordering. Out[v] is sorted ascending.
type DAG struct {
	Order      []int         // vertices in degeneracy-removal order (rank i removed i-th)
	Rank       map[int]int   // vertex -> removal rank
	Out        map[int][]int // vertex -> sorted out-neighbours (higher rank): successors
	In         map[int][]int // vertex -> sorted in-neighbours (lower rank): predecessors
	Degeneracy int           // max degree at time of removal, over all vertices
}

// Orient computes the degeneracy ordering of g via repeated minimum-degree
// vertex removal (bucket-queue selection) and returns the resulting DAG.
// Ties among minimum-degree vertices are broken by ascending vertex ID, so
// the result is deterministic for a fixed g.
// Complexity: O(V + E).
func Orient(g *graph.Graph) (*DAG, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	adj := g.AdjacencyList()
	remaining := make(map[int]map[int]struct{}, len(adj))
	degree := make(map[int]int, len(adj))
	for v, nbrs := range adj {
		set := make(map[int]struct{}, len(nbrs))
		for _, n := range nbrs {
			set[n] = struct{}{}
		}
		remaining[v] = set
		degree[v] = len(set)
	}

	buckets := newBucketQueue(degree)

	order := make([]int, 0, len(adj))
	rank := make(map[int]int, len(adj))
	degeneracy := 0

	for len(order) < len(adj) {
		v, d := buckets.popMin()
		if d > degeneracy {
			degeneracy = d
		}
		rank[v] = len(order)
		order = append(order, v)

		for n := range remaining[v] {
			delete(remaining[n], v)
			buckets.decrement(n, degree)
		}
		delete(remaining, v)
	}

	out := make(map[int][]int, len(adj))
	in := make(map[int][]int, len(adj))
	for v := range adj {
		out[v] = nil
		in[v] = nil
	}
	for _, pair := range g.Edges() {
		u, v := pair[0], pair[1]
		lo, hi := u, v
		if rank[v] < rank[u] {
			lo, hi = v, u
		}
		out[lo] = append(out[lo], hi)
		in[hi] = append(in[hi], lo)
	}
	for v := range out {
		sort.Ints(out[v])
		sort.Ints(in[v])
	}

	return &DAG{Order: order, Rank: rank, Out: out, In: in, Degeneracy: degeneracy}, nil
}
