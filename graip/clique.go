// File: clique.go
// Role: Bron-Kerbosch maximum clique search restricted to a single pivot
// vertex, used by the GRAIP node-add move (spec §4.6). No pack library
// covers vertex-restricted max clique; this is hand-rolled over the
// induced subgraph on v's closed neighbourhood, which necessarily
// contains any clique through v.
package graip

import "github.com/ninsei-dev/graiph/graph"

// maxCliqueContaining returns the largest clique of g that contains v
// (always at least {v}).
func maxCliqueContaining(g *graph.Graph, v int) []int {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return []int{v}
	}

	adj := make(map[int]map[int]struct{}, len(nbrs)+1)
	all := append([]int{v}, nbrs...)
	for _, a := range all {
		aNbrs, _ := g.Neighbors(a)
		set := make(map[int]struct{}, len(aNbrs))
		for _, b := range aNbrs {
			set[b] = struct{}{}
		}
		adj[a] = set
	}

	best := []int{v}
	bronKerbosch([]int{v}, nbrs, nil, adj, &best)

	return best
}

func bronKerbosch(r, p, x []int, adj map[int]map[int]struct{}, best *[]int) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > len(*best) {
			*best = append([]int(nil), r...)
		}

		return
	}

	pivot := choosePivot(p, x, adj)
	candidates := setMinus(p, adj[pivot])

	remainingP := append([]int(nil), p...)
	for _, v := range candidates {
		nv := adj[v]
		newP := intersectSlice(remainingP, neighborSlice(nv))
		newX := intersectSlice(x, neighborSlice(nv))

		bronKerbosch(append(append([]int(nil), r...), v), newP, newX, adj, best)

		remainingP = removeValue(remainingP, v)
		x = append(x, v)
	}
}

func choosePivot(p, x []int, adj map[int]map[int]struct{}) int {
	best, bestDeg := -1, -1
	for _, cand := range append(append([]int(nil), p...), x...) {
		if d := len(adj[cand]); d > bestDeg {
			best, bestDeg = cand, d
		}
	}

	return best
}

func neighborSlice(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}

	return out
}

func setMinus(p []int, exclude map[int]struct{}) []int {
	out := make([]int, 0, len(p))
	for _, v := range p {
		if _, ok := exclude[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}

func intersectSlice(a []int, b []int) []int {
	set := make(map[int]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	out := make([]int, 0)
	for _, v := range a {
		if _, ok := set[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

func removeValue(xs []int, v int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
