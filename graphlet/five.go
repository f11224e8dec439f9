// File: five.go
// Role: induced 3-, 4- and 5-node graphlet counts via the ESCAPE
// algorithm. Non-induced pattern counts are accumulated by the same
// "cut is a vertex / edge / wedge / diamond / clique" case analysis as
// FourCounts, then converted to induced counts by transform21.
package graphlet

import (
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/orient"
)

func directedWedges(dag *orient.DAG) (outout, inin, inout PairDict) {
	outout, inin, inout = make(PairDict), make(PairDict), make(PairDict)
	for node := range dag.Out {
		succ, pred := dag.Out[node], dag.In[node]
		for i := 0; i < len(succ); i++ {
			for j := i + 1; j < len(succ); j++ {
				outout.Inc(succ[i], succ[j], 1)
			}
		}
		for i := 0; i < len(pred); i++ {
			for j := i + 1; j < len(pred); j++ {
				inin.Inc(pred[i], pred[j], 1)
			}
		}
		for _, p := range pred {
			for _, s := range succ {
				inout.Inc(p, s, 1)
			}
		}
	}

	return outout, inin, inout
}

func triangleInfo(g *graph.Graph, dag *orient.DAG) map[int]int64 {
	tri := make(map[int]int64, len(dag.Out))
	for n1, succ := range dag.Out {
		for i := 0; i < len(succ); i++ {
			for j := i + 1; j < len(succ); j++ {
				n2, n3 := succ[i], succ[j]
				if g.HasEdge(n2, n3) {
					tri[n1]++
					tri[n2]++
					tri[n3]++
				}
			}
		}
	}

	return tri
}

func wedgeSum(outout, inin, inout PairDict, u, v int) int64 {
	return outout.Get(u, v) + inin.Get(u, v) + inout.Get(u, v)
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}

// FiveCounts returns the induced counts of the 2 three-node, 6 four-node
// and 21 five-node graphlet classes of g.
// Complexity: bounded by the graph's degeneracy, as for FourCounts; the
// five-node stage additionally costs O(E*degeneracy^2) for clique/cycle
// enumeration.
func FiveCounts(g *graph.Graph, dag *orient.DAG) Vector5 {
	adj := g.AdjacencyList()
	outout, inin, inout := directedWedges(dag)
	triVertex := triangleInfo(g, dag)

	var W, T, S4, P4, TT, C4, D, K4 int64
	var star, prong, path, forkTailedTri, longTailedTri, doubleTailedTri int64
	var tailedCycle, hourglass, cycle, cobra, stingray, hattedCycle int64
	var threeWedge, threeTri, tailedClique, triangleStrip, diamondWedge int64
	var wheel, hattedClique, bipyramid, fiveClique int64

	for n := range triVertex {
		T += triVertex[n]
	}
	T /= 3

	// Cut is a vertex / cut is an edge.
	for n1, nbrs := range adj {
		deg1 := int64(len(nbrs))
		triV := triVertex[n1]

		S4 += deg1 * (deg1 - 1) * (deg1 - 2) / 6
		TT += triV * (deg1 - 2)
		star += deg1 * (deg1 - 1) * (deg1 - 2) * (deg1 - 3) / 24
		forkTailedTri += triV * (deg1 - 2) * (deg1 - 3) / 2
		hourglass += triV * (triV - 1) / 2

		for _, n2 := range dag.In[n1] {
			deg2 := int64(len(adj[n2]))
			w12 := wedgeSum(outout, inin, inout, n1, n2)

			P4 += (deg1 - 1) * (deg2 - 1)
			prong += (deg2-1)*(deg1-1)*(deg1-2)/2 + (deg1-1)*(deg2-1)*(deg2-2)/2
			doubleTailedTri += w12 * (deg1 - 2) * (deg2 - 2)
			stingray += w12 * (w12 - 1) / 2 * (deg1 - 3 + deg2 - 3)
			threeTri += w12 * (w12 - 1) * (w12 - 2) / 6

			var fourCycles int64
			for _, n3 := range adj[n2] {
				if n1 == n3 {
					continue
				}
				fourCycles += wedgeSum(outout, inin, inout, n1, n3) - 1
			}

			C4 += fourCycles
			tailedCycle += fourCycles * (deg1 - 2 + deg2 - 2)
			hattedCycle += w12 * fourCycles
		}
	}

	// Cut is a wedge.
	seen := make(map[[2]int]struct{}, len(outout)+len(inin)+len(inout))
	for k := range outout {
		seen[k] = struct{}{}
	}
	for k := range inin {
		seen[k] = struct{}{}
	}
	for k := range inout {
		seen[k] = struct{}{}
	}
	for k := range seen {
		n1, n2 := k[0], k[1]
		count := wedgeSum(outout, inin, inout, n1, n2)
		deg1 := int64(len(adj[n1]))
		deg2 := int64(len(adj[n2]))
		tri1 := triVertex[n1]
		tri2 := triVertex[n2]

		W += count
		path += count * (deg1 - 1) * (deg2 - 1)
		longTailedTri += count * (tri1 + tri2)
		threeWedge += count * (count - 1) * (count - 2) / 6
	}

	// Diamond-related counts.
	for n1, nbrs := range adj {
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				n2, n3 := nbrs[i], nbrs[j]
				dias := int64(intersectCount(intersect(adj[n1], adj[n2]), adj[n3]))
				if dias == 0 {
					continue
				}
				deg2 := int64(len(adj[n2]))
				deg3 := int64(len(adj[n3]))
				w12 := wedgeSum(outout, inin, inout, n1, n2)
				w13 := wedgeSum(outout, inin, inout, n1, n3)
				w23 := wedgeSum(outout, inin, inout, n2, n3)

				D += dias
				cobra += dias * (deg2 - 2 + deg3 - 2)
				triangleStrip += dias * (w12 - 1 + w13 - 1)
				diamondWedge += dias * (w23 - 2)
				wheel += dias * (dias - 1) / 2
			}
		}
	}

	// Clique-related counts.
	for n1, nbrs := range adj {
		deg1 := int64(len(nbrs))
		for _, n2 := range dag.Out[n1] {
			deg2 := int64(len(adj[n2]))
			w12 := wedgeSum(outout, inin, inout, n1, n2)

			for _, n3 := range intersect(dag.Out[n1], dag.Out[n2]) {
				cliques := int64(intersectCount(intersect(adj[n1], adj[n2]), adj[n3]))
				if cliques == 0 {
					continue
				}
				bipyramid += cliques * (cliques - 1) / 2

				predIntersect := intersect(intersect(dag.In[n1], dag.In[n2]), dag.In[n3])
				deg3 := int64(len(adj[n3]))
				w13 := wedgeSum(outout, inin, inout, n1, n3)
				w23 := wedgeSum(outout, inin, inout, n2, n3)

				for _, n4 := range predIntersect {
					deg4 := int64(len(adj[n4]))
					w14 := wedgeSum(outout, inin, inout, n1, n4)
					w24 := wedgeSum(outout, inin, inout, n2, n4)
					w34 := wedgeSum(outout, inin, inout, n3, n4)

					K4++
					tailedClique += deg1 + deg2 + deg3 + deg4 - 12
					hattedClique += w12 + w13 + w14 + w23 + w24 + w34 - 12
				}

				for i := 0; i < len(predIntersect); i++ {
					for j := i + 1; j < len(predIntersect); j++ {
						if g.HasEdge(predIntersect[i], predIntersect[j]) {
							fiveClique++
						}
					}
				}
			}
		}
	}

	// Five-cycle counts, rooted at an n1<-n3<-n4->n2 pattern plus a wedge.
	var dirTT int64
	for k, count := range inout {
		n1, n2 := k[0], k[1]
		switch {
		case containsInt(dag.Out[n1], n2):
			dirTT += count * (int64(len(dag.Out[n1])) - 2)
		case containsInt(dag.Out[n2], n1):
			dirTT += count * (int64(len(dag.Out[n2])) - 2)
		}

		for _, n3 := range dag.In[n2] {
			if n3 != n1 {
				cycle += count * outout.Get(n1, n3)
			}
		}
		for _, n3 := range dag.In[n1] {
			if n3 != n2 {
				cycle += count * outout.Get(n2, n3)
			}
		}
	}
	for k, count := range outout {
		n1, n2 := k[0], k[1]
		if containsInt(dag.Out[n2], n1) {
			dirTT += count * int64(len(dag.Out[n1]))
			dirTT += count * (int64(len(dag.Out[n2])) - 1)
		}
		if containsInt(dag.Out[n1], n2) {
			dirTT += count * int64(len(dag.Out[n2]))
			dirTT += count * (int64(len(dag.Out[n1])) - 1)
		}

		for _, n3 := range dag.In[n2] {
			if n3 != n1 {
				cycle += count * outout.Get(n1, n3)
			}
		}
		for _, n3 := range dag.In[n1] {
			if n3 != n2 {
				cycle += count * outout.Get(n2, n3)
			}
		}
	}

	// Corrections for multiple-counting across cases.
	P4 -= 3 * T
	C4 /= 4
	D /= 2
	prong -= 2 * TT
	path -= 4*C4 + 2*TT + 3*T
	longTailedTri -= 2*TT + 4*D + 6*T
	doubleTailedTri -= 2 * D
	tailedCycle = tailedCycle/2 - 2*D
	cycle -= dirTT
	hourglass -= 2 * D
	cobra = cobra/2 - 12*K4
	diamondWedge /= 2
	hattedCycle -= 4 * D
	triangleStrip = triangleStrip/2 - 12*K4
	wheel /= 2

	nonInduced := [21]int64{
		star, prong, path, forkTailedTri, longTailedTri, doubleTailedTri,
		tailedCycle, cycle, hourglass, cobra, stingray, hattedCycle,
		threeWedge, threeTri, tailedClique, triangleStrip, diamondWedge,
		wheel, hattedClique, bipyramid, fiveClique,
	}
	induced5 := transform21.apply(nonInduced)

	var out Vector5
	out[0] = W - 3*T
	out[1] = T
	out[2] = S4 - TT + 2*D - 4*K4
	out[3] = P4 - 2*TT - 4*C4 + 6*D - 12*K4
	out[4] = TT - 4*D + 12*K4
	out[5] = C4 - D + 3*K4
	out[6] = D - 6*K4
	out[7] = K4
	copy(out[8:], induced5[:])

	return out
}
