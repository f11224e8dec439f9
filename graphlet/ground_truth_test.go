package graphlet_test

import (
	"testing"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/graphlet"
	"github.com/ninsei-dev/graiph/orient"
	"github.com/stretchr/testify/require"
)

// bruteForceCounts enumerates every k-subset of g's vertices by brute
// force and classifies its induced bitmask code against classify,
// independent of the ESCAPE-derived Four/FiveCounts. It is the ground
// truth that FourCounts/FiveCounts are checked against below.
func bruteForceCounts(g *graph.Graph, k int, classify func(code int) string) map[string]int64 {
	verts := g.Vertices()
	counts := make(map[string]int64)

	var choose func(start int, chosen []int)
	choose = func(start int, chosen []int) {
		if len(chosen) == k {
			code := graphlet.GetCode(g.HasEdge, chosen)
			if name := classify(code); name != "" {
				counts[name]++
			}

			return
		}
		for i := start; i < len(verts); i++ {
			choose(i+1, append(chosen, verts[i]))
		}
	}
	choose(0, nil)

	return counts
}

func classify4(code int) string { return graphlet.CodeToClass4[code] }

func TestFourCountsMatchesBruteForce(t *testing.T) {
	g := graph.NewGraph()
	// A 6-vertex graph mixing a triangle, a pendant, and a separate edge.
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {4, 5}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	dag, err := orient.Orient(g)
	require.NoError(t, err)

	got := graphlet.FourCounts(g, dag)
	want := bruteForceCounts(g, 4, classify4)

	for i, name := range graphlet.ClassNames4 {
		require.Equal(t, want[name], got[i], "class %s", name)
	}
}

func TestThreeCountsMatchesBruteForce(t *testing.T) {
	g := graph.NewGraph()
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {3, 4}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	got := graphlet.ThreeCounts(g)
	want := bruteForceCounts(g, 3, func(code int) string { return graphlet.CodeToClass3[code] })

	require.Equal(t, want["wedge"], got[0])
	require.Equal(t, want["triangle"], got[1])
}
