package delta_test

import (
	"testing"

	"github.com/ninsei-dev/graiph/delta"
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/graphlet"
	"github.com/ninsei-dev/graiph/orient"
	"github.com/stretchr/testify/require"
)

func baseGraph() *graph.Graph {
	g := graph.NewGraph()
	edges := [][2]int{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {3, 4}, {4, 0}}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}

func threeVec(g *graph.Graph) []int64 {
	v := graphlet.ThreeCounts(g)

	return v[:]
}

func fourVec(t *testing.T, g *graph.Graph) []int64 {
	dag, err := orient.Orient(g)
	require.NoError(t, err)
	v := graphlet.FourCounts(g, dag)

	return v[:]
}

func TestUpdateEdgeMatchesThreeCountsDelta(t *testing.T) {
	g := baseGraph()
	before := threeVec(g)

	u, v := 1, 3
	require.False(t, g.HasEdge(u, v))

	got, err := delta.UpdateEdge(g, u, v, graphlet.ClassNames3, graphlet.CodeToClass3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(u, v))
	after := threeVec(g)

	for i := range before {
		require.Equal(t, after[i]-before[i], got[i], "class %s", graphlet.ClassNames3[i])
	}
}

func TestUpdateEdgeMatchesFourCountsDelta(t *testing.T) {
	g := baseGraph()
	before := fourVec(t, g)

	u, v := 1, 3
	got, err := delta.UpdateEdge(g, u, v, graphlet.ClassNames4, graphlet.CodeToClass4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(u, v))
	after := fourVec(t, g)

	for i := range before {
		require.Equal(t, after[i]-before[i], got[i], "class %s", graphlet.ClassNames4[i])
	}
}

func TestUpdateNodeMatchesThreeCountsDelta(t *testing.T) {
	g := baseGraph()
	before := threeVec(g)

	newNode := 5
	require.NoError(t, g.AddVertex(newNode))
	require.NoError(t, g.AddEdge(newNode, 0))
	require.NoError(t, g.AddEdge(newNode, 2))

	got, err := delta.UpdateNode(g, newNode, graphlet.ClassNames3, graphlet.CodeToClass3)
	require.NoError(t, err)

	after := threeVec(g)

	for i := range before {
		require.Equal(t, after[i]-before[i], got[i], "class %s", graphlet.ClassNames3[i])
	}
}

func TestUpdateEdgeUnsupportedSize(t *testing.T) {
	g := baseGraph()
	_, err := delta.UpdateEdge(g, 1, 3, []string{"a", "b", "c"}, map[int]string{})
	require.ErrorIs(t, err, delta.ErrGraphletSizeUnsupported)
}
