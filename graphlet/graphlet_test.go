package graphlet_test

import (
	"testing"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/graphlet"
	"github.com/ninsei-dev/graiph/orient"
	"github.com/stretchr/testify/require"
)

func path3() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	return g
}

func triangle() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 2)

	return g
}

func clique(n int) *graph.Graph {
	g := graph.NewGraph()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(i, j)
		}
	}

	return g
}

func TestThreeCountsWedgeAndTriangle(t *testing.T) {
	v := graphlet.ThreeCounts(path3())
	require.Equal(t, graphlet.Vector3{1, 0}, v)

	v = graphlet.ThreeCounts(triangle())
	require.Equal(t, graphlet.Vector3{0, 1}, v)
}

func TestFourCountsOnK4(t *testing.T) {
	g := clique(4)
	dag, err := orient.Orient(g)
	require.NoError(t, err)

	v := graphlet.FourCounts(g, dag)
	require.Equal(t, int64(1), v.Index("4clique"))
	require.Equal(t, int64(0), v.Index("4path"))
	require.Equal(t, int64(0), v.Index("diamond"))
	require.Equal(t, int64(4), v.Index("triangle"))
}

func TestFourCountsOnPath4(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	dag, err := orient.Orient(g)
	require.NoError(t, err)

	v := graphlet.FourCounts(g, dag)
	require.Equal(t, int64(1), v.Index("4path"))
	require.Equal(t, int64(0), v.Index("4clique"))
	require.Equal(t, int64(0), v.Index("triangle"))
}

func TestFiveCountsOnK5(t *testing.T) {
	g := clique(5)
	dag, err := orient.Orient(g)
	require.NoError(t, err)

	v := graphlet.FiveCounts(g, dag)
	require.Equal(t, int64(1), v.Index("5clique"))
	require.Equal(t, int64(10), v.Index("triangle"))
	require.Equal(t, int64(5), v.Index("4clique"))
	require.Equal(t, int64(0), v.Index("5star"))
	require.Equal(t, int64(0), v.Index("5path"))
}

func TestFiveCountsOnFiveCycle(t *testing.T) {
	g := graph.NewGraph()
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(i, (i+1)%5)
	}
	dag, err := orient.Orient(g)
	require.NoError(t, err)

	v := graphlet.FiveCounts(g, dag)
	require.Equal(t, int64(1), v.Index("5cycle"))
	require.Equal(t, int64(0), v.Index("5clique"))
	require.Equal(t, int64(0), v.Index("triangle"))
}
