package graph_test

import (
	"testing"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/stretchr/testify/require"
)

func TestAddVertexAndEdge(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex(1))
	require.ErrorIs(t, g.AddVertex(1), graph.ErrVertexExists)

	require.NoError(t, g.AddEdge(1, 2))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 1))
	require.ErrorIs(t, g.AddEdge(1, 2), graph.ErrEdgeExists)
	require.ErrorIs(t, g.AddEdge(3, 3), graph.ErrSelfLoop)
}

func TestRemoveVertexCleansEdges(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.RemoveVertex(2))
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.HasVertex(2))
	require.ErrorIs(t, g.RemoveVertex(2), graph.ErrVertexNotFound)
}

func TestNeighborsSortedAndMissing(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 2))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, nbrs)

	_, err = g.Neighbors(99)
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
	require.Equal(t, -1, g.Degree(99))
}

func TestEdgesSortedPairs(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(2, 1))
	require.NoError(t, g.AddEdge(3, 1))

	require.Equal(t, [][2]int{{1, 2}, {1, 3}}, g.Edges())
}

func TestCloneIsIndependent(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, c.EdgeCount())
}

func TestLargestComponentKeepsOriginalIDs(t *testing.T) {
	g := graph.NewGraph()
	// Component A: 1-2-3 (triangle-ish path, 3 vertices).
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	// Component B: isolated vertex 10.
	require.NoError(t, g.AddVertex(10))

	lcc := g.LargestComponent()
	require.ElementsMatch(t, []int{1, 2, 3}, lcc.Vertices())
	require.Equal(t, 2, lcc.EdgeCount())
}

func TestLargestComponentEmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	lcc := g.LargestComponent()
	require.Equal(t, 0, lcc.VertexCount())
}
