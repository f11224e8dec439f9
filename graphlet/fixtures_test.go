package graphlet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninsei-dev/graiph/graph"
)

// buildWheelFixture returns the wheel graph W_spokes: a hub vertex (0)
// connected to every rim vertex, plus a cycle over the spokes rim
// vertices (1..spokes). Used as a deterministic, named test fixture
// instead of a hand-transcribed edge list.
func buildWheelFixture(t *testing.T, spokes int) *graph.Graph {
	t.Helper()
	require.GreaterOrEqual(t, spokes, 3, "wheel graph requires a rim of at least 3 vertices")

	g := graph.NewGraph()
	require.NoError(t, g.AddVertex(0))
	for i := 1; i <= spokes; i++ {
		require.NoError(t, g.AddVertex(i))
		require.NoError(t, g.AddEdge(0, i))
	}
	for i := 1; i <= spokes; i++ {
		next := i + 1
		if next > spokes {
			next = 1
		}
		require.NoError(t, g.AddEdge(i, next))
	}

	return g
}
