package orient_test

import (
	"testing"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/orient"
	"github.com/stretchr/testify/require"
)

func TestOrientNilGraph(t *testing.T) {
	_, err := orient.Orient(nil)
	require.ErrorIs(t, err, orient.ErrNilGraph)
}

func TestOrientTriangleEveryEdgeOrientedOnce(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(1, 3))

	dag, err := orient.Orient(g)
	require.NoError(t, err)
	require.Len(t, dag.Order, 3)

	total := 0
	for _, outs := range dag.Out {
		total += len(outs)
	}
	require.Equal(t, 3, total, "every undirected edge must be oriented exactly once")

	for u, outs := range dag.Out {
		for _, v := range outs {
			require.Less(t, dag.Rank[u], dag.Rank[v], "edges must point from lower to higher rank")
		}
	}
}

func TestOrientStarDegeneracyOne(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))

	dag, err := orient.Orient(g)
	require.NoError(t, err)
	require.Equal(t, 1, dag.Degeneracy)

	for v, outs := range dag.Out {
		if v != 0 {
			require.LessOrEqual(t, len(outs), 1, "leaf out-degree must be bounded by degeneracy")
		}
	}
}
