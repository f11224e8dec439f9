package graph_test

import (
	"testing"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/stretchr/testify/require"
)

func TestTargetSetEdgeValidation(t *testing.T) {
	tg := graph.NewTarget()
	require.ErrorIs(t, tg.SetEdge(1, 1, 0.5), graph.ErrSelfLoop)
	require.ErrorIs(t, tg.SetEdge(1, 2, 1.5), graph.ErrBadProbability)
	require.NoError(t, tg.SetEdge(1, 2, 0.25))

	p, ok := tg.EdgeProb(1, 2)
	require.True(t, ok)
	require.InDelta(t, 0.25, p, 1e-9)

	p, ok = tg.EdgeProb(2, 1)
	require.True(t, ok)
	require.InDelta(t, 0.25, p, 1e-9)
}

func TestTargetEdgesSorted(t *testing.T) {
	tg := graph.NewTarget()
	require.NoError(t, tg.SetEdge(2, 1, 0.1))
	require.NoError(t, tg.SetEdge(3, 1, 0.2))

	edges := tg.Edges()
	require.Equal(t, []graph.TargetEdge{
		{U: 1, V: 2, Prob: 0.1},
		{U: 1, V: 3, Prob: 0.2},
	}, edges)
}

func TestTargetEdgeCountOverwrite(t *testing.T) {
	tg := graph.NewTarget()
	require.NoError(t, tg.SetEdge(1, 2, 0.1))
	require.NoError(t, tg.SetEdge(1, 2, 0.9))
	require.Equal(t, 1, tg.EdgeCount())

	p, _ := tg.EdgeProb(1, 2)
	require.InDelta(t, 0.9, p, 1e-9)
}
