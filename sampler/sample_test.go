package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/sampler"
)

func triangleTarget(prob float64) *graph.Target {
	t := graph.NewTarget()
	_ = t.SetEdge(0, 1, prob)
	_ = t.SetEdge(1, 2, prob)
	_ = t.SetEdge(0, 2, prob)

	return t
}

func TestSampleDeterministicTargetHasZeroStd(t *testing.T) {
	target := triangleTarget(1.0)

	stats, err := sampler.Sample(target, sampler.Config{
		Samples:         20,
		MaxGraphletSize: 3,
		Seed:            7,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, stats.Samples)
	assert.InDelta(t, 3, stats.ENodes, 1e-9)
	assert.InDelta(t, 0, stats.StdNodes, 1e-9)
	assert.InDelta(t, 3, stats.EEdges, 1e-9)
	assert.InDelta(t, 0, stats.StdEdges, 1e-9)
	assert.InDelta(t, 1, stats.EGraphlets[1], 1e-9) // triangle count
	assert.InDelta(t, 0, stats.StdGraphlets[1], 1e-9)
}

func TestSampleReportsProgress(t *testing.T) {
	target := triangleTarget(0.5)

	var ticks []int
	_, err := sampler.Sample(target, sampler.Config{
		Samples:         10,
		MaxGraphletSize: 3,
		Seed:            1,
		Workers:         1,
		OnProgress:      func(pct int) { ticks = append(ticks, pct) },
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ticks)
	assert.Equal(t, 100, ticks[len(ticks)-1])
}

func TestSampleRejectsBadArity(t *testing.T) {
	target := triangleTarget(1.0)

	_, err := sampler.Sample(target, sampler.Config{Samples: 5, MaxGraphletSize: 6})
	assert.Error(t, err)
}
