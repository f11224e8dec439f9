package graip_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninsei-dev/graiph/binning"
	"github.com/ninsei-dev/graiph/graiperr"
	"github.com/ninsei-dev/graiph/graip"
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/sampler"
	"github.com/ninsei-dev/graiph/statsio"
)

func cliqueTarget(n int, prob float64) *graph.Target {
	t := graph.NewTarget()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = t.SetEdge(i, j, prob)
		}
	}

	return t
}

func TestRunRejectsMismatchedInputs(t *testing.T) {
	bins := &binning.Bins{
		Intervals: []binning.Bin{{Lo: 0, Hi: 3}},
		PTarget:   []float64{1},
		PBounds:   []float64{0.5},
	}

	_, err := graip.Run(context.Background(), nil, bins, graip.Config{MaxGraphletSize: 3})
	require.Error(t, err)

	var ge *graiperr.Error
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, graiperr.KindBadInputs, ge.Kind)
}

func TestRunRejectsBadArity(t *testing.T) {
	bins := &binning.Bins{Intervals: []binning.Bin{{Lo: 0, Hi: 1}}, PTarget: []float64{1}, PBounds: []float64{1}}

	_, err := graip.Run(context.Background(), &statsio.TargetStats{}, bins, graip.Config{MaxGraphletSize: 7})
	require.Error(t, err)

	var ge *graiperr.Error
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, graiperr.KindBadArity, ge.Kind)
}

// TestRunTerminatesWithinStepBudget exercises the full GRAIP loop end to
// end over a small probabilistic target: it must return a connected
// graph without panicking, either via tolerance convergence or the
// informational MaxStepsReached condition (spec §8's "GRAIP terminates
// within max_steps; the returned graph is connected" invariant).
func TestRunTerminatesWithinStepBudget(t *testing.T) {
	target := cliqueTarget(6, 0.6)

	stats, err := sampler.Sample(target, sampler.Config{
		Samples:         50,
		MaxGraphletSize: 3,
		Seed:            11,
	})
	require.NoError(t, err)
	require.Greater(t, stats.ENodes, 0.0)

	bins, err := binning.Build(stats.EDegrees, stats.StdDegrees, stats.Samples)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := graip.Run(ctx, stats, bins, graip.Config{
		MaxGraphletSize: 3,
		MaxSteps:        50,
		Seed:            3,
	})
	require.NotNil(t, result)
	if err != nil {
		var ge *graiperr.Error
		require.True(t, errors.As(err, &ge))
		assert.Equal(t, graiperr.KindMaxStepsReached, ge.Kind)
		assert.True(t, ge.Informational())
	}
	assert.Equal(t, result.VertexCount(), result.LargestComponent().VertexCount())
}
