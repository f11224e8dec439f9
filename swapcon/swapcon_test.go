package swapcon_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninsei-dev/graiph/graiperr"
	"github.com/ninsei-dev/graiph/statsio"
	"github.com/ninsei-dev/graiph/swapcon"
)

func TestRunRejectsMissingStats(t *testing.T) {
	_, err := swapcon.Run(context.Background(), nil, swapcon.Config{MaxGraphletSize: 3})
	require.Error(t, err)

	var ge *graiperr.Error
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, graiperr.KindBadInputs, ge.Kind)
}

func TestRunRejectsBadArity(t *testing.T) {
	stats := &statsio.TargetStats{Samples: 10, ENodes: 6, EDegrees: []float64{0, 6}, EGraphlets: []float64{1, 1}}

	_, err := swapcon.Run(context.Background(), stats, swapcon.Config{MaxGraphletSize: 7})
	require.Error(t, err)

	var ge *graiperr.Error
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, graiperr.KindBadArity, ge.Kind)
}

func TestRunRejectsMismatchedGraphletVector(t *testing.T) {
	stats := &statsio.TargetStats{Samples: 10, ENodes: 6, EDegrees: []float64{0, 6}, EGraphlets: []float64{1}}

	_, err := swapcon.Run(context.Background(), stats, swapcon.Config{MaxGraphletSize: 3})
	require.Error(t, err)

	var ge *graiperr.Error
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, graiperr.KindBadInputs, ge.Kind)
}

// TestRunTerminatesWithinRejectionBudget exercises the configuration
// model seed and the annealing loop end to end over a small, dense
// target: SwapCon must return a connected graph without panicking,
// whether it stops via the energy threshold or the rejection budget.
func TestRunTerminatesWithinRejectionBudget(t *testing.T) {
	// A degree-4 target: every node expects degree 4, six nodes, twelve
	// edges. The only such graph is the octahedron, whose 12 wedges and
	// 8 triangles equal the expected graphlet means.
	stats := &statsio.TargetStats{
		Samples:    50,
		ENodes:     6,
		StdNodes:   0,
		EEdges:     12,
		StdEdges:   1,
		EDegrees:   []float64{0, 0, 0, 0, 6},
		StdDegrees: []float64{0, 0, 0, 0, 1},
		EGraphlets: []float64{12, 8},
		StdGraphlets: []float64{
			1, 1,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := swapcon.Run(ctx, stats, swapcon.Config{
		MaxGraphletSize: 3,
		MaxReject:       20,
		Seed:            7,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, result.VertexCount(), result.LargestComponent().VertexCount())
}
