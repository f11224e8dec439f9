package binning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninsei-dev/graiph/binning"
)

func TestBuildSumsToOne(t *testing.T) {
	mean := []float64{2, 5, 10, 0.2, 0.1, 0.05}
	std := []float64{1, 2, 3, 0.1, 0.1, 0.05}

	bins, err := binning.Build(mean, std, 20)
	require.NoError(t, err)

	sum := 0.0
	for _, p := range bins.PTarget {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestBuildMergesSmallTailBins(t *testing.T) {
	mean := []float64{10, 10, 0.01, 0.01, 0.01}
	std := []float64{1, 1, 0.01, 0.01, 0.01}

	bins, err := binning.Build(mean, std, 20)
	require.NoError(t, err)

	// the low-mass tail degrees (2,3,4) must have merged into one bin.
	assert.Less(t, len(bins.Intervals), 5)
	last := bins.Intervals[len(bins.Intervals)-1]
	assert.Equal(t, 4, last.Hi)
}

func TestBuildRejectsMismatchedLengths(t *testing.T) {
	_, err := binning.Build([]float64{1, 2}, []float64{1}, 10)
	assert.Error(t, err)
}

func TestWithinToleranceAcceptsExactMatch(t *testing.T) {
	mean := []float64{5, 5, 5, 5}
	std := []float64{1, 1, 1, 1}

	bins, err := binning.Build(mean, std, 20)
	require.NoError(t, err)

	assert.True(t, bins.WithinTolerance(mean))
}
