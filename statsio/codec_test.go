package statsio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninsei-dev/graiph/statsio"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := &statsio.TargetStats{
		Samples:      100,
		ENodes:       20.5,
		StdNodes:     1.2,
		EEdges:       40.1,
		StdEdges:     3.4,
		EDegrees:     []float64{0, 1, 2, 3},
		StdDegrees:   []float64{0, 0.1, 0.2, 0.3},
		EGraphlets:   []float64{5, 1},
		StdGraphlets: []float64{0.5, 0.1},
	}

	var buf bytes.Buffer
	require.NoError(t, statsio.Encode(&buf, want))

	got, err := statsio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeEmptyReaderErrors(t *testing.T) {
	_, err := statsio.Decode(bytes.NewReader(nil))
	assert.Error(t, err)
}
