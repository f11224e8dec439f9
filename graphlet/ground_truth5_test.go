package graphlet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ninsei-dev/graiph/graphlet"
	"github.com/ninsei-dev/graiph/orient"
)

// TestFiveCountsMatchesBruteForce checks the ESCAPE-derived FiveCounts
// against a brute-force C(n,5) enumeration over a wheel graph fixture
// (hub plus a 7-cycle rim), built deterministically rather than a
// hand-transcribed edge list.
func TestFiveCountsMatchesBruteForce(t *testing.T) {
	g := buildWheelFixture(t, 7)

	dag, err := orient.Orient(g)
	require.NoError(t, err)

	got := graphlet.FiveCounts(g, dag)
	want := bruteForceCounts(g, 5, func(code int) string { return graphlet.CodeToClass5[code] })

	for i, name := range graphlet.ClassNames5 {
		require.Equal(t, want[name], got[i], "class %s", name)
	}
}
