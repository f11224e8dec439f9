// File: config.go
// Role: GRAIP driver configuration, one exported Config struct per spec
// §4.6/§9 "Configuration passing", zero-value-means-default fields in
// the gridgraph.GridOptions style.
package graip

import "math"

// Config tunes the GRAIP driver (spec §4.6). Optional fields (MaxRej,
// MaxSteps) resolve to the spec's defaults, derived from the target's
// expected edge count, when left at zero.
type Config struct {
	// MaxGraphletSize selects the graphlet arity (3, 4 or 5) tracked
	// throughout the run; must match the arity stats/bins were built
	// with. Required.
	MaxGraphletSize int
	// W is the score weight between the degree and graphlet terms,
	// w*score_deg + (1-w)*score_gl. Zero resolves to 2/3.
	W float64
	// NodeStep is the iteration period of node moves; every NodeStep-th
	// iteration proposes a node add/remove, all others an edge
	// add/remove. Zero resolves to 5.
	NodeStep int
	// MaxRej bounds consecutive rejections before an unconditional
	// accept. Zero resolves to round(0.02*E_e).
	MaxRej int
	// MaxSteps bounds the main loop. Zero resolves to round(100*E_e).
	MaxSteps int
	// Seed seeds the deterministic RNG tree; 0 uses grng.DefaultSeed.
	Seed int64
}

func (c Config) withDefaults(eEdges float64) Config {
	out := c
	if out.W == 0 {
		out.W = 2.0 / 3.0
	}
	if out.NodeStep == 0 {
		out.NodeStep = 5
	}
	if out.MaxRej == 0 {
		out.MaxRej = int(math.Round(0.02 * eEdges))
		if out.MaxRej < 1 {
			out.MaxRej = 1
		}
	}
	if out.MaxSteps == 0 {
		out.MaxSteps = int(math.Round(100 * eEdges))
		if out.MaxSteps < 1 {
			out.MaxSteps = 1
		}
	}

	return out
}
