// File: config.go
// Role: SwapCon driver configuration, one exported Config struct per
// spec §4.7, zero-value-means-default fields in the gridgraph.GridOptions
// style (same convention as graip.Config/sampler.Config).
package swapcon

import "math"

// Config tunes the SwapCon driver (spec §4.7). Optional fields
// (MaxReject) resolve to the spec's default, derived from the target's
// expected edge count, when left at zero.
type Config struct {
	// MaxGraphletSize selects the graphlet arity (3, 4 or 5) tracked
	// throughout the run; must match the arity stats was built with.
	// Required.
	MaxGraphletSize int
	// Temperature is the initial simulated-annealing temperature.
	// Zero resolves to 0.01.
	Temperature float64
	// Cooling is the per-step multiplicative cooling factor applied to
	// Temperature. Zero resolves to 0.99.
	Cooling float64
	// Threshold is the energy value at or below which the run
	// converges. Zero resolves to 0.05.
	Threshold float64
	// MaxReject bounds consecutive rejected swaps before the run stops.
	// Zero resolves to round(E_e).
	MaxReject int
	// Seed seeds the deterministic RNG tree; 0 uses grng.DefaultSeed.
	Seed int64
}

func (c Config) withDefaults(eEdges float64) Config {
	out := c
	if out.Temperature == 0 {
		out.Temperature = 0.01
	}
	if out.Cooling == 0 {
		out.Cooling = 0.99
	}
	if out.Threshold == 0 {
		out.Threshold = 0.05
	}
	if out.MaxReject == 0 {
		out.MaxReject = int(math.Round(eEdges))
		if out.MaxReject < 1 {
			out.MaxReject = 1
		}
	}

	return out
}
