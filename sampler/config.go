// File: config.go
// Role: sampler configuration, following the teacher's zero-value-means-
// default struct convention (gridgraph.GridOptions/DefaultGridOptions).
package sampler

import "runtime"

// Config configures a Sample run.
type Config struct {
	// Samples is the Monte-Carlo trial count N. Required, must be > 0.
	Samples int
	// MaxGraphletSize selects which graphlet vector is tracked: 3, 4 or
	// 5. Required.
	MaxGraphletSize int
	// Seed seeds the deterministic RNG tree; 0 uses grng.DefaultSeed.
	Seed int64
	// Workers bounds the worker-pool size; <=0 uses runtime.GOMAXPROCS(0).
	Workers int
	// OnProgress, if non-nil, is invoked at each 10% completion tick
	// with the percentage reached (10, 20, ..., 100), matching the
	// algorithms package's OnVisit/OnEnqueue hook idiom.
	OnProgress func(pct int)
}

// DefaultConfig returns a Config with Samples=1000, MaxGraphletSize=4,
// and a worker count of runtime.GOMAXPROCS(0).
func DefaultConfig() Config {
	return Config{
		Samples:         1000,
		MaxGraphletSize: 4,
		Workers:         runtime.GOMAXPROCS(0),
	}
}

func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}
