// File: sample.go
// Role: C5 — Monte-Carlo sampling of a probabilistic target (spec §4.4),
// parallelised across a worker pool per §5's explicit permission.
package sampler

import (
	"sync"
	"sync/atomic"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/graiperr"
	"github.com/ninsei-dev/graiph/graphlet"
	"github.com/ninsei-dev/graiph/grng"
	"github.com/ninsei-dev/graiph/orient"
	"github.com/ninsei-dev/graiph/statsio"
)

// glClassCount returns the graphlet-vector length for arity, or 0 if
// arity is not one of {3,4,5}.
func glClassCount(arity int) int {
	switch arity {
	case 3:
		return len(graphlet.ClassNames3)
	case 4:
		return len(graphlet.ClassNames4)
	case 5:
		return len(graphlet.ClassNames5)
	default:
		return 0
	}
}

func countGraphlets(g *graph.Graph, arity int) ([]int64, error) {
	switch arity {
	case 3:
		v := graphlet.ThreeCounts(g)
		return v[:], nil
	case 4:
		dag, err := orient.Orient(g)
		if err != nil {
			return nil, err
		}
		v := graphlet.FourCounts(g, dag)
		return v[:], nil
	case 5:
		dag, err := orient.Orient(g)
		if err != nil {
			return nil, err
		}
		v := graphlet.FiveCounts(g, dag)
		return v[:], nil
	default:
		return nil, graiperr.New(graiperr.KindBadArity, "max_gl_size=%d not in {3,4,5}", arity)
	}
}

func degreeHistogram(g *graph.Graph, length int) []float64 {
	hist := make([]float64, length)
	for _, v := range g.Vertices() {
		d := g.Degree(v)
		if d >= 0 && d < length {
			hist[d]++
		}
	}

	return hist
}

// Sample runs cfg.Samples independent Bernoulli realizations of target,
// restricts each to its largest connected component, and returns the
// population mean/std of node count, edge count, degree histogram and
// graphlet vector. Progress is reported via cfg.OnProgress at each 10%
// completion tick.
func Sample(target *graph.Target, cfg Config) (*statsio.TargetStats, error) {
	if cfg.Samples <= 0 {
		return nil, graiperr.New(graiperr.KindBadInputs, "samples must be > 0, got %d", cfg.Samples)
	}
	glLen := glClassCount(cfg.MaxGraphletSize)
	if glLen == 0 {
		return nil, graiperr.New(graiperr.KindBadArity, "max_gl_size=%d not in {3,4,5}", cfg.MaxGraphletSize)
	}

	degLen := maxPossibleDegree(target) + 1
	workers := cfg.workerCount()
	if workers > cfg.Samples {
		workers = cfg.Samples
	}

	base := grng.FromSeed(cfg.Seed)
	var completed int64
	var reportMu sync.Mutex
	lastDecile := 0

	report := func() {
		n := atomic.AddInt64(&completed, 1)
		pct := int(n * 100 / int64(cfg.Samples))
		if cfg.OnProgress == nil {
			return
		}
		decile := pct / 10
		reportMu.Lock()
		for lastDecile < decile {
			lastDecile++
			cfg.OnProgress(lastDecile * 10)
		}
		reportMu.Unlock()
	}

	results := make(chan *accumulator, workers)
	perWorker := cfg.Samples / workers
	remainder := cfg.Samples % workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		wg.Add(1)
		go func(workerID, trials int) {
			defer wg.Done()
			rng := grng.Derive(base, uint64(workerID))
			acc := newAccumulator(degLen, glLen)
			for i := 0; i < trials; i++ {
				realized := realize(target, rng)
				component := realized.LargestComponent()
				gl, err := countGraphlets(component, cfg.MaxGraphletSize)
				if err != nil {
					gl = make([]int64, glLen)
				}
				deg := degreeHistogram(component, degLen)
				acc.add(component.VertexCount(), component.EdgeCount(), deg, gl)
				report()
			}
			results <- acc
		}(w, trials)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	total := newAccumulator(degLen, glLen)
	for acc := range results {
		total.merge(acc)
	}

	eNodes, stdNodes := meanStd(total.nodesSum, total.nodesSumSq, total.n)
	eEdges, stdEdges := meanStd(total.edgesSum, total.edgesSumSq, total.n)
	eDeg, stdDeg := meanStdVec(total.degSum, total.degSumSq, total.n)
	eGL, stdGL := meanStdVec(total.glSum, total.glSumSq, total.n)

	return &statsio.TargetStats{
		Samples:      total.n,
		ENodes:       eNodes,
		StdNodes:     stdNodes,
		EEdges:       eEdges,
		StdEdges:     stdEdges,
		EDegrees:     eDeg,
		StdDegrees:   stdDeg,
		EGraphlets:   eGL,
		StdGraphlets: stdGL,
	}, nil
}
