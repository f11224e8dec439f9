// File: driver.go
// Role: C7 — the GRAIP main loop (spec §4.6): alternating node/edge
// moves scored by the composite objective, with a rejection counter, a
// periodic connectivity sweep, and convergence/step-budget termination.
package graip

import (
	"context"
	"math"

	"github.com/ninsei-dev/graiph/binning"
	"github.com/ninsei-dev/graiph/graiperr"
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/grng"
	"github.com/ninsei-dev/graiph/statsio"
)

// Run executes the GRAIP driver to completion (tolerance convergence or
// cfg.MaxSteps, whichever comes first) and returns the largest connected
// component of the final candidate graph.
//
// If ctx is cancelled mid-run, Run returns the current candidate's
// largest component alongside ctx.Err() (spec §5's advisory cancellation
// flag realized as a context.Context, matching the algorithms package's
// ctx.Done() idiom); the returned graph is valid and usable.
//
// If the step budget is exhausted before tolerance convergence, Run
// returns the final candidate's largest component and a
// *graiperr.Error of Kind KindMaxStepsReached (Informational() is
// true: the result is not an error condition the caller must abort on).
func Run(ctx context.Context, stats *statsio.TargetStats, bins *binning.Bins, cfg Config) (*graph.Graph, error) {
	if stats == nil || bins == nil {
		return nil, graiperr.New(graiperr.KindBadInputs, "GRAIP requires both target stats and binned degrees")
	}

	classNames, codeToClass, ok := classTables(cfg.MaxGraphletSize)
	if !ok {
		return nil, graiperr.New(graiperr.KindBadArity, "max_gl_size=%d not in {3,4,5}", cfg.MaxGraphletSize)
	}
	if len(stats.EGraphlets) != len(classNames) || len(stats.StdGraphlets) != len(classNames) {
		return nil, graiperr.New(graiperr.KindBadInputs, "target graphlet vector length %d does not match arity %d", len(stats.EGraphlets), cfg.MaxGraphletSize)
	}

	cfg = cfg.withDefaults(stats.EEdges)
	rng := grng.FromSeed(cfg.Seed)

	in := scoreInputs{w: cfg.W, bins: bins, eGL: stats.EGraphlets, stdGL: stats.StdGraphlets}
	cg := globalClusteringCoefficient(stats.EGraphlets[0], stats.EGraphlets[1])

	seed := bestSeedCandidate(stats.ENodes, stats.EEdges, cfg.MaxGraphletSize, in, grng.Derive(rng, 0))
	state, err := newState(seed, cfg.MaxGraphletSize, bins)
	if err != nil {
		return nil, err
	}
	state.Score = score(cfg.W, bins, state.Hist, state.GL, stats.EGraphlets, stats.StdGraphlets)

	moveRNG := grng.Derive(rng, 1)
	sweepPeriod := int(math.Round(stats.EEdges))
	if sweepPeriod < 1 {
		sweepPeriod = 1
	}

	for state.Step = 1; state.Step <= cfg.MaxSteps; state.Step++ {
		select {
		case <-ctx.Done():
			return state.H.LargestComponent(), ctx.Err()
		default:
		}

		state.NodeStepCounter++
		var candidate *graph.Graph
		var proposedHist []float64
		var proposedGL []int64
		var err error
		if state.NodeStepCounter%cfg.NodeStep == 0 {
			candidate, proposedHist, proposedGL, err = nodeStep(state, stats, cg, classNames, codeToClass, moveRNG)
		} else {
			candidate, proposedHist, proposedGL, err = edgeStep(state, stats, classNames, codeToClass, moveRNG)
		}
		if err != nil {
			continue
		}

		proposedScore := score(cfg.W, bins, proposedHist, proposedGL, stats.EGraphlets, stats.StdGraphlets)
		if proposedScore < state.Score || state.Rejections >= cfg.MaxRej {
			state.H, state.Hist, state.GL, state.Score = candidate, proposedHist, proposedGL, proposedScore
			state.Rejections = 0
		} else {
			state.Rejections++
		}

		if state.Step%sweepPeriod == 0 {
			sweepConnectivity(state, cfg.MaxGraphletSize, bins)
		}

		if converged(bins, state.Hist, stats.EGraphlets, stats.StdGraphlets, state.GL) {
			return state.H.LargestComponent(), nil
		}
	}

	return state.H.LargestComponent(), graiperr.New(graiperr.KindMaxStepsReached, "GRAIP reached max_steps=%d without tolerance convergence", cfg.MaxSteps)
}

// converged reports the spec §4.6 termination predicate: every binned
// degree probability within tolerance AND every graphlet class within
// +-2*std of its mean.
func converged(bins *binning.Bins, hist []float64, eGL, stdGL []float64, gl []int64) bool {
	if !bins.WithinTolerance(hist) {
		return false
	}
	for i, c := range gl {
		if math.Abs(float64(c)-eGL[i]) > 2*stdGL[i] {
			return false
		}
	}

	return true
}
