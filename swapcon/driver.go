// File: driver.go
// Role: C8 — the SwapCon main loop (spec §4.7): configuration-model
// seed, then simulated annealing over double-edge-swap moves scored by
// graphlet-vector energy.
package swapcon

import (
	"context"
	"math"

	"github.com/ninsei-dev/graiph/graiperr"
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/grng"
	"github.com/ninsei-dev/graiph/statsio"
)

// Run executes the SwapCon driver to completion (energy threshold or
// cfg.MaxReject consecutive rejections, whichever comes first) and
// returns the largest connected component of the final graph.
//
// If ctx is cancelled mid-run, Run returns the current candidate's
// largest component alongside ctx.Err(), matching graip.Run's contract.
func Run(ctx context.Context, stats *statsio.TargetStats, cfg Config) (*graph.Graph, error) {
	if stats == nil {
		return nil, graiperr.New(graiperr.KindBadInputs, "SwapCon requires target stats")
	}

	n := classCount(cfg.MaxGraphletSize)
	if n == 0 {
		return nil, graiperr.New(graiperr.KindBadArity, "max_gl_size=%d not in {3,4,5}", cfg.MaxGraphletSize)
	}
	if len(stats.EGraphlets) != n {
		return nil, graiperr.New(graiperr.KindBadInputs, "target graphlet vector length %d does not match arity %d", len(stats.EGraphlets), cfg.MaxGraphletSize)
	}

	cfg = cfg.withDefaults(stats.EEdges)
	rng := grng.FromSeed(cfg.Seed)

	p := trimmedDegreeDistribution(stats.EDegrees)
	if len(p) == 0 {
		return nil, graiperr.New(graiperr.KindBadInputs, "target degree histogram carries no mass")
	}

	numVertices := int(math.Round(stats.ENodes))
	h, err := buildConfigurationGraph(numVertices, p, grng.Derive(rng, 0))
	if err != nil {
		return nil, err
	}

	gl, err := countGraphlets(h, cfg.MaxGraphletSize)
	if err != nil {
		return nil, err
	}
	e := energy(gl, stats.EGraphlets)

	swapRNG := grng.Derive(rng, 1)
	acceptRNG := grng.Derive(rng, 2)

	temperature := cfg.Temperature
	reject := 0
	for {
		select {
		case <-ctx.Done():
			return h.LargestComponent(), ctx.Err()
		default:
		}

		candidate, ok := proposeSwap(h, swapRNG)
		if !ok {
			reject++
			if reject >= cfg.MaxReject {
				break
			}
			continue
		}

		glCandidate, err := countGraphlets(candidate, cfg.MaxGraphletSize)
		if err != nil {
			return h.LargestComponent(), err
		}
		eCandidate := energy(glCandidate, stats.EGraphlets)

		accept := eCandidate < e
		if !accept && eCandidate != e {
			accept = acceptRNG.Float64() < math.Exp((e-eCandidate)/temperature)
		}

		if accept {
			h, gl, e = candidate, glCandidate, eCandidate
			reject = 0
		} else {
			reject++
		}

		temperature *= cfg.Cooling

		if reject >= cfg.MaxReject || e <= cfg.Threshold {
			break
		}
	}

	return h.LargestComponent(), nil
}

// trimmedDegreeDistribution normalizes a degree histogram into a
// probability distribution over degree values, dropping trailing
// zero-mass degrees (matches the original's np.trim_zeros(..., 'b')).
func trimmedDegreeDistribution(hist []float64) []float64 {
	last := -1
	for i, m := range hist {
		if m > 0 {
			last = i
		}
	}
	if last < 0 {
		return nil
	}

	trimmed := append([]float64(nil), hist[:last+1]...)
	total := 0.0
	for _, m := range trimmed {
		total += m
	}
	if total <= 0 {
		return nil
	}
	for i := range trimmed {
		trimmed[i] /= total
	}

	return trimmed
}
