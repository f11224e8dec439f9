// File: state.go
// Role: GRAIP's mutable run state (spec §3 "GRAIP state").
package graip

import (
	"github.com/ninsei-dev/graiph/binning"
	"github.com/ninsei-dev/graiph/graph"
)

// State is the current GRAIP working state: the candidate graph, its
// degree histogram and graphlet vector, its score, a rejection counter,
// the next synthetic node ID, and the step/node-step counters.
type State struct {
	H               *graph.Graph
	Hist            []float64
	GL              []int64
	Score           float64
	Rejections      int
	NextNodeID      int
	Step            int
	NodeStepCounter int

	arity   int
	histLen int
}

// newState builds the initial State for seed, computing its degree
// histogram and graphlet vector from scratch.
func newState(seed *graph.Graph, arity int, bins *binning.Bins) (*State, error) {
	gl, err := countGraphlets(seed, arity)
	if err != nil {
		return nil, err
	}

	histLen := degreeHistLength(bins, seed.MaxDegree()+1)
	nextID := 0
	for _, v := range seed.Vertices() {
		if v >= nextID {
			nextID = v + 1
		}
	}

	return &State{
		H:          seed,
		Hist:       degreeHistogram(seed, histLen),
		GL:         gl,
		NextNodeID: nextID,
		arity:      arity,
		histLen:    histLen,
	}, nil
}

// scoreInputs bundles the quantities score() needs beyond the candidate
// graph's own histogram/graphlet vector, so seed-candidate scoring and
// the main loop share one code path.
type scoreInputs struct {
	w     float64
	bins  *binning.Bins
	eGL   []float64
	stdGL []float64
}

func scoreGraph(g *graph.Graph, arity int, in scoreInputs) (float64, error) {
	counts, err := countGraphlets(g, arity)
	if err != nil {
		return 0, err
	}
	hist := degreeHistogram(g, degreeHistLength(in.bins, len(in.bins.PTarget)))

	return score(in.w, in.bins, hist, counts, in.eGL, in.stdGL), nil
}

// degreeHistLength returns a histogram length covering every bin in
// bins (the highest bin's Hi plus one).
func degreeHistLength(bins *binning.Bins, fallback int) int {
	if len(bins.Intervals) == 0 {
		return fallback
	}

	return bins.Intervals[len(bins.Intervals)-1].Hi + 1
}
