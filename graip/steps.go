// File: steps.go
// Role: the node-step and edge-step proposal functions the GRAIP main
// loop alternates between (spec §4.6), each building a candidate graph
// and its would-be histogram/graphlet vector without mutating state
// unless the caller (Run) accepts the proposal.
package graip

import (
	"math/rand"

	"github.com/ninsei-dev/graiph/binning"
	"github.com/ninsei-dev/graiph/delta"
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/statsio"
)

// nodeStep proposes adding or removing a node, per spec §4.6's
// logistic-weighted direction choice, and returns the resulting
// candidate graph's histogram and graphlet vector. state.H is not
// mutated; state.NextNodeID advances unconditionally (even on a later
// rejection), matching the Open Question resolution in SPEC_FULL.md §9.
func nodeStep(state *State, stats *statsio.TargetStats, cg float64, classNames []string, codeToClass map[int]string, rng *rand.Rand) (*graph.Graph, []float64, []int64, error) {
	d := 0.0
	if stats.StdNodes > 0 {
		d = (float64(state.H.VertexCount()) - stats.ENodes) / stats.StdNodes
	}
	addProb := 1 - sigmoid(d)

	candidate := state.H.Clone()

	if rng.Float64() < addProb {
		v := weightedVertexByDegree(state.H, rng)
		if v < 0 {
			return nil, nil, nil, errNoCandidateVertex
		}
		newID := state.NextNodeID
		state.NextNodeID++

		addNode(candidate, v, newID, cg, rng)

		nodeDelta, err := delta.UpdateNode(candidate, newID, classNames, codeToClass)
		if err != nil {
			return nil, nil, nil, err
		}
		gl := addVectors(state.GL, nodeDelta)
		hist := degreeHistogram(candidate, state.histLen)

		return candidate, hist, gl, nil
	}

	v := removeNode(candidate, rng)
	if v < 0 {
		return nil, nil, nil, errNoCandidateVertex
	}
	nodeDelta, err := delta.UpdateNode(state.H, v, classNames, codeToClass)
	if err != nil {
		return nil, nil, nil, err
	}
	gl := subVectors(state.GL, nodeDelta)
	hist := degreeHistogram(candidate, state.histLen)

	return candidate, hist, gl, nil
}

// edgeStep proposes adding or removing an edge, per spec §4.6.
func edgeStep(state *State, stats *statsio.TargetStats, classNames []string, codeToClass map[int]string, rng *rand.Rand) (*graph.Graph, []float64, []int64, error) {
	nV := float64(state.H.VertexCount())
	nE := float64(state.H.EdgeCount())

	d := 0.0
	if stats.StdEdges > 0 && nV > 0 {
		d = (nE*stats.ENodes/nV - stats.EEdges) / stats.StdEdges
	}
	addProb := 1 - sigmoid(d)

	candidate := state.H.Clone()

	if rng.Float64() < addProb {
		u, v, ok := addEdge(state.H, rng)
		if !ok {
			return nil, nil, nil, errNoCandidateEdge
		}
		edgeDelta, err := delta.UpdateEdge(state.H, u, v, classNames, codeToClass)
		if err != nil {
			return nil, nil, nil, err
		}
		_ = candidate.AddEdge(u, v)
		gl := addVectors(state.GL, edgeDelta)
		hist := degreeHistogram(candidate, state.histLen)

		return candidate, hist, gl, nil
	}

	u, v, ok := removeEdge(state.H, rng)
	if !ok {
		return nil, nil, nil, errNoCandidateEdge
	}
	edgeDelta, err := delta.UpdateEdge(state.H, u, v, classNames, codeToClass)
	if err != nil {
		return nil, nil, nil, err
	}
	_ = candidate.RemoveEdge(u, v)
	gl := addVectors(state.GL, edgeDelta)
	hist := degreeHistogram(candidate, state.histLen)

	return candidate, hist, gl, nil
}

func addVectors(a []int64, b []int64) []int64 {
	out := make([]int64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

func subVectors(a []int64, b []int64) []int64 {
	out := make([]int64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// sweepConnectivity restricts state.H to its largest connected component
// when disconnected, and resynchronizes histogram/graphlet vector from
// scratch. Per SPEC_FULL.md §9's Open Question resolution, state.Score
// is deliberately left untouched here; later proposals are compared
// against this pre-sweep score until one is accepted and replaces it.
func sweepConnectivity(state *State, arity int, bins *binning.Bins) {
	largest := state.H.LargestComponent()
	if largest.VertexCount() == state.H.VertexCount() {
		return
	}

	state.H = largest
	gl, err := countGraphlets(state.H, arity)
	if err != nil {
		return
	}
	state.GL = gl
	state.Hist = degreeHistogram(state.H, state.histLen)
}

var errNoCandidateVertex = &stepError{"no candidate vertex available"}
var errNoCandidateEdge = &stepError{"no candidate edge available"}

type stepError struct{ msg string }

func (e *stepError) Error() string { return "graip: " + e.msg }
