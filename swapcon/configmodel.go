// File: configmodel.go
// Role: the configuration-model seed of spec §4.7: a degree sequence
// drawn from the target's degree distribution (resampled while not
// graphical), then stub pairing with restart-on-stuck.
package swapcon

import (
	"math/rand"

	"github.com/ninsei-dev/graiph/graiperr"
	"github.com/ninsei-dev/graiph/graph"
)

// maxDegreeResamples bounds how many times a fresh degree sequence is
// drawn before generateStubs gives up (KindNotGraphical).
const maxDegreeResamples = 200

// maxPairingRestarts bounds how many times stub pairing restarts from
// an empty graph, for one fixed degree sequence, before a new sequence
// is drawn.
const maxPairingRestarts = 100

// maxStuckAttempts bounds non-adjacent-pair search attempts within one
// pairing attempt before declaring it stuck.
const maxStuckAttempts = 100

// generateStubs draws a length-n degree sequence by sampling degree
// values with replacement from p (a probability distribution over
// 0..len(p)-1), retrying until the Erdos-Gallai test passes.
func generateStubs(n int, p []float64, rng *rand.Rand) ([]int, error) {
	for attempt := 0; attempt < maxDegreeResamples; attempt++ {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = sampleWeightedIndex(p, rng)
		}
		if isGraphical(seq) {
			return seq, nil
		}
	}

	return nil, graiperr.New(graiperr.KindNotGraphical, "no graphical degree sequence found after %d resamples", maxDegreeResamples)
}

// buildConfigurationGraph pairs stubs uniformly at random (weighted by
// remaining stub count) into a simple graph on n vertices, restarting
// from an empty graph whenever pairing gets stuck, and drawing a fresh
// degree sequence when restarts themselves get stuck.
func buildConfigurationGraph(n int, p []float64, rng *rand.Rand) (*graph.Graph, error) {
	stubsFull, err := generateStubs(n, p, rng)
	if err != nil {
		return nil, err
	}

	newSeqAttempts := 0
	for {
		h, ok := pairStubs(n, stubsFull, rng)
		if ok {
			return h, nil
		}

		newSeqAttempts++
		if newSeqAttempts >= maxDegreeResamples {
			return nil, graiperr.New(graiperr.KindStuckStubs, "stub pairing stuck after %d fresh degree sequences", newSeqAttempts)
		}
		stubsFull, err = generateStubs(n, p, rng)
		if err != nil {
			return nil, err
		}
	}
}

// pairStubs attempts one full pairing of stubs into a graph, restarting
// from empty internally up to maxPairingRestarts times; ok is false
// when even that many restarts cannot complete the pairing.
func pairStubs(n int, degSeq []int, rng *rand.Rand) (h *graph.Graph, ok bool) {
	for restart := 0; restart < maxPairingRestarts; restart++ {
		h = graph.NewGraph()
		for v := 0; v < n; v++ {
			_ = h.AddVertex(v)
		}
		stubs := append([]int(nil), degSeq...)

		stuck := false
		for remainingStubs(stubs) {
			u, v, found := pickDisjointStubPair(stubs, h, rng)
			if !found {
				stuck = true
				break
			}
			stubs[u]--
			stubs[v]--
			_ = h.AddEdge(u, v)
		}
		if !stuck {
			return h, true
		}
	}

	return nil, false
}

func remainingStubs(stubs []int) bool {
	for _, s := range stubs {
		if s > 0 {
			return true
		}
	}

	return false
}

// pickDisjointStubPair repeatedly draws a stub-weighted pair of
// distinct vertices not already adjacent in h, up to maxStuckAttempts
// tries.
func pickDisjointStubPair(stubs []int, h *graph.Graph, rng *rand.Rand) (u, v int, ok bool) {
	for t := 0; t < maxStuckAttempts; t++ {
		a, b, found := sampleWeightedPair(stubs, rng)
		if !found {
			return 0, 0, false
		}
		if !h.HasEdge(a, b) {
			return a, b, true
		}
	}

	return 0, 0, false
}

// sampleWeightedIndex picks an index into weights with probability
// proportional to its weight (roulette-wheel selection).
func sampleWeightedIndex(weights []float64, rng *rand.Rand) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}

	r := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}

	return len(weights) - 1
}

// sampleWeightedPair draws two distinct indices without replacement,
// each weighted by the (integer) values in weights, matching numpy's
// sequential weighted-without-replacement sampling.
func sampleWeightedPair(weights []int, rng *rand.Rand) (i, j int, ok bool) {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0, 0, false
	}

	first := sampleWeightedIndexInt(weights, total, rng)

	total2 := total - weights[first]
	if total2 <= 0 {
		return 0, 0, false
	}
	r := rng.Intn(total2)
	cum := 0
	second := -1
	for k, w := range weights {
		if k == first {
			continue
		}
		cum += w
		if r < cum {
			second = k
			break
		}
	}
	if second < 0 {
		return 0, 0, false
	}

	return first, second, true
}

func sampleWeightedIndexInt(weights []int, total int, rng *rand.Rand) int {
	r := rng.Intn(total)
	cum := 0
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}

	return len(weights) - 1
}
