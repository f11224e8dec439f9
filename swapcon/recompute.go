// File: recompute.go
// Role: from-scratch graphlet-vector recomputation after a swap. Unlike
// graip, swapcon never tracks an incremental delta: a double-edge-swap
// touches four vertices at once, outside the single node/edge
// perturbation contract package delta implements.
package swapcon

import (
	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/graphlet"
	"github.com/ninsei-dev/graiph/orient"
)

func countGraphlets(g *graph.Graph, arity int) ([]int64, error) {
	switch arity {
	case 3:
		v := graphlet.ThreeCounts(g)
		return append([]int64(nil), v[:]...), nil
	case 4:
		dag, err := orient.Orient(g)
		if err != nil {
			return nil, err
		}
		v := graphlet.FourCounts(g, dag)
		return append([]int64(nil), v[:]...), nil
	default:
		dag, err := orient.Orient(g)
		if err != nil {
			return nil, err
		}
		v := graphlet.FiveCounts(g, dag)
		return append([]int64(nil), v[:]...), nil
	}
}

func classCount(arity int) int {
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
