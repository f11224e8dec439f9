// File: recompute.go
// Role: from-scratch recomputation of a graph's degree histogram and
// graphlet vector, used to seed State and to resynchronize it after a
// connectivity sweep.
package graip

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

func degreeHistogram(g *graph.Graph, length int) []float64 {
	hist := make([]float64, length)
	for _, v := range g.Vertices() {
		d := g.Degree(v)
		if d >= 0 && d < length {
			hist[d]++
		} else if d >= length && length > 0 {
			hist[length-1]++
		}
	}

	return hist
}
