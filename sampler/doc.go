// Package sampler implements C5, Monte-Carlo estimation of a
// probabilistic target's structural statistics (spec §4.4): N
// independent Bernoulli realizations, each restricted to its largest
// connected component (graph.Graph.LargestComponent, backed by
// gonum.org/v1/gonum/graph/topo.ConnectedComponents), reduced into the
// mean/std of node count, edge count, degree histogram and graphlet
// vector.
//
// Sampling is parallelised across a bounded worker pool (§5 explicitly
// permits this): each worker owns an independent grng-derived RNG
// stream and local accumulators, merged by a single reduce step once all
// workers finish. Progress is reported through Config.OnProgress at each
// 10% completion tick, matching the OnVisit/OnEnqueue hook idiom used
// throughout package algorithms.
package sampler
