// Package graiph grows deterministic graph samples that mimic the
// structural statistics of a probabilistic target network.
//
// 🚀 What is graiph?
//
//	A thread-safe Go reimplementation of the graphlet-driven generation
//	pipeline behind GRAIP (GRAphlet-based Incremental generator for
//	Probabilistic networks):
//
//	  • Exact induced graphlet counting for 3-, 4- and 5-node subgraphs
//	  • Incremental recount under single-node / single-edge perturbations
//	  • Monte-Carlo sampling of a probabilistic target's statistics
//	  • GRAIP: a score-guided incremental generator
//	  • SwapCon: a simulated-annealing double-edge-swap collaborator
//
// ✨ Design
//
//   - Deterministic     — every stream of randomness is an explicit,
//     seedable *rand.Rand (see package grng); no process-global state.
//   - Exact              — graphlet counts use integer arithmetic only;
//     no approximate or sampled counting anywhere in the hot path.
//   - Pure Go            — gonum.org/v1/gonum supplies the
//     connected-component search; means and standard deviations are
//     computed by package sampler itself; no cgo.
//
// Everything is organized under single-concern subpackages:
//
//	graph/     — undirected graph container (C1) and probabilistic target
//	orient/    — degeneracy-ordering DAG orientation (C2)
//	graphlet/  — exact induced 3/4/5-node graphlet counting (C3)
//	delta/     — incremental graphlet-count updates (C4)
//	sampler/   — Monte-Carlo target statistics (C5)
//	binning/   — adaptive degree-histogram binning (C6)
//	graip/     — the GRAIP driver (C7)
//	swapcon/   — the SwapCon driver (C8)
//	grng/      — shared deterministic RNG plumbing
//	graiperr/  — structured fatal/informational error taxonomy
//	statsio/   — target-statistics blob codec
//
// File I/O, CLI wiring, plotting, and MMD/spread evaluation are
// deliberately out of scope; this module is the graph-property engine
// that those external layers would consume.
package graiph
