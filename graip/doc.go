// Package graip implements C7, the score-guided incremental graph
// generator of spec §4.6: starting from the best of ten Barabasi-Albert
// seed candidates, it alternates node and edge add/remove proposals
// (every Config.NodeStep-th iteration is a node move, all others an
// edge move), accepting a proposal when it lowers the composite score
// or the rejection counter has saturated at Config.MaxRej, and
// terminating when every binned degree probability and every graphlet
// class count falls within tolerance of the target, or after
// Config.MaxSteps.
//
// Graphlet-vector deltas are computed incrementally via package delta
// (C4) rather than recounted from scratch each step; the degree
// histogram is cheap enough to recompute directly from the candidate
// graph. The single max-clique-containing-a-vertex step of the node-add
// move is a restricted Bron-Kerbosch search (package-internal,
// clique.go) since no pack library covers vertex-restricted max clique.
package graip
