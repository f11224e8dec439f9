// Package orient computes a degeneracy ordering of a graph and the
// resulting DAG orientation used by package graphlet to bound the
// out-degree of every vertex by the graph's degeneracy.
//
// The ordering is produced by repeatedly removing a minimum-degree
// vertex from a working copy of the graph (bucket-queue selection, as
// in dfs.TopologicalSort's vertex-state bookkeeping), recording removal
// rank. Every undirected edge {u,v} is then oriented from whichever
// endpoint was removed first (lower rank) to the other, so out-edges
// only ever point toward vertices that survived longer in the peeling
// process.
package orient

import "errors"

// ErrNilGraph indicates Orient was called with a nil graph.
var ErrNilGraph = errors.New("orient: graph is nil")
