// Package graph defines the undirected simple graph container used
// throughout graiph, and the probabilistic Target variant sampled by
// package sampler.
//
// Graph stores vertices as small non-negative integers and edges as an
// adjacency-set map, giving O(1) expected neighbour iteration and edge
// membership tests. No self-loops and no parallel edges are permitted;
// these invariants are enforced by AddEdge.
//
// Target carries the same adjacency shape but attaches a per-edge
// presence probability instead of a weight — see Design Notes in
// SPEC_FULL.md §9 ("attach it directly to the edge record").
//
// Concurrency: a single mu sync.RWMutex guards vertices and adjacency.
// Callers mutating a Graph/Target across goroutines get a consistent
// view; GRAIP/SwapCon/the sampler each own their working graph
// exclusively and do not rely on this for parallelism, but it keeps the
// type safe to share read-only (e.g. the sampler's target graph is read
// by every worker goroutine).
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrVertexExists indicates AddVertex was called for an already-present vertex.
	ErrVertexExists = errors.New("graph: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEdgeExists indicates AddEdge was called for an already-present edge (no multi-edges).
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrSelfLoop indicates an edge from a vertex to itself was attempted.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrBadProbability indicates a Target edge probability outside [0,1].
	ErrBadProbability = errors.New("graph: probability must be in [0,1]")
)
