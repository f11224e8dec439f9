// Package delta computes incremental graphlet-count updates when a
// single vertex or edge is added to or removed from a graph, without
// recounting from scratch. It mirrors graphlet's induced counts by
// extending the modified vertex/edge outward through its neighbourhood
// (depth 3, then 4, then 5, governed by how many classes the caller
// tracks), classifying every newly touched induced subgraph via its
// bitmask code and graphlet.CodeToClassN.
//
// Unlike package graphlet's ESCAPE-based Three/Four/FiveCounts, which
// recompute exact counts via a non-induced accumulation and an
// inclusion-exclusion transform, delta never accumulates non-induced
// counts: every subgraph it visits is classified directly, so no
// transform step exists here by design.
package delta

import "errors"

// ErrGraphletSizeUnsupported indicates a classNames slice whose length
// does not correspond to a supported graphlet depth (2, 8, or 29).
var ErrGraphletSizeUnsupported = errors.New("delta: unsupported graphlet vector size")
