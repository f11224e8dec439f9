// Package graphlet counts induced k-node subgraphs (graphlets, k in
// {3,4,5}) of a graph.Graph. ThreeCounts classifies every pair of a
// vertex's neighbours as open or closed directly. FourCounts and
// FiveCounts use the ESCAPE algorithm (Pinar, Seshadhri, Vishal, WWW
// 2017): a combinatorial pass over a degeneracy-oriented DAG
// accumulates non-induced pattern counts, which are then converted to
// induced counts by inclusion-exclusion (k=4) or by a fixed integer
// matrix-vector product (k=5).
//
// A k-node subgraph's isomorphism class is identified by a bitmask code:
// for an ordered node tuple (n0,...,n_{k-1}), bit j*(j-1)/2+i is set iff
// an edge exists between n_i and n_j (i<j). CodeToClass3/4/5 map every
// connected code to its graphlet class name; ClassNames3/4/5 fix the
// output order of Vector3/4/5.
package graphlet
