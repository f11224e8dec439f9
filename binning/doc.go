// Package binning implements C6, adaptive binning of a target's degree
// histogram (spec §4.5): bins are merged right-to-left until every bin
// carries at least one node's worth of expected mass, wide bins are
// tightened to drop near-zero tails, and per-bin tolerances are derived
// (+-2*std for width-1 bins, a scaled fractional-count margin for wider
// ones). The result feeds package graip's score function and
// termination check.
package binning
