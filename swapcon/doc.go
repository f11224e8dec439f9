// Package swapcon implements C8, the simulated-annealing double-edge-swap
// generator of spec §4.7: a configuration-model seed (degree sequence
// drawn from the target's degree distribution, stubs paired uniformly
// at random with restart-on-stuck), then repeated double-edge-swap
// moves accepted by a Metropolis criterion on the graphlet-vector
// energy, with geometric cooling.
//
// Unlike graip, swapcon recounts graphlets from scratch after every
// accepted swap rather than tracking an incremental delta: a swap
// touches four vertices at once and this module's incremental updater
// (package delta) is specified for single node/edge perturbations
// only, so reuse here is limited to the graphlet enumerator (C3).
package swapcon
