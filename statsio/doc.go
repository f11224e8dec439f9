// Package statsio defines TargetStats, the immutable target-statistics
// blob produced by package sampler and consumed by packages binning and
// graip, and its encoding/gob codec: the "portable binary numeric
// format" spec §6 asks for, realized with the standard library rather
// than a bespoke wire format since the contract never leaves the process
// boundary within this module.
package statsio
