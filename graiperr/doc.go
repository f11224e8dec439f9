// Package graiperr defines the structured fatal-error taxonomy shared by
// sampler, binning, graip and swapcon: BadTarget, BadArity, BadInputs,
// NotGraphical, MaxStepsReached, StuckStubs. Every *Error carries a Kind
// plus Retryable/Informational predicates so callers can distinguish
// "retry locally" (NotGraphical, StuckStubs) and "the result is still
// valid" (MaxStepsReached) from hard failures.
package graiperr
