// File: errors.go
// Role: structured fatal-error taxonomy shared by sampler, binning, graip
// and swapcon, following the typed-result pattern of core/api.go.
package graiperr

import "fmt"

// Kind classifies a graiperr.Error.
type Kind int

const (
	// KindBadTarget indicates a probabilistic target graph is missing a
	// per-edge probability, or carries one outside [0,1].
	KindBadTarget Kind = iota
	// KindBadArity indicates max_gl_size is not one of {3,4,5}.
	KindBadArity
	// KindBadInputs indicates a driver needing a target or a
	// pre-computed statistics blob received neither.
	KindBadInputs
	// KindNotGraphical indicates a configuration-model degree sequence
	// failed to realize after a bounded resampling budget.
	KindNotGraphical
	// KindMaxStepsReached is informational: GRAIP ran out of steps
	// before reaching tolerance convergence; the returned graph is
	// still valid.
	KindMaxStepsReached
	// KindStuckStubs indicates configuration-model stub pairing failed
	// 100 times in a row for one degree sequence.
	KindStuckStubs
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBadTarget:
		return "BadTarget"
	case KindBadArity:
		return "BadArity"
	case KindBadInputs:
		return "BadInputs"
	case KindNotGraphical:
		return "NotGraphical"
	case KindMaxStepsReached:
		return "MaxStepsReached"
	case KindStuckStubs:
		return "StuckStubs"
	default:
		return "Unknown"
	}
}

// Error is a structured, kind-tagged failure. All kinds are fatal to the
// caller except where Retryable or Informational report otherwise.
type Error struct {
	Kind    Kind
	Detail  string
	Wrapped error
}

// New constructs an *Error of the given kind with a formatted detail.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind, chaining err.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...), Wrapped: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("graiperr: %s: %s: %v", e.Kind, e.Detail, e.Wrapped)
	}

	return fmt.Sprintf("graiperr: %s: %s", e.Kind, e.Detail)
}

// Unwrap exposes the wrapped error to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Retryable reports whether the caller may locally retry the operation
// that produced e (StuckStubs/NotGraphical only, per the error design).
func (e *Error) Retryable() bool {
	return e.Kind == KindNotGraphical || e.Kind == KindStuckStubs
}

// Informational reports whether e signals a non-fatal condition whose
// accompanying result is still usable (MaxStepsReached only).
func (e *Error) Informational() bool {
	return e.Kind == KindMaxStepsReached
}
