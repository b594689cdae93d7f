package pathfinder

import (
	"errors"

	"github.com/somework/p2p-path-finder-sub001/search"
)

// Kind classifies a pathfinder Error without relying on string matching.
type Kind int

const (
	// KindInvalidInput marks malformed user input or an invariant
	// violation caught at construction.
	KindInvalidInput Kind = iota
	// KindPrecisionViolation marks arithmetic inputs that cannot be
	// represented at the required scale, or a tolerance window that
	// collapses to a zero range.
	KindPrecisionViolation
	// KindGuardLimitExceeded marks a guard rail firing while
	// Config.throwOnGuardLimit was set.
	KindGuardLimitExceeded
	// KindInfeasiblePath is reserved for a caller that wants an explicit
	// failure instead of an empty result set; the engine itself never
	// emits it (see DESIGN.md's Open Question resolution).
	KindInfeasiblePath
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindPrecisionViolation:
		return "PrecisionViolation"
	case KindGuardLimitExceeded:
		return "GuardLimitExceeded"
	case KindInfeasiblePath:
		return "InfeasiblePath"
	default:
		return "Unknown"
	}
}

// Sentinel errors for errors.Is matching against a *Error's Kind.
var (
	ErrInvalidInput       = errors.New("pathfinder: invalid input")
	ErrPrecisionViolation = errors.New("pathfinder: precision violation")
	ErrGuardLimitExceeded = errors.New("pathfinder: guard limit exceeded")
	ErrInfeasiblePath     = errors.New("pathfinder: no feasible path")
)

// Error wraps a Kind, its underlying cause, and, for guard-limit
// failures, the SearchGuardReport the caller needs to diagnose it.
type Error struct {
	Kind   Kind
	Err    error
	Guards *search.SearchGuardReport
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Kind.String()
}

// Unwrap lets errors.Is/errors.As see through to the sentinel and any
// wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, sentinel error, cause error, guards *search.SearchGuardReport) *Error {
	err := sentinel
	if cause != nil {
		err = wrapf(sentinel, cause)
	}

	return &Error{Kind: kind, Err: err, Guards: guards}
}

func wrapf(sentinel, cause error) error {
	return &wrappedError{sentinel: sentinel, cause: cause}
}

// wrappedError lets errors.Is match either the sentinel or the original
// cause via errors.Is chaining through Unwrap.
type wrappedError struct {
	sentinel error
	cause    error
}

func (w *wrappedError) Error() string {
	return w.sentinel.Error() + ": " + w.cause.Error()
}

func (w *wrappedError) Unwrap() []error { return []error{w.sentinel, w.cause} }
