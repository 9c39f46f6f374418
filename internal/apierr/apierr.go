// Package apierr implements the error taxonomy of §7: a small set of
// error kinds distinguishing boundary failures (bad requests) from
// internal invariant violations, so the HTTP layer can map each to the
// right status code without re-deriving the distinction itself.
package apierr

import "fmt"

// Kind tags one of the error categories.
type Kind int

const (
	// KindInvalidInput covers out-of-range constraints, a malformed mask,
	// a tunnel color not appearing exactly twice, or an unknown obstacle
	// type. Never retried; surfaced as "bad request".
	KindInvalidInput Kind = iota
	// KindInvariantViolation indicates a bug: two snake cells coincided,
	// a tunnel lost its partner after init, or similar internal state
	// corruption. Always a hard failure.
	KindInvariantViolation
)

// Error wraps a Kind with a human-readable reason.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// InvalidInput builds a KindInvalidInput error.
func InvalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Reason: fmt.Sprintf(format, args...)}
}

// InvariantViolation builds a KindInvariantViolation error.
func InvariantViolation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvariantViolation, Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is a KindInvalidInput *Error.
func IsInvalidInput(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindInvalidInput
}
