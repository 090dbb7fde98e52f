package coords

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousCoordinates is returned when more than one candidate is given
	// for the same coordinate group.
	ErrAmbiguousCoordinates = errors.New("ambiguous coordinates")

	// ErrUnrecognizedCoordinates is returned when the given names do not form
	// one of the allowed combinations.
	ErrUnrecognizedCoordinates = errors.New("unrecognized coordinates")
)

// CoordinateError describes a rejected keyword construction.
type CoordinateError struct {
	Msg   string
	cause error
}

func (e *CoordinateError) Error() string { return e.Msg }

func (e *CoordinateError) Unwrap() error { return e.cause }

// Ambiguousf returns a *CoordinateError wrapping ErrAmbiguousCoordinates.
func Ambiguousf(format string, args ...any) error {
	return &CoordinateError{Msg: fmt.Sprintf(format, args...), cause: ErrAmbiguousCoordinates}
}

// Unrecognizedf returns a *CoordinateError wrapping ErrUnrecognizedCoordinates.
func Unrecognizedf(format string, args ...any) error {
	return &CoordinateError{Msg: fmt.Sprintf(format, args...), cause: ErrUnrecognizedCoordinates}
}

// InvariantError reports a violated internal invariant. It is raised with
// panic and never returned.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "internal invariant violated: " + e.Msg }

// Invariantf builds an *InvariantError for panic.
func Invariantf(format string, args ...any) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}
