package dispatch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hepvec/coords"
)

var (
	// ErrDimensionMismatch is returned by equality-like operations on
	// operands of different dimension.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIncompatibleBackends is returned when operands of backends that
	// cannot be combined meet in one calculation.
	ErrIncompatibleBackends = errors.New("incompatible backends")

	// ErrPromoted is returned when a result was produced by a different
	// backend than the method's receiver expects.
	ErrPromoted = errors.New("result promoted to another backend")

	// ErrMissingParameter is returned when a required keyword parameter is
	// absent, e.g. a boost without beta or gamma.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidParameter is returned when a parameter cannot be lifted into
	// the computing backend.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// DimensionError reports operands of different dimension.
type DimensionError struct {
	Op         string
	Dimensions []coords.Dimension
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: vectors of dimension %v do not have the same dimension; "+
		"use to_Vector2D, to_Vector3D or to_Vector4D to project one of them first", e.Op, e.Dimensions)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// BackendError reports a failed backend combination or promotion.
type BackendError struct {
	// Handler is the backend that was selected to compute the result.
	Handler BackendID
	// Operand describes the value that could not be used.
	Operand string
	cause   error
}

// NewBackendError returns a *BackendError wrapping ErrIncompatibleBackends.
func NewBackendError(handler BackendID, operand Class) *BackendError {
	return &BackendError{Handler: handler, Operand: operand.String(), cause: ErrIncompatibleBackends}
}

func (e *BackendError) Error() string {
	if errors.Is(e.cause, ErrPromoted) {
		return fmt.Sprintf("result computed by the %s backend has type %s; call the method on the %s operand instead",
			e.Handler, e.Operand, e.Handler)
	}
	return fmt.Sprintf("cannot use %s in a calculation handled by the %s backend", e.Operand, e.Handler)
}

func (e *BackendError) Unwrap() error { return e.cause }

// ParameterError reports a missing or invalid parameter.
type ParameterError struct {
	Op    string
	Msg   string
	cause error
}

func (e *ParameterError) Error() string { return e.Op + ": " + e.Msg }

func (e *ParameterError) Unwrap() error { return e.cause }

// MissingParameter returns a *ParameterError wrapping ErrMissingParameter.
func MissingParameter(op, msg string) error {
	return &ParameterError{Op: op, Msg: msg, cause: ErrMissingParameter}
}

// InvalidParameter returns a *ParameterError wrapping ErrInvalidParameter.
func InvalidParameter(op string, p any) error {
	return &ParameterError{Op: op, Msg: fmt.Sprintf("cannot use parameter of type %T", p), cause: ErrInvalidParameter}
}
