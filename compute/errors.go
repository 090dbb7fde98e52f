package compute

import (
	"errors"
	"fmt"
)

// ErrNoSignature is returned when no kernel is registered for the requested
// combination of coordinate kinds.
var ErrNoSignature = errors.New("no such signature")

// SignatureError names the operation and the unsupported kinds.
type SignatureError struct {
	Group     Group
	Op        string
	Signature Signature
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("function '%s' has no %s signature %s", e.Op, e.Group, e.Signature)
}

func (e *SignatureError) Unwrap() error { return ErrNoSignature }
