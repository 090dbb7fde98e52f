package dispatch

import (
	"fmt"

	"github.com/hupe1980/hepvec/coords"
)

// BackendID identifies a numeric container implementation. The declaration
// order is the promotion precedence: when operands of different backends
// meet, the highest one computes the result.
type BackendID uint8

const (
	// Symbolic vectors hold expression trees.
	Symbolic BackendID = iota + 1
	// Object vectors hold plain float64 scalars.
	Object
	// Columnar vectors hold struct-of-arrays columns.
	Columnar
	// Jagged vectors hold variable-length lists of records.
	Jagged

	maxBackend
)

func (b BackendID) String() string {
	switch b {
	case Symbolic:
		return "symbolic"
	case Object:
		return "object"
	case Columnar:
		return "columnar"
	case Jagged:
		return "jagged"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// Class identifies a concrete vector type: its backend, dimension and
// flavor. The projection and flavor cross-references of every vector type
// are derived from it.
type Class struct {
	Backend   BackendID
	Dimension coords.Dimension
	Flavor    coords.Flavor
}

// Projection2D returns the 2D type of the same backend and flavor.
func (c Class) Projection2D() Class { c.Dimension = coords.Dim2; return c }

// Projection3D returns the 3D type of the same backend and flavor.
func (c Class) Projection3D() Class { c.Dimension = coords.Dim3; return c }

// Projection4D returns the 4D type of the same backend and flavor.
func (c Class) Projection4D() Class { c.Dimension = coords.Dim4; return c }

// Projection returns the type of the given dimension.
func (c Class) Projection(dim coords.Dimension) Class { c.Dimension = dim; return c }

// Generic returns the generic sibling.
func (c Class) Generic() Class { c.Flavor = coords.Generic; return c }

// Momentum returns the momentum sibling.
func (c Class) Momentum() Class { c.Flavor = coords.Momentum; return c }

// WithFlavor returns the sibling of flavor f.
func (c Class) WithFlavor(f coords.Flavor) Class { c.Flavor = f; return c }

// IsMomentum reports whether c is a momentum type.
func (c Class) IsMomentum() bool { return c.Flavor == coords.Momentum }

// Name returns the type name, e.g. "Momentum4D" or "Vector2D".
func (c Class) Name() string {
	prefix := "Vector"
	if c.IsMomentum() {
		prefix = "Momentum"
	}
	return fmt.Sprintf("%s%dD", prefix, uint8(c.Dimension))
}

func (c Class) String() string { return c.Backend.String() + "." + c.Name() }
