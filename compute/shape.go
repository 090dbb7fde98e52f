package compute

import (
	"fmt"

	"github.com/hupe1980/hepvec/coords"
)

// ShapeKind tags the form of a kernel's output.
type ShapeKind uint8

const (
	// ScalarShape kernels return one numeric value.
	ScalarShape ShapeKind = iota + 1
	// BoolShape kernels return one truth value.
	BoolShape
	// UpdateShape kernels return the leading groups of the origin vector;
	// the remaining groups are carried over unchanged.
	UpdateShape
	// VectorShape kernels return a complete vector of the given system.
	VectorShape
)

// Shape is the declared output of a kernel.
type Shape struct {
	Kind ShapeKind
	// System holds the output kinds. For UpdateShape only the leading groups
	// are set.
	System coords.System
	// Generic forces a generic-flavored result.
	Generic bool
}

// Scalar declares a single numeric result.
func Scalar() Shape { return Shape{Kind: ScalarShape} }

// Bool declares a single truth-valued result.
func Bool() Shape { return Shape{Kind: BoolShape} }

// Update declares a partial result covering the leading groups given by
// kinds, in group order.
func Update(kinds ...coords.Kind) Shape {
	return Shape{Kind: UpdateShape, System: systemOf(kinds)}
}

// Vector declares a complete 2D, 3D or 4D result.
func Vector(kinds ...coords.Kind) Shape {
	return Shape{Kind: VectorShape, System: systemOf(kinds)}
}

// AsGeneric returns s with the generic flavor forced.
func (s Shape) AsGeneric() Shape {
	s.Generic = true
	return s
}

// Arity returns the number of raw values a kernel of shape s returns.
func (s Shape) Arity() int {
	switch s.Kind {
	case ScalarShape, BoolShape:
		return 1
	default:
		return s.System.Arity()
	}
}

// Valid reports whether s is well formed.
func (s Shape) Valid() bool {
	switch s.Kind {
	case ScalarShape, BoolShape:
		return true
	case UpdateShape, VectorShape:
		return s.System.Valid()
	default:
		return false
	}
}

func (s Shape) String() string {
	switch s.Kind {
	case ScalarShape:
		return "Scalar"
	case BoolShape:
		return "Bool"
	case UpdateShape:
		return "Update" + s.System.String()
	case VectorShape:
		return fmt.Sprintf("Vector%s%s", s.System.Dimension(), s.System)
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s.Kind))
	}
}

func systemOf(kinds []coords.Kind) coords.System {
	var sys coords.System
	for _, k := range kinds {
		switch k.Group() {
		case coords.GroupAzimuthal:
			sys.Azimuthal = k
		case coords.GroupLongitudinal:
			sys.Longitudinal = k
		case coords.GroupTemporal:
			sys.Temporal = k
		}
	}
	return sys
}
