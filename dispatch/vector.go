package dispatch

import "github.com/hupe1980/hepvec/coords"

// Vector is implemented by every concrete vector type of every backend.
type Vector interface {
	// Class returns the concrete type identity.
	Class() Class
	// System classifies the stored coordinate groups.
	System() coords.System
}

// Operand is a vector lifted into a backend's element type E.
type Operand[E any] struct {
	Groups coords.Groups[E]
	Flavor coords.Flavor
	// Extras holds backend payload fields that are not coordinates.
	Extras []coords.Field[E]
}

// System classifies the operand's groups.
func (o Operand[E]) System() coords.System { return o.Groups.System() }

// Dimension returns the operand's dimension.
func (o Operand[E]) Dimension() coords.Dimension { return o.Groups.Dimension() }

// Source is implemented by vectors that can hand out their groups in
// element type E without conversion.
type Source[E any] interface {
	Vector
	Operand() Operand[E]
}

// ResolveHandler returns the backend that computes a result for the given
// operands: the highest precedence, ties broken by the last operand.
// It panics when vs is empty.
func ResolveHandler(vs []Vector) BackendID {
	if len(vs) == 0 {
		panic(coords.Invariantf("dispatch requires at least one vector operand"))
	}
	var best BackendID
	for _, v := range vs {
		if id := v.Class().Backend; id >= best {
			best = id
		}
	}
	return best
}

// ResolveFlavor returns Momentum iff every operand is momentum-flavored.
func ResolveFlavor(vs []Vector) coords.Flavor {
	if len(vs) == 0 {
		panic(coords.Invariantf("dispatch requires at least one vector operand"))
	}
	for _, v := range vs {
		if v.Class().Flavor != coords.Momentum {
			return coords.Generic
		}
	}
	return coords.Momentum
}
