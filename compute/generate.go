package compute

import (
	"math"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/numeric"
)

// UnaryFunc computes one operation for a single operand of system sys.
type UnaryFunc[T any] func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T

// BinaryFunc computes one operation for two operands.
type BinaryFunc[T any] func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T

// RegisterUnary registers fn for every system of the group's dimension.
func RegisterUnary[T any](r *Registry[T], g Group, op string, params int, shape func(coords.System) Shape, fn UnaryFunc[T]) {
	for _, sys := range coords.Systems(g.Dimension()) {
		r.Register(g, op, SignatureOf(sys), params, shape(sys), func(l numeric.Lib[T], args []T) []T {
			a := Split(args, params, sys)
			return fn(l, a.Params, sys, a.Operands[0])
		})
	}
}

// RegisterBinary registers fn for every ordered pair of systems of the
// group's dimension.
func RegisterBinary[T any](r *Registry[T], g Group, op string, params int, shape func(a, b coords.System) Shape, fn BinaryFunc[T]) {
	for _, pair := range Pairs(g.Dimension()) {
		sa, sb := pair[0], pair[1]
		r.Register(g, op, SignatureOf(sa, sb), params, shape(sa, sb), func(l numeric.Lib[T], args []T) []T {
			a := Split(args, params, sa, sb)
			return fn(l, a.Params, sa, sb, a.Operands[0], a.Operands[1])
		})
	}
}

// ScalarShapeOf is the shape of a unary operation yielding one scalar.
func ScalarShapeOf(coords.System) Shape { return Scalar() }

// BoolShapeOf is the shape of a unary predicate.
func BoolShapeOf(coords.System) Shape { return Bool() }

// ScalarPair is the shape of a binary operation yielding one scalar.
func ScalarPair(_, _ coords.System) Shape { return Scalar() }

// BoolPair is the shape of a binary predicate.
func BoolPair(_, _ coords.System) Shape { return Bool() }

// SameUpdate rewrites the leading groups of the operand in its own system
// and keeps any higher groups it has.
func SameUpdate(sys coords.System) Shape { return Update(sys.Kinds()...) }

// CombinedVector is a new vector in the system Combine picks for a and b.
func CombinedVector(a, b coords.System) Shape { return Vector(Combine(a, b).Kinds()...) }

// One wraps a single value as a kernel result.
func One[T any](v T) []T { return []T{v} }

// RegisterCommon registers the operations every group shares: add,
// subtract, scale, equal, not_equal, isclose and the conversions to each
// system of the group's dimension.
func RegisterCommon[T any](r *Registry[T], g Group) {
	RegisterBinary(r, g, OpAdd, 0, CombinedVector, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return combine(l, sa, sb, a, b, l.Add)
	})
	RegisterBinary(r, g, OpSubtract, 0, CombinedVector, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return combine(l, sa, sb, a, b, l.Sub)
	})
	RegisterUnary(r, g, OpScale, 1, SameUpdate, func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
		return Scale(l, p[0], sys, e)
	})
	RegisterBinary(r, g, OpEqual, 0, BoolPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return One(equal(l, sa, sb, a, b, l.Equal))
	})
	RegisterBinary(r, g, OpNotEqual, 0, BoolPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return One(l.Not(equal(l, sa, sb, a, b, l.Equal)))
	})
	RegisterBinary(r, g, OpIsClose, 2, BoolPair, func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T {
		return One(equal(l, sa, sb, a, b, func(x, y T) T { return l.IsClose(x, y, p[0], p[1]) }))
	})
	for _, target := range coords.Systems(g.Dimension()) {
		RegisterUnary(r, g, ConvertOp(target), 0, func(coords.System) Shape { return Vector(target.Kinds()...) },
			func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
				return Convert(l, sys, target, e)
			})
	}
}

// Convert re-expresses elements of system from in system to, which must
// have the same dimension. An unchanged azimuthal group is copied.
func Convert[T any](l numeric.Lib[T], from, to coords.System, e []T) []T {
	if from == to {
		return append([]T(nil), e...)
	}
	out := Encode(l, to, Decode(l, from, e))
	if from.Azimuthal == to.Azimuthal {
		copy(out[:2], e[:2])
	}
	return out
}

func combine[T any](l numeric.Lib[T], sa, sb coords.System, a, b []T, op func(x, y T) T) []T {
	ca, cb := Decode(l, sa, a), Decode(l, sb, b)
	out := Cartesian[T]{X: op(ca.X, cb.X), Y: op(ca.Y, cb.Y)}
	if sa.Longitudinal != coords.None {
		out.Z = op(ca.Z, cb.Z)
	}
	if sa.Temporal != coords.None {
		out.T = op(ca.T, cb.T)
	}
	return Encode(l, Combine(sa, sb), out)
}

// equal compares elementwise when the systems agree and Cartesian
// components otherwise, folding the per-component results with And.
func equal[T any](l numeric.Lib[T], sa, sb coords.System, a, b []T, cmp func(x, y T) T) T {
	if sa != sb {
		cart := CartesianOf(sa.Dimension())
		a = Encode(l, cart, Decode(l, sa, a))
		b = Encode(l, cart, Decode(l, sb, b))
	}
	out := cmp(a[0], b[0])
	for i := 1; i < len(a); i++ {
		out = l.And(out, cmp(a[i], b[i]))
	}
	return out
}

// CartesianOf returns the Cartesian system of a dimension.
func CartesianOf(dim coords.Dimension) coords.System {
	switch dim {
	case coords.Dim2:
		return XY
	case coords.Dim3:
		return XYZ
	default:
		return XYZT
	}
}

// Scale multiplies a vector by factor f keeping its coordinate kinds.
func Scale[T any](l numeric.Lib[T], f T, sys coords.System, e []T) []T {
	neg := l.Less(f, l.Const(0))
	out := make([]T, 0, len(e))
	switch sys.Azimuthal {
	case coords.XY:
		out = append(out, l.Mul(f, e[0]), l.Mul(f, e[1]))
	case coords.RhoPhi:
		out = append(out, l.Mul(l.Abs(f), e[0]), l.Where(neg, Rectify(l, l.Add(e[1], l.Const(math.Pi))), e[1]))
	}
	switch sys.Longitudinal {
	case coords.Z:
		out = append(out, l.Mul(f, e[2]))
	case coords.Theta:
		out = append(out, l.Where(neg, l.Sub(l.Const(math.Pi), e[2]), e[2]))
	case coords.Eta:
		out = append(out, l.Where(neg, l.Neg(e[2]), e[2]))
	}
	switch sys.Temporal {
	case coords.T:
		out = append(out, l.Mul(f, e[3]))
	case coords.Tau:
		out = append(out, l.Mul(l.Abs(f), e[3]))
	}
	return out
}
