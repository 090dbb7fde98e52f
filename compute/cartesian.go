package compute

import (
	"math"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/numeric"
)

// Cartesian holds a vector's components in (x, y, z, t). Components above
// the vector's dimension are left as the zero value of T and must not be
// read.
type Cartesian[T any] struct {
	X, Y, Z, T T
	// Rho is the transverse magnitude, kept because most conversions need it.
	Rho T
}

// Decode converts the elements of a vector in system sys to Cartesian
// components.
func Decode[T any](l numeric.Lib[T], sys coords.System, e []T) Cartesian[T] {
	var c Cartesian[T]
	switch sys.Azimuthal {
	case coords.XY:
		c.X, c.Y = e[0], e[1]
		c.Rho = numeric.Hypot(l, c.X, c.Y)
	case coords.RhoPhi:
		c.Rho = e[0]
		c.X = l.Mul(e[0], l.Cos(e[1]))
		c.Y = l.Mul(e[0], l.Sin(e[1]))
	}
	if sys.Longitudinal == coords.None {
		return c
	}
	switch sys.Longitudinal {
	case coords.Z:
		c.Z = e[2]
	case coords.Theta:
		c.Z = l.NanToNum(l.Div(c.Rho, l.Tan(e[2])))
	case coords.Eta:
		c.Z = l.Mul(c.Rho, l.Sinh(e[2]))
	}
	switch sys.Temporal {
	case coords.T:
		c.T = e[3]
	case coords.Tau:
		c.T = TimeFromTau(l, e[3], l.Add(numeric.Square(l, c.Rho), numeric.Square(l, c.Z)))
	}
	return c
}

// Encode converts Cartesian components to the elements of system sys.
func Encode[T any](l numeric.Lib[T], sys coords.System, c Cartesian[T]) []T {
	out := make([]T, 0, sys.Arity())
	rho := func() T { return numeric.Hypot(l, c.X, c.Y) }
	switch sys.Azimuthal {
	case coords.XY:
		out = append(out, c.X, c.Y)
	case coords.RhoPhi:
		out = append(out, rho(), l.Atan2(c.Y, c.X))
	}
	if sys.Longitudinal == coords.None {
		return out
	}
	switch sys.Longitudinal {
	case coords.Z:
		out = append(out, c.Z)
	case coords.Theta:
		out = append(out, l.Atan2(rho(), c.Z))
	case coords.Eta:
		out = append(out, l.NanToNum(l.Arcsinh(l.Div(c.Z, rho()))))
	}
	switch sys.Temporal {
	case coords.T:
		out = append(out, c.T)
	case coords.Tau:
		mag2 := numeric.Sum(l, numeric.Square(l, c.X), numeric.Square(l, c.Y), numeric.Square(l, c.Z))
		out = append(out, TauFromTime(l, c.T, mag2))
	}
	return out
}

// TimeFromTau returns t for proper time tau and squared spatial magnitude.
// A negative tau marks a spacelike vector.
func TimeFromTau[T any](l numeric.Lib[T], tau, mag2 T) T {
	t2 := l.Add(l.Copysign(numeric.Square(l, tau), tau), mag2)
	return l.Sqrt(l.Maximum(t2, l.Const(0)))
}

// TauFromTime returns the signed proper time.
func TauFromTime[T any](l numeric.Lib[T], t, mag2 T) T {
	tau2 := l.Sub(numeric.Square(l, t), mag2)
	return SignedSqrt(l, tau2)
}

// SignedSqrt returns copysign(sqrt(|v|), v).
func SignedSqrt[T any](l numeric.Lib[T], v T) T {
	return l.Copysign(l.Sqrt(l.Abs(v)), v)
}

// Rectify maps an angle into [-pi, pi).
func Rectify[T any](l numeric.Lib[T], phi T) T {
	pi := l.Const(math.Pi)
	return l.Sub(l.Mod(l.Add(phi, pi), l.Const(2*math.Pi)), pi)
}

// Combine returns the output system of a binary operation: per group the
// operands' kind when they agree and the Cartesian kind otherwise.
func Combine(a, b coords.System) coords.System {
	pick := func(x, y, cart coords.Kind) coords.Kind {
		if x == coords.None || y == coords.None {
			return coords.None
		}
		if x == y {
			return x
		}
		return cart
	}
	return coords.System{
		Azimuthal:    pick(a.Azimuthal, b.Azimuthal, coords.XY),
		Longitudinal: pick(a.Longitudinal, b.Longitudinal, coords.Z),
		Temporal:     pick(a.Temporal, b.Temporal, coords.T),
	}
}

// Cartesian system of each dimension.
var (
	XY   = coords.Sys2D(coords.XY)
	XYZ  = coords.Sys3D(coords.XY, coords.Z)
	XYZT = coords.Sys4D(coords.XY, coords.Z, coords.T)
)

// Args splits a kernel's flat argument list.
type Args[T any] struct {
	Params   []T
	Operands [][]T
}

// Split cuts args into params and one slice per operand system.
func Split[T any](args []T, params int, systems ...coords.System) Args[T] {
	a := Args[T]{Params: args[:params], Operands: make([][]T, len(systems))}
	off := params
	for i, sys := range systems {
		n := sys.Arity()
		a.Operands[i] = args[off : off+n]
		off += n
	}
	return a
}

// Pairs returns every ordered pair of systems of dimension dim.
func Pairs(dim coords.Dimension) [][2]coords.System {
	var out [][2]coords.System
	for _, a := range coords.Systems(dim) {
		for _, b := range coords.Systems(dim) {
			out = append(out, [2]coords.System{a, b})
		}
	}
	return out
}
