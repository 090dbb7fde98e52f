// Package planar registers the kernels that read only the azimuthal group.
package planar

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/numeric"
)

// Register adds every planar kernel to r.
func Register[T any](r *compute.Registry[T]) {
	g := compute.Planar
	compute.RegisterCommon(r, g)

	compute.RegisterUnary(r, g, compute.OpX, 0, compute.ScalarShapeOf, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		return compute.One(X(l, sys.Azimuthal, e))
	})
	compute.RegisterUnary(r, g, compute.OpY, 0, compute.ScalarShapeOf, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		return compute.One(Y(l, sys.Azimuthal, e))
	})
	compute.RegisterUnary(r, g, compute.OpRho, 0, compute.ScalarShapeOf, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		return compute.One(Rho(l, sys.Azimuthal, e))
	})
	compute.RegisterUnary(r, g, compute.OpRho2, 0, compute.ScalarShapeOf, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		if sys.Azimuthal == coords.RhoPhi {
			return compute.One(numeric.Square(l, e[0]))
		}
		return compute.One(l.Add(numeric.Square(l, e[0]), numeric.Square(l, e[1])))
	})
	compute.RegisterUnary(r, g, compute.OpPhi, 0, compute.ScalarShapeOf, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		return compute.One(Phi(l, sys.Azimuthal, e))
	})
	compute.RegisterBinary(r, g, compute.OpDeltaPhi, 0, compute.ScalarPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(DeltaPhi(l, sa.Azimuthal, sb.Azimuthal, a, b))
	})

	compute.RegisterUnary(r, g, compute.OpRotateZ, 1, compute.SameUpdate, func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
		return RotateZ(l, p[0], sys.Azimuthal, e)
	})
	compute.RegisterUnary(r, g, compute.OpTransform2D, 4, func(coords.System) compute.Shape { return compute.Update(coords.XY) },
		func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
			x, y := X(l, sys.Azimuthal, e), Y(l, sys.Azimuthal, e)
			return []T{
				l.Add(l.Mul(p[0], x), l.Mul(p[1], y)),
				l.Add(l.Mul(p[2], x), l.Mul(p[3], y)),
			}
		})
	compute.RegisterUnary(r, g, compute.OpUnit, 0, compute.SameUpdate, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		if sys.Azimuthal == coords.RhoPhi {
			return []T{l.Const(1), e[1]}
		}
		rho := Rho(l, coords.XY, e)
		return []T{l.Div(e[0], rho), l.Div(e[1], rho)}
	})
	compute.RegisterBinary(r, g, compute.OpDot, 0, compute.ScalarPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(Dot(l, sa.Azimuthal, sb.Azimuthal, a, b))
	})

	cosine := func(l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
		return l.Div(Dot(l, sa.Azimuthal, sb.Azimuthal, a, b), l.Mul(Rho(l, sa.Azimuthal, a), Rho(l, sb.Azimuthal, b)))
	}
	compute.RegisterBinary(r, g, compute.OpIsParallel, 1, compute.BoolPair, func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Less(l.Sub(l.Const(1), p[0]), cosine(l, sa, sb, a, b)))
	})
	compute.RegisterBinary(r, g, compute.OpIsAntiparallel, 1, compute.BoolPair, func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Less(cosine(l, sa, sb, a, b), l.Sub(p[0], l.Const(1))))
	})
	compute.RegisterBinary(r, g, compute.OpIsPerpendicular, 1, compute.BoolPair, func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Less(l.Abs(cosine(l, sa, sb, a, b)), p[0]))
	})
}

// X returns the x component of an azimuthal group.
func X[T any](l numeric.Lib[T], k coords.Kind, e []T) T {
	if k == coords.RhoPhi {
		return l.Mul(e[0], l.Cos(e[1]))
	}
	return e[0]
}

// Y returns the y component of an azimuthal group.
func Y[T any](l numeric.Lib[T], k coords.Kind, e []T) T {
	if k == coords.RhoPhi {
		return l.Mul(e[0], l.Sin(e[1]))
	}
	return e[1]
}

// Rho returns the transverse magnitude of an azimuthal group.
func Rho[T any](l numeric.Lib[T], k coords.Kind, e []T) T {
	if k == coords.RhoPhi {
		return e[0]
	}
	return numeric.Hypot(l, e[0], e[1])
}

// Phi returns the azimuthal angle of an azimuthal group.
func Phi[T any](l numeric.Lib[T], k coords.Kind, e []T) T {
	if k == coords.RhoPhi {
		return e[1]
	}
	return l.Atan2(e[1], e[0])
}

// DeltaPhi returns the rectified difference of two azimuthal angles.
func DeltaPhi[T any](l numeric.Lib[T], ka, kb coords.Kind, a, b []T) T {
	return compute.Rectify(l, l.Sub(Phi(l, ka, a), Phi(l, kb, b)))
}

// Dot returns the transverse dot product.
func Dot[T any](l numeric.Lib[T], ka, kb coords.Kind, a, b []T) T {
	if ka == coords.RhoPhi && kb == coords.RhoPhi {
		return l.Mul(l.Mul(a[0], b[0]), l.Cos(l.Sub(a[1], b[1])))
	}
	return l.Add(l.Mul(X(l, ka, a), X(l, kb, b)), l.Mul(Y(l, ka, a), Y(l, kb, b)))
}

// RotateZ rotates an azimuthal group by angle, keeping its kind.
func RotateZ[T any](l numeric.Lib[T], angle T, k coords.Kind, e []T) []T {
	if k == coords.RhoPhi {
		return []T{e[0], compute.Rectify(l, l.Add(e[1], angle))}
	}
	s, c := l.Sin(angle), l.Cos(angle)
	return []T{
		l.Sub(l.Mul(c, e[0]), l.Mul(s, e[1])),
		l.Add(l.Mul(s, e[0]), l.Mul(c, e[1])),
	}
}
