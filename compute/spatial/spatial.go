// Package spatial registers the kernels that read the azimuthal and
// longitudinal groups.
package spatial

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/compute/planar"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/numeric"
)

var xyz = compute.Update(coords.XY, coords.Z)

// Register adds every spatial kernel to r.
func Register[T any](r *compute.Registry[T]) {
	g := compute.Spatial
	compute.RegisterCommon(r, g)

	scalar := func(op string, fn func(l numeric.Lib[T], sys coords.System, e []T) T) {
		compute.RegisterUnary(r, g, op, 0, compute.ScalarShapeOf, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
			return compute.One(fn(l, sys, e))
		})
	}
	scalar(compute.OpZ, Z[T])
	scalar(compute.OpTheta, Theta[T])
	scalar(compute.OpEta, Eta[T])
	scalar(compute.OpMag2, Mag2[T])
	scalar(compute.OpMag, func(l numeric.Lib[T], sys coords.System, e []T) T { return l.Sqrt(Mag2(l, sys, e)) })
	scalar(compute.OpCosTheta, func(l numeric.Lib[T], sys coords.System, e []T) T {
		if sys.Longitudinal == coords.Z {
			return l.Div(e[2], l.Sqrt(Mag2(l, sys, e)))
		}
		return l.Cos(Theta(l, sys, e))
	})
	scalar(compute.OpCotTheta, func(l numeric.Lib[T], sys coords.System, e []T) T {
		switch sys.Longitudinal {
		case coords.Theta:
			return l.Div(l.Const(1), l.Tan(e[2]))
		case coords.Eta:
			return l.Sinh(e[2])
		default:
			return l.Div(e[2], planar.Rho(l, sys.Azimuthal, e))
		}
	})

	compute.RegisterBinary(r, g, compute.OpCross, 0, func(_, _ coords.System) compute.Shape { return compute.Vector(coords.XY, coords.Z) },
		func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
			ca, cb := compute.Decode(l, sa, a), compute.Decode(l, sb, b)
			return []T{
				l.Sub(l.Mul(ca.Y, cb.Z), l.Mul(ca.Z, cb.Y)),
				l.Sub(l.Mul(ca.Z, cb.X), l.Mul(ca.X, cb.Z)),
				l.Sub(l.Mul(ca.X, cb.Y), l.Mul(ca.Y, cb.X)),
			}
		})
	compute.RegisterBinary(r, g, compute.OpDot, 0, compute.ScalarPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(Dot(l, sa, sb, a, b))
	})

	binary := func(op string, fn func(l numeric.Lib[T], sa, sb coords.System, a, b []T) T) {
		compute.RegisterBinary(r, g, op, 0, compute.ScalarPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
			return compute.One(fn(l, sa, sb, a, b))
		})
	}
	binary(compute.OpDeltaAngle, func(l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
		return l.Arccos(clip(l, Cosine(l, sa, sb, a, b)))
	})
	binary(compute.OpDeltaEta, func(l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
		return l.Sub(Eta(l, sa, a), Eta(l, sb, b))
	})
	binary(compute.OpDeltaR2, DeltaR2[T])
	binary(compute.OpDeltaR, func(l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
		return l.Sqrt(DeltaR2(l, sa, sb, a, b))
	})

	compute.RegisterUnary(r, g, compute.OpRotateX, 1, func(coords.System) compute.Shape { return xyz },
		func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
			c := compute.Decode(l, sys, e)
			s, co := l.Sin(p[0]), l.Cos(p[0])
			return []T{c.X, l.Sub(l.Mul(c.Y, co), l.Mul(c.Z, s)), l.Add(l.Mul(c.Y, s), l.Mul(c.Z, co))}
		})
	compute.RegisterUnary(r, g, compute.OpRotateY, 1, func(coords.System) compute.Shape { return xyz },
		func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
			c := compute.Decode(l, sys, e)
			s, co := l.Sin(p[0]), l.Cos(p[0])
			return []T{l.Add(l.Mul(c.X, co), l.Mul(c.Z, s)), c.Y, l.Sub(l.Mul(c.Z, co), l.Mul(c.X, s))}
		})
	compute.RegisterBinary(r, g, compute.OpRotateAxis, 1, func(_, _ coords.System) compute.Shape { return xyz },
		func(l numeric.Lib[T], p []T, sa, sb coords.System, axis, v []T) []T {
			return RotateAxis(l, p[0], compute.Decode(l, sa, axis), compute.Decode(l, sb, v))
		})
	compute.RegisterUnary(r, g, compute.OpRotateQuaternion, 4, func(coords.System) compute.Shape { return xyz },
		func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
			return RotateQuaternion(l, p[0], p[1], p[2], p[3], compute.Decode(l, sys, e))
		})
	compute.RegisterUnary(r, g, compute.OpTransform3D, 9, func(coords.System) compute.Shape { return xyz },
		func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
			c := compute.Decode(l, sys, e)
			out := make([]T, 3)
			for i := range out {
				out[i] = numeric.Sum(l, l.Mul(p[3*i], c.X), l.Mul(p[3*i+1], c.Y), l.Mul(p[3*i+2], c.Z))
			}
			return out
		})
	compute.RegisterUnary(r, g, compute.OpUnit, 0, compute.SameUpdate, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		return compute.Scale(l, l.Div(l.Const(1), l.Sqrt(Mag2(l, sys, e))), sys, e)
	})

	compute.RegisterBinary(r, g, compute.OpIsParallel, 1, compute.BoolPair, func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Less(l.Sub(l.Const(1), p[0]), Cosine(l, sa, sb, a, b)))
	})
	compute.RegisterBinary(r, g, compute.OpIsAntiparallel, 1, compute.BoolPair, func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Less(Cosine(l, sa, sb, a, b), l.Sub(p[0], l.Const(1))))
	})
	compute.RegisterBinary(r, g, compute.OpIsPerpendicular, 1, compute.BoolPair, func(l numeric.Lib[T], p []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Less(l.Abs(Cosine(l, sa, sb, a, b)), p[0]))
	})
}

// Z returns the longitudinal component.
func Z[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	if sys.Longitudinal == coords.Z {
		return e[2]
	}
	return compute.Decode(l, sys.Truncate(coords.Dim3), e).Z
}

// Theta returns the polar angle.
func Theta[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	switch sys.Longitudinal {
	case coords.Theta:
		return e[2]
	case coords.Eta:
		return l.Mul(l.Const(2), l.Arctan(l.Exp(l.Neg(e[2]))))
	default:
		return l.Atan2(planar.Rho(l, sys.Azimuthal, e), e[2])
	}
}

// Eta returns the pseudorapidity.
func Eta[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	switch sys.Longitudinal {
	case coords.Eta:
		return e[2]
	case coords.Theta:
		return l.NanToNum(l.Neg(l.Log(l.Tan(l.Mul(l.Const(0.5), e[2])))))
	default:
		return l.NanToNum(l.Arcsinh(l.Div(e[2], planar.Rho(l, sys.Azimuthal, e))))
	}
}

// Mag2 returns the squared spatial magnitude.
func Mag2[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	rho := planar.Rho(l, sys.Azimuthal, e)
	return l.Add(numeric.Square(l, rho), numeric.Square(l, Z(l, sys, e)))
}

// Dot returns the spatial dot product.
func Dot[T any](l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
	return l.Add(planar.Dot(l, sa.Azimuthal, sb.Azimuthal, a, b), l.Mul(Z(l, sa, a), Z(l, sb, b)))
}

// Cosine returns the cosine of the angle between two spatial vectors.
func Cosine[T any](l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
	return l.Div(Dot(l, sa, sb, a, b), l.Sqrt(l.Mul(Mag2(l, sa, a), Mag2(l, sb, b))))
}

// DeltaR2 returns deltaphi^2 + deltaeta^2.
func DeltaR2[T any](l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
	dphi := planar.DeltaPhi(l, sa.Azimuthal, sb.Azimuthal, a, b)
	deta := l.Sub(Eta(l, sa, a), Eta(l, sb, b))
	return l.Add(numeric.Square(l, dphi), numeric.Square(l, deta))
}

// RotateAxis rotates v by angle around axis (Rodrigues' formula).
func RotateAxis[T any](l numeric.Lib[T], angle T, axis, v compute.Cartesian[T]) []T {
	norm := numeric.Hypot(l, axis.X, axis.Y, axis.Z)
	ux, uy, uz := l.Div(axis.X, norm), l.Div(axis.Y, norm), l.Div(axis.Z, norm)
	s, c := l.Sin(angle), l.Cos(angle)
	k := l.Sub(l.Const(1), c)
	dot := numeric.Sum(l, l.Mul(ux, v.X), l.Mul(uy, v.Y), l.Mul(uz, v.Z))
	cross := [3]T{
		l.Sub(l.Mul(uy, v.Z), l.Mul(uz, v.Y)),
		l.Sub(l.Mul(uz, v.X), l.Mul(ux, v.Z)),
		l.Sub(l.Mul(ux, v.Y), l.Mul(uy, v.X)),
	}
	comp := [3]T{v.X, v.Y, v.Z}
	u := [3]T{ux, uy, uz}
	out := make([]T, 3)
	for i := range out {
		out[i] = numeric.Sum(l, l.Mul(comp[i], c), l.Mul(cross[i], s), l.Mul(l.Mul(u[i], dot), k))
	}
	return out
}

// RotateQuaternion rotates v by the quaternion u + i*I + j*J + k*K.
func RotateQuaternion[T any](l numeric.Lib[T], u, i, j, k T, v compute.Cartesian[T]) []T {
	two := l.Const(2)
	uu, ii, jj, kk := numeric.Square(l, u), numeric.Square(l, i), numeric.Square(l, j), numeric.Square(l, k)
	m := [9]T{
		l.Sub(l.Add(uu, ii), l.Add(jj, kk)),
		l.Mul(two, l.Sub(l.Mul(i, j), l.Mul(u, k))),
		l.Mul(two, l.Add(l.Mul(i, k), l.Mul(u, j))),

		l.Mul(two, l.Add(l.Mul(i, j), l.Mul(u, k))),
		l.Sub(l.Add(uu, jj), l.Add(ii, kk)),
		l.Mul(two, l.Sub(l.Mul(j, k), l.Mul(u, i))),

		l.Mul(two, l.Sub(l.Mul(i, k), l.Mul(u, j))),
		l.Mul(two, l.Add(l.Mul(j, k), l.Mul(u, i))),
		l.Sub(l.Add(uu, kk), l.Add(ii, jj)),
	}
	out := make([]T, 3)
	for r := range out {
		out[r] = numeric.Sum(l, l.Mul(m[3*r], v.X), l.Mul(m[3*r+1], v.Y), l.Mul(m[3*r+2], v.Z))
	}
	return out
}

// clip limits a cosine to [-1, 1].
func clip[T any](l numeric.Lib[T], v T) T {
	one := l.Const(1)
	upper := l.Neg(l.Maximum(l.Neg(v), l.Neg(one)))
	return l.Maximum(upper, l.Neg(one))
}
