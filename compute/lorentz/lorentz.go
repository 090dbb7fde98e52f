// Package lorentz registers the kernels that read all three coordinate
// groups of a 4D vector.
package lorentz

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/compute/planar"
	"github.com/hupe1980/hepvec/compute/spatial"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/numeric"
)

var xyzt = compute.Update(coords.XY, coords.Z, coords.T)

// Register adds every Lorentz kernel to r.
func Register[T any](r *compute.Registry[T]) {
	g := compute.Lorentz
	compute.RegisterCommon(r, g)

	scalar := func(op string, fn func(l numeric.Lib[T], sys coords.System, e []T) T) {
		compute.RegisterUnary(r, g, op, 0, compute.ScalarShapeOf, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
			return compute.One(fn(l, sys, e))
		})
	}
	scalar(compute.OpT, Time[T])
	scalar(compute.OpT2, func(l numeric.Lib[T], sys coords.System, e []T) T { return numeric.Square(l, Time(l, sys, e)) })
	scalar(compute.OpTau, Tau[T])
	scalar(compute.OpTau2, Tau2[T])
	scalar(compute.OpBeta, func(l numeric.Lib[T], sys coords.System, e []T) T {
		return l.Div(l.Sqrt(spatial.Mag2(l, sys, e)), Time(l, sys, e))
	})
	scalar(compute.OpGamma, func(l numeric.Lib[T], sys coords.System, e []T) T {
		return l.Div(Time(l, sys, e), Tau(l, sys, e))
	})
	scalar(compute.OpRapidity, Rapidity[T])
	scalar(compute.OpEt2, Et2[T])
	scalar(compute.OpEt, func(l numeric.Lib[T], sys coords.System, e []T) T {
		return compute.SignedSqrt(l, Et2(l, sys, e))
	})
	scalar(compute.OpMt2, Mt2[T])
	scalar(compute.OpMt, func(l numeric.Lib[T], sys coords.System, e []T) T {
		return compute.SignedSqrt(l, Mt2(l, sys, e))
	})

	compute.RegisterBinary(r, g, compute.OpDot, 0, compute.ScalarPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Sub(l.Mul(Time(l, sa, a), Time(l, sb, b)), spatial.Dot(l, sa, sb, a, b)))
	})
	compute.RegisterBinary(r, g, compute.OpDeltaRapidityPhi2, 0, compute.ScalarPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(DeltaRapidityPhi2(l, sa, sb, a, b))
	})
	compute.RegisterBinary(r, g, compute.OpDeltaRapidityPhi, 0, compute.ScalarPair, func(l numeric.Lib[T], _ []T, sa, sb coords.System, a, b []T) []T {
		return compute.One(l.Sqrt(DeltaRapidityPhi2(l, sa, sb, a, b)))
	})

	compute.RegisterBinary(r, g, compute.OpBoostP4, 0, func(_, _ coords.System) compute.Shape { return xyzt },
		func(l numeric.Lib[T], _ []T, sv, sp coords.System, v, p4 []T) []T {
			p := compute.Decode(l, sp, p4)
			return BoostBeta3(l, compute.Decode(l, sv, v), l.Div(p.X, p.T), l.Div(p.Y, p.T), l.Div(p.Z, p.T))
		})
	for _, sv := range coords.Systems(coords.Dim4) {
		for _, sb := range coords.Systems(coords.Dim3) {
			sv, sb := sv, sb
			r.Register(g, compute.OpBoostBeta3, compute.SignatureOf(sv, sb), 0, xyzt, func(l numeric.Lib[T], args []T) []T {
				a := compute.Split(args, 0, sv, sb)
				b := compute.Decode(l, sb, a.Operands[1])
				return BoostBeta3(l, compute.Decode(l, sv, a.Operands[0]), b.X, b.Y, b.Z)
			})
		}
	}

	axisBoost := func(op string, axis int, fromGamma bool) {
		compute.RegisterUnary(r, g, op, 1, func(coords.System) compute.Shape { return xyzt },
			func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
				beta := p[0]
				if fromGamma {
					beta = BetaFromGamma(l, p[0])
				}
				return BoostAxis(l, compute.Decode(l, sys, e), axis, beta)
			})
	}
	axisBoost(compute.OpBoostXBeta, 0, false)
	axisBoost(compute.OpBoostYBeta, 1, false)
	axisBoost(compute.OpBoostZBeta, 2, false)
	axisBoost(compute.OpBoostXGamma, 0, true)
	axisBoost(compute.OpBoostYGamma, 1, true)
	axisBoost(compute.OpBoostZGamma, 2, true)

	compute.RegisterUnary(r, g, compute.OpTransform4D, 16, func(coords.System) compute.Shape { return xyzt },
		func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
			c := compute.Decode(l, sys, e)
			out := make([]T, 4)
			for i := range out {
				out[i] = numeric.Sum(l, l.Mul(p[4*i], c.X), l.Mul(p[4*i+1], c.Y), l.Mul(p[4*i+2], c.Z), l.Mul(p[4*i+3], c.T))
			}
			return out
		})
	compute.RegisterUnary(r, g, compute.OpToBeta3, 0, func(coords.System) compute.Shape {
		return compute.Vector(coords.XY, coords.Z).AsGeneric()
	}, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		c := compute.Decode(l, sys, e)
		return []T{l.Div(c.X, c.T), l.Div(c.Y, c.T), l.Div(c.Z, c.T)}
	})
	compute.RegisterUnary(r, g, compute.OpUnit, 0, compute.SameUpdate, func(l numeric.Lib[T], _ []T, sys coords.System, e []T) []T {
		tau := l.Abs(Tau(l, sys, e))
		return compute.Scale(l, l.Div(l.Const(1), tau), sys, e)
	})

	compute.RegisterUnary(r, g, compute.OpIsTimelike, 1, compute.BoolShapeOf, func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
		return compute.One(l.Less(p[0], Tau2(l, sys, e)))
	})
	compute.RegisterUnary(r, g, compute.OpIsSpacelike, 1, compute.BoolShapeOf, func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
		return compute.One(l.Less(Tau2(l, sys, e), l.Neg(p[0])))
	})
	compute.RegisterUnary(r, g, compute.OpIsLightlike, 1, compute.BoolShapeOf, func(l numeric.Lib[T], p []T, sys coords.System, e []T) []T {
		return compute.One(l.LessEqual(l.Abs(Tau2(l, sys, e)), p[0]))
	})
}

// Time returns the time component.
func Time[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	if sys.Temporal == coords.T {
		return e[3]
	}
	return compute.TimeFromTau(l, e[3], spatial.Mag2(l, sys, e))
}

// Tau returns the signed proper time.
func Tau[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	if sys.Temporal == coords.Tau {
		return e[3]
	}
	return compute.TauFromTime(l, e[3], spatial.Mag2(l, sys, e))
}

// Tau2 returns t^2 - mag^2.
func Tau2[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	if sys.Temporal == coords.Tau {
		return l.Copysign(numeric.Square(l, e[3]), e[3])
	}
	return l.Sub(numeric.Square(l, e[3]), spatial.Mag2(l, sys, e))
}

// Rapidity returns 0.5*log((t+z)/(t-z)).
func Rapidity[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	t, z := Time(l, sys, e), spatial.Z(l, sys, e)
	return l.Mul(l.Const(0.5), l.Log(l.Div(l.Add(t, z), l.Sub(t, z))))
}

// Et2 returns the squared transverse energy.
func Et2[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	rho2 := numeric.Square(l, planar.Rho(l, sys.Azimuthal, e))
	return l.Div(l.Mul(numeric.Square(l, Time(l, sys, e)), rho2), spatial.Mag2(l, sys, e))
}

// Mt2 returns the squared transverse mass t^2 - z^2.
func Mt2[T any](l numeric.Lib[T], sys coords.System, e []T) T {
	return l.Sub(numeric.Square(l, Time(l, sys, e)), numeric.Square(l, spatial.Z(l, sys, e)))
}

// DeltaRapidityPhi2 returns deltaphi^2 + deltarapidity^2.
func DeltaRapidityPhi2[T any](l numeric.Lib[T], sa, sb coords.System, a, b []T) T {
	dphi := planar.DeltaPhi(l, sa.Azimuthal, sb.Azimuthal, a, b)
	drap := l.Sub(Rapidity(l, sa, a), Rapidity(l, sb, b))
	return l.Add(numeric.Square(l, dphi), numeric.Square(l, drap))
}

// BetaFromGamma returns the signed velocity for a signed gamma factor.
func BetaFromGamma[T any](l numeric.Lib[T], gamma T) T {
	one := l.Const(1)
	return l.Copysign(l.Sqrt(l.Sub(one, l.Div(one, numeric.Square(l, gamma)))), gamma)
}

// BoostAxis boosts v along the x (0), y (1) or z (2) axis.
func BoostAxis[T any](l numeric.Lib[T], v compute.Cartesian[T], axis int, beta T) []T {
	one := l.Const(1)
	gamma := l.Div(one, l.Sqrt(l.Sub(one, numeric.Square(l, beta))))
	comp := [3]T{v.X, v.Y, v.Z}
	p := comp[axis]
	comp[axis] = l.Mul(gamma, l.Add(p, l.Mul(beta, v.T)))
	t := l.Mul(gamma, l.Add(v.T, l.Mul(beta, p)))
	return []T{comp[0], comp[1], comp[2], t}
}

// BoostBeta3 boosts v by the velocity (bx, by, bz).
func BoostBeta3[T any](l numeric.Lib[T], v compute.Cartesian[T], bx, by, bz T) []T {
	one := l.Const(1)
	b2 := numeric.Sum(l, numeric.Square(l, bx), numeric.Square(l, by), numeric.Square(l, bz))
	gamma := l.Div(one, l.Sqrt(l.Sub(one, b2)))
	bp := numeric.Sum(l, l.Mul(bx, v.X), l.Mul(by, v.Y), l.Mul(bz, v.Z))
	gamma2 := l.NanToNum(l.Div(l.Sub(gamma, one), b2))
	k := l.Add(l.Mul(gamma2, bp), l.Mul(gamma, v.T))
	return []T{
		l.Add(v.X, l.Mul(k, bx)),
		l.Add(v.Y, l.Mul(k, by)),
		l.Add(v.Z, l.Mul(k, bz)),
		l.Mul(gamma, l.Add(v.T, bp)),
	}
}
