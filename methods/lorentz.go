package methods

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
)

// Lorentz holds the operations of 4D vectors.
type Lorentz[S, B, P any] struct {
	Spatial[S, B, P]
}

// NewLorentz binds the Lorentz operations to v.
func NewLorentz[S, B, P any](v dispatch.Vector) Lorentz[S, B, P] {
	return Lorentz[S, B, P]{Spatial: NewSpatial[S, B, P](v)}
}

func (p Lorentz[S, B, P]) T() S        { return unary[S](p.self, compute.OpT) }
func (p Lorentz[S, B, P]) T2() S       { return unary[S](p.self, compute.OpT2) }
func (p Lorentz[S, B, P]) Tau() S      { return unary[S](p.self, compute.OpTau) }
func (p Lorentz[S, B, P]) Tau2() S     { return unary[S](p.self, compute.OpTau2) }
func (p Lorentz[S, B, P]) Beta() S     { return unary[S](p.self, compute.OpBeta) }
func (p Lorentz[S, B, P]) Gamma() S    { return unary[S](p.self, compute.OpGamma) }
func (p Lorentz[S, B, P]) Rapidity() S { return unary[S](p.self, compute.OpRapidity) }
func (p Lorentz[S, B, P]) Et() S       { return unary[S](p.self, compute.OpEt) }
func (p Lorentz[S, B, P]) Et2() S      { return unary[S](p.self, compute.OpEt2) }
func (p Lorentz[S, B, P]) Mt() S       { return unary[S](p.self, compute.OpMt) }
func (p Lorentz[S, B, P]) Mt2() S      { return unary[S](p.self, compute.OpMt2) }

// DeltaRapidityPhi returns sqrt(deltaphi^2 + deltarapidity^2).
func (p Lorentz[S, B, P]) DeltaRapidityPhi(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDeltaRapidityPhi)
}

// DeltaRapidityPhi2 returns deltaphi^2 + deltarapidity^2.
func (p Lorentz[S, B, P]) DeltaRapidityPhi2(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDeltaRapidityPhi2)
}

// BoostP4 boosts into the rest frame of p4 reversed, i.e. by p4's velocity.
func (p Lorentz[S, B, P]) BoostP4(p4 dispatch.Vector) (dispatch.Vector, error) {
	return dispatch.Typed[dispatch.Vector](dispatch.Call{
		Op:      compute.OpBoostP4,
		Group:   compute.Lorentz,
		Vectors: []dispatch.Vector{p.self, p4},
		Footing: 1,
	})
}

// BoostBeta3 boosts by the velocity vector beta3.
func (p Lorentz[S, B, P]) BoostBeta3(beta3 dispatch.Vector) (dispatch.Vector, error) {
	return dispatch.Typed[dispatch.Vector](dispatch.Call{
		Op:      compute.OpBoostBeta3,
		Group:   compute.Lorentz,
		Vectors: []dispatch.Vector{p.self, beta3},
		Footing: 1,
	})
}

// Boost boosts by a 3D velocity or by the velocity of a 4D vector.
func (p Lorentz[S, B, P]) Boost(booster dispatch.Vector) (dispatch.Vector, error) {
	switch booster.System().Dimension() {
	case coords.Dim3:
		return p.BoostBeta3(booster)
	case coords.Dim4:
		return p.BoostP4(booster)
	default:
		return nil, dispatch.MissingParameter("boost", "specify a 3D velocity or a 4D momentum to boost by")
	}
}

// BoostX boosts along x by exactly one of Beta or Gamma.
func (p Lorentz[S, B, P]) BoostX(opts ...BoostOption[P]) (dispatch.Vector, error) {
	return p.boostAxis(compute.OpBoostXBeta, compute.OpBoostXGamma, "boostX", opts)
}

// BoostY boosts along y by exactly one of Beta or Gamma.
func (p Lorentz[S, B, P]) BoostY(opts ...BoostOption[P]) (dispatch.Vector, error) {
	return p.boostAxis(compute.OpBoostYBeta, compute.OpBoostYGamma, "boostY", opts)
}

// BoostZ boosts along z by exactly one of Beta or Gamma.
func (p Lorentz[S, B, P]) BoostZ(opts ...BoostOption[P]) (dispatch.Vector, error) {
	return p.boostAxis(compute.OpBoostZBeta, compute.OpBoostZGamma, "boostZ", opts)
}

func (p Lorentz[S, B, P]) boostAxis(betaOp, gammaOp, name string, opts []BoostOption[P]) (dispatch.Vector, error) {
	var o boostOptions[P]
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.beta != nil && o.gamma != nil:
		return nil, coords.Ambiguousf("%s: specify beta= or gamma=, not both", name)
	case o.beta != nil:
		return apply[dispatch.Vector](p.self, betaOp, *o.beta)
	case o.gamma != nil:
		return apply[dispatch.Vector](p.self, gammaOp, *o.gamma)
	default:
		return nil, dispatch.MissingParameter(name, "specify beta= or gamma=")
	}
}

// Transform4D applies a 4x4 matrix to (x, y, z, t).
func (p Lorentz[S, B, P]) Transform4D(m Matrix4D[P]) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpTransform4D, params(
		m.XX, m.XY, m.XZ, m.XT,
		m.YX, m.YY, m.YZ, m.YT,
		m.ZX, m.ZY, m.ZZ, m.ZT,
		m.TX, m.TY, m.TZ, m.TT)...)
}

// ToBeta3 returns the velocity 3-vector. The result is always generic.
func (p Lorentz[S, B, P]) ToBeta3() dispatch.Vector {
	return unary[dispatch.Vector](p.self, compute.OpToBeta3)
}

// IsTimelike reports tau2 > tol.
func (p Lorentz[S, B, P]) IsTimelike(tol P) (B, error) {
	return apply[B](p.self, compute.OpIsTimelike, tol)
}

// IsSpacelike reports tau2 < -tol.
func (p Lorentz[S, B, P]) IsSpacelike(tol P) (B, error) {
	return apply[B](p.self, compute.OpIsSpacelike, tol)
}

// IsLightlike reports |tau2| <= tol.
func (p Lorentz[S, B, P]) IsLightlike(tol P) (B, error) {
	return apply[B](p.self, compute.OpIsLightlike, tol)
}

func (p Lorentz[S, B, P]) ToXYZT() dispatch.Vector {
	return p.To(coords.Sys4D(coords.XY, coords.Z, coords.T))
}

func (p Lorentz[S, B, P]) ToXYZTau() dispatch.Vector {
	return p.To(coords.Sys4D(coords.XY, coords.Z, coords.Tau))
}

func (p Lorentz[S, B, P]) ToXYThetaT() dispatch.Vector {
	return p.To(coords.Sys4D(coords.XY, coords.Theta, coords.T))
}

func (p Lorentz[S, B, P]) ToXYThetaTau() dispatch.Vector {
	return p.To(coords.Sys4D(coords.XY, coords.Theta, coords.Tau))
}

func (p Lorentz[S, B, P]) ToXYEtaT() dispatch.Vector {
	return p.To(coords.Sys4D(coords.XY, coords.Eta, coords.T))
}

func (p Lorentz[S, B, P]) ToXYEtaTau() dispatch.Vector {
	return p.To(coords.Sys4D(coords.XY, coords.Eta, coords.Tau))
}

func (p Lorentz[S, B, P]) ToRhoPhiZT() dispatch.Vector {
	return p.To(coords.Sys4D(coords.RhoPhi, coords.Z, coords.T))
}

func (p Lorentz[S, B, P]) ToRhoPhiZTau() dispatch.Vector {
	return p.To(coords.Sys4D(coords.RhoPhi, coords.Z, coords.Tau))
}

func (p Lorentz[S, B, P]) ToRhoPhiThetaT() dispatch.Vector {
	return p.To(coords.Sys4D(coords.RhoPhi, coords.Theta, coords.T))
}

func (p Lorentz[S, B, P]) ToRhoPhiThetaTau() dispatch.Vector {
	return p.To(coords.Sys4D(coords.RhoPhi, coords.Theta, coords.Tau))
}

func (p Lorentz[S, B, P]) ToRhoPhiEtaT() dispatch.Vector {
	return p.To(coords.Sys4D(coords.RhoPhi, coords.Eta, coords.T))
}

func (p Lorentz[S, B, P]) ToRhoPhiEtaTau() dispatch.Vector {
	return p.To(coords.Sys4D(coords.RhoPhi, coords.Eta, coords.Tau))
}

// BoostOption selects the boost magnitude of BoostX, BoostY and BoostZ.
type BoostOption[P any] func(*boostOptions[P])

type boostOptions[P any] struct {
	beta  *P
	gamma *P
}

// Beta boosts by velocity beta.
func Beta[P any](beta P) BoostOption[P] {
	return func(o *boostOptions[P]) { o.beta = &beta }
}

// Gamma boosts by Lorentz factor gamma. A negative gamma boosts backwards.
func Gamma[P any](gamma P) BoostOption[P] {
	return func(o *boostOptions[P]) { o.gamma = &gamma }
}

// Matrix4D is a row-major 4x4 matrix over (x, y, z, t).
type Matrix4D[P any] struct {
	XX, XY, XZ, XT P
	YX, YY, YZ, YT P
	ZX, ZY, ZZ, ZT P
	TX, TY, TZ, TT P
}
