package methods

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
)

// Spatial holds the operations of 3D and 4D vectors.
type Spatial[S, B, P any] struct {
	Planar[S, B, P]
}

// NewSpatial binds the spatial operations to v.
func NewSpatial[S, B, P any](v dispatch.Vector) Spatial[S, B, P] {
	return Spatial[S, B, P]{Planar: NewPlanar[S, B, P](v)}
}

func (p Spatial[S, B, P]) Z() S        { return unary[S](p.self, compute.OpZ) }
func (p Spatial[S, B, P]) Theta() S    { return unary[S](p.self, compute.OpTheta) }
func (p Spatial[S, B, P]) Eta() S      { return unary[S](p.self, compute.OpEta) }
func (p Spatial[S, B, P]) CosTheta() S { return unary[S](p.self, compute.OpCosTheta) }
func (p Spatial[S, B, P]) CotTheta() S { return unary[S](p.self, compute.OpCotTheta) }
func (p Spatial[S, B, P]) Mag() S      { return unary[S](p.self, compute.OpMag) }
func (p Spatial[S, B, P]) Mag2() S     { return unary[S](p.self, compute.OpMag2) }

// Cross returns the 3D cross product.
func (p Spatial[S, B, P]) Cross(o dispatch.Vector) (dispatch.Vector, error) {
	return binary[dispatch.Vector](p.self, o, compute.OpCross)
}

// DeltaAngle returns the 3D opening angle.
func (p Spatial[S, B, P]) DeltaAngle(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDeltaAngle)
}

// DeltaEta returns the pseudorapidity difference.
func (p Spatial[S, B, P]) DeltaEta(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDeltaEta)
}

// DeltaR returns sqrt(deltaphi^2 + deltaeta^2).
func (p Spatial[S, B, P]) DeltaR(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDeltaR)
}

// DeltaR2 returns deltaphi^2 + deltaeta^2.
func (p Spatial[S, B, P]) DeltaR2(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDeltaR2)
}

// RotateX rotates around the x axis.
func (p Spatial[S, B, P]) RotateX(angle P) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpRotateX, angle)
}

// RotateY rotates around the y axis.
func (p Spatial[S, B, P]) RotateY(angle P) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpRotateY, angle)
}

// RotateAxis rotates around axis by angle. The axis does not influence the
// result's flavor.
func (p Spatial[S, B, P]) RotateAxis(axis dispatch.Vector, angle P) (dispatch.Vector, error) {
	return dispatch.Typed[dispatch.Vector](dispatch.Call{
		Op:      compute.OpRotateAxis,
		Vectors: []dispatch.Vector{axis, p.self},
		Params:  []any{angle},
		Origin:  1,
		Footing: 1,
	})
}

// RotateQuaternion rotates by the unit quaternion u + i*I + j*J + k*K.
func (p Spatial[S, B, P]) RotateQuaternion(u, i, j, k P) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpRotateQuaternion, u, i, j, k)
}

// Transform3D applies a 3x3 matrix to the spatial coordinates.
func (p Spatial[S, B, P]) Transform3D(m Matrix3D[P]) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpTransform3D,
		params(m.XX, m.XY, m.XZ, m.YX, m.YY, m.YZ, m.ZX, m.ZY, m.ZZ)...)
}

func (p Spatial[S, B, P]) ToXYZ() dispatch.Vector {
	return p.To(coords.Sys3D(coords.XY, coords.Z))
}

func (p Spatial[S, B, P]) ToXYTheta() dispatch.Vector {
	return p.To(coords.Sys3D(coords.XY, coords.Theta))
}

func (p Spatial[S, B, P]) ToXYEta() dispatch.Vector {
	return p.To(coords.Sys3D(coords.XY, coords.Eta))
}

func (p Spatial[S, B, P]) ToRhoPhiZ() dispatch.Vector {
	return p.To(coords.Sys3D(coords.RhoPhi, coords.Z))
}

func (p Spatial[S, B, P]) ToRhoPhiTheta() dispatch.Vector {
	return p.To(coords.Sys3D(coords.RhoPhi, coords.Theta))
}

func (p Spatial[S, B, P]) ToRhoPhiEta() dispatch.Vector {
	return p.To(coords.Sys3D(coords.RhoPhi, coords.Eta))
}

// Matrix3D is a row-major 3x3 matrix.
type Matrix3D[P any] struct {
	XX, XY, XZ P
	YX, YY, YZ P
	ZX, ZY, ZZ P
}
