package methods

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
)

// Planar holds the operations of every vector.
type Planar[S, B, P any] struct {
	self dispatch.Vector
}

// NewPlanar binds the planar operations to v.
func NewPlanar[S, B, P any](v dispatch.Vector) Planar[S, B, P] {
	return Planar[S, B, P]{self: v}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// unary serves accessors whose arguments are fixed by this package.
func unary[T any](self dispatch.Vector, op string, params ...any) T {
	return must(apply[T](self, op, params...))
}

// apply dispatches a one-operand call with caller-supplied parameters.
func apply[T any](self dispatch.Vector, op string, params ...any) (T, error) {
	return dispatch.Typed[T](dispatch.Call{Op: op, Vectors: []dispatch.Vector{self}, Params: params})
}

func binary[T any](self, other dispatch.Vector, op string, params ...any) (T, error) {
	return dispatch.Typed[T](dispatch.Call{Op: op, Vectors: []dispatch.Vector{self, other}, Params: params})
}

func params[P any](ps ...P) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = p
	}
	return out
}

// X returns the Cartesian x coordinate.
func (p Planar[S, B, P]) X() S { return unary[S](p.self, compute.OpX) }

// Y returns the Cartesian y coordinate.
func (p Planar[S, B, P]) Y() S { return unary[S](p.self, compute.OpY) }

// Rho returns the transverse magnitude.
func (p Planar[S, B, P]) Rho() S { return unary[S](p.self, compute.OpRho) }

// Rho2 returns the squared transverse magnitude.
func (p Planar[S, B, P]) Rho2() S { return unary[S](p.self, compute.OpRho2) }

// Phi returns the azimuthal angle: the stored phi of a rho-phi vector, or
// atan2(y, x). Rotations and DeltaPhi rectify angles into [-pi, pi).
func (p Planar[S, B, P]) Phi() S { return unary[S](p.self, compute.OpPhi) }

// RotateZ rotates the vector around the z axis by angle.
func (p Planar[S, B, P]) RotateZ(angle P) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpRotateZ, angle)
}

// Transform2D applies a 2x2 matrix to the azimuthal coordinates.
func (p Planar[S, B, P]) Transform2D(m Matrix2D[P]) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpTransform2D, params(m.XX, m.XY, m.YX, m.YY)...)
}

// Unit returns the vector scaled to unit length.
func (p Planar[S, B, P]) Unit() dispatch.Vector {
	return unary[dispatch.Vector](p.self, compute.OpUnit)
}

// Scale multiplies every Cartesian component by f.
func (p Planar[S, B, P]) Scale(f P) (dispatch.Vector, error) {
	return apply[dispatch.Vector](p.self, compute.OpScale, f)
}

// Negate reverses the vector.
func (p Planar[S, B, P]) Negate() dispatch.Vector {
	return unary[dispatch.Vector](p.self, compute.OpScale, -1.0)
}

// Add returns the sum of both vectors in the lower of their dimensions.
func (p Planar[S, B, P]) Add(o dispatch.Vector) (dispatch.Vector, error) {
	return binary[dispatch.Vector](p.self, o, compute.OpAdd)
}

// Subtract returns the difference of both vectors.
func (p Planar[S, B, P]) Subtract(o dispatch.Vector) (dispatch.Vector, error) {
	return binary[dispatch.Vector](p.self, o, compute.OpSubtract)
}

// Dot returns the scalar product. For two 4D vectors it is the Minkowski
// product.
func (p Planar[S, B, P]) Dot(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDot)
}

// DeltaPhi returns the signed azimuthal angle from o to the vector.
func (p Planar[S, B, P]) DeltaPhi(o dispatch.Vector) (S, error) {
	return binary[S](p.self, o, compute.OpDeltaPhi)
}

// Equal compares every component exactly. Vectors of different dimension
// are an error.
func (p Planar[S, B, P]) Equal(o dispatch.Vector) (B, error) {
	return binary[B](p.self, o, compute.OpEqual)
}

// NotEqual is the negation of Equal.
func (p Planar[S, B, P]) NotEqual(o dispatch.Vector) (B, error) {
	return binary[B](p.self, o, compute.OpNotEqual)
}

// IsClose compares every component within |a-b| <= atol + rtol*|b|.
// NaN never compares close.
func (p Planar[S, B, P]) IsClose(o dispatch.Vector, rtol, atol P) (B, error) {
	return binary[B](p.self, o, compute.OpIsClose, rtol, atol)
}

// IsParallel reports whether the angle cosine exceeds 1-tol.
func (p Planar[S, B, P]) IsParallel(o dispatch.Vector, tol P) (B, error) {
	return binary[B](p.self, o, compute.OpIsParallel, tol)
}

// IsAntiparallel reports whether the angle cosine is below tol-1.
func (p Planar[S, B, P]) IsAntiparallel(o dispatch.Vector, tol P) (B, error) {
	return binary[B](p.self, o, compute.OpIsAntiparallel, tol)
}

// IsPerpendicular reports whether the angle cosine is within tol of zero.
func (p Planar[S, B, P]) IsPerpendicular(o dispatch.Vector, tol P) (B, error) {
	return binary[B](p.self, o, compute.OpIsPerpendicular, tol)
}

// ToVector2D drops every group but the azimuthal one.
func (p Planar[S, B, P]) ToVector2D() dispatch.Vector {
	return must(dispatch.Project(p.self, coords.Dim2))
}

// ToVector3D projects to 3D. A missing longitudinal group takes its value
// from at most one of WithZ, WithTheta or WithEta and defaults to z=0.
func (p Planar[S, B, P]) ToVector3D(overrides ...dispatch.Override) (dispatch.Vector, error) {
	return dispatch.Project(p.self, coords.Dim3, overrides...)
}

// ToVector4D projects to 4D. Missing groups default to z=0 and t=0.
func (p Planar[S, B, P]) ToVector4D(overrides ...dispatch.Override) (dispatch.Vector, error) {
	return dispatch.Project(p.self, coords.Dim4, overrides...)
}

// To re-expresses the vector in sys, projecting when the dimension differs.
func (p Planar[S, B, P]) To(sys coords.System) dispatch.Vector {
	return must(dispatch.Convert(p.self, sys))
}

// ToXY converts to 2D Cartesian coordinates.
func (p Planar[S, B, P]) ToXY() dispatch.Vector { return p.To(coords.Sys2D(coords.XY)) }

// ToRhoPhi converts to 2D polar coordinates.
func (p Planar[S, B, P]) ToRhoPhi() dispatch.Vector { return p.To(coords.Sys2D(coords.RhoPhi)) }

// Matrix2D is a row-major 2x2 matrix.
type Matrix2D[P any] struct {
	XX, XY P
	YX, YY P
}
