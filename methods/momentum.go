package methods

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/dispatch"
)

// PlanarMomentum adds the momentum names of the planar accessors.
type PlanarMomentum[S any] struct {
	self dispatch.Vector
}

// NewPlanarMomentum binds the planar momentum synonyms to v.
func NewPlanarMomentum[S any](v dispatch.Vector) PlanarMomentum[S] {
	return PlanarMomentum[S]{self: v}
}

func (p PlanarMomentum[S]) Px() S  { return unary[S](p.self, compute.OpX) }
func (p PlanarMomentum[S]) Py() S  { return unary[S](p.self, compute.OpY) }
func (p PlanarMomentum[S]) Pt() S  { return unary[S](p.self, compute.OpRho) }
func (p PlanarMomentum[S]) Pt2() S { return unary[S](p.self, compute.OpRho2) }

// SpatialMomentum adds the momentum names of the spatial accessors.
type SpatialMomentum[S any] struct {
	PlanarMomentum[S]
}

// NewSpatialMomentum binds the spatial momentum synonyms to v.
func NewSpatialMomentum[S any](v dispatch.Vector) SpatialMomentum[S] {
	return SpatialMomentum[S]{PlanarMomentum: NewPlanarMomentum[S](v)}
}

func (p SpatialMomentum[S]) Pz() S { return unary[S](p.self, compute.OpZ) }
func (p SpatialMomentum[S]) P() S  { return unary[S](p.self, compute.OpMag) }
func (p SpatialMomentum[S]) P2() S { return unary[S](p.self, compute.OpMag2) }

// Pseudorapidity is Eta.
func (p SpatialMomentum[S]) Pseudorapidity() S { return unary[S](p.self, compute.OpEta) }

// LorentzMomentum adds the energy and mass names of the Lorentz accessors.
type LorentzMomentum[S any] struct {
	SpatialMomentum[S]
}

// NewLorentzMomentum binds the Lorentz momentum synonyms to v.
func NewLorentzMomentum[S any](v dispatch.Vector) LorentzMomentum[S] {
	return LorentzMomentum[S]{SpatialMomentum: NewSpatialMomentum[S](v)}
}

func (p LorentzMomentum[S]) E() S       { return unary[S](p.self, compute.OpT) }
func (p LorentzMomentum[S]) Energy() S  { return unary[S](p.self, compute.OpT) }
func (p LorentzMomentum[S]) E2() S      { return unary[S](p.self, compute.OpT2) }
func (p LorentzMomentum[S]) Energy2() S { return unary[S](p.self, compute.OpT2) }
func (p LorentzMomentum[S]) M() S       { return unary[S](p.self, compute.OpTau) }
func (p LorentzMomentum[S]) Mass() S    { return unary[S](p.self, compute.OpTau) }
func (p LorentzMomentum[S]) M2() S      { return unary[S](p.self, compute.OpTau2) }
func (p LorentzMomentum[S]) Mass2() S   { return unary[S](p.self, compute.OpTau2) }
