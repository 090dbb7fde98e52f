package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/methods"
)

type (
	planar  = methods.Planar[float64, bool, float64]
	spatial = methods.Spatial[float64, bool, float64]
	lorentz = methods.Lorentz[float64, bool, float64]
)

// state holds the coordinate groups shared by every object vector type.
type state struct {
	groups coords.Groups[float64]
}

func (s *state) data() coords.Groups[float64] { return s.groups }

// System classifies the stored groups.
func (s *state) System() coords.System { return s.groups.System() }

// Azimuthal returns the stored azimuthal group.
func (s *state) Azimuthal() coords.Azimuthal[float64] { return s.groups.Az }

// Replace overwrites the receiver's coordinates with those of src, which
// must be an object vector of the same dimension. It is the in-place form
// of compound assignment and requires exclusive access to the receiver.
func (s *state) Replace(src dispatch.Vector) error {
	o, ok := src.(source)
	if !ok {
		return dispatch.NewBackendError(dispatch.Object, src.Class())
	}
	g := o.data()
	if g.Dimension() != s.groups.Dimension() {
		return &dispatch.DimensionError{Op: "replace", Dimensions: []coords.Dimension{s.groups.Dimension(), g.Dimension()}}
	}
	s.groups = g
	return nil
}

func (s *state) format(c dispatch.Class) string {
	sys := s.groups.System()
	names := make([]string, 0, 4)
	for _, k := range sys.Kinds() {
		names = append(names, k.Names()...)
	}
	elems := s.groups.Elements(sys.Dimension())
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = names[i] + "=" + strconv.FormatFloat(e, 'g', -1, 64)
	}
	return fmt.Sprintf("%s(%s)", c.Name(), strings.Join(parts, ", "))
}

// source is implemented by every object vector.
type source interface {
	dispatch.Vector
	data() coords.Groups[float64]
}

// Vector2D is a generic 2D vector.
type Vector2D struct {
	planar
	state
}

// Momentum2D is a 2D momentum vector.
type Momentum2D struct {
	planar
	methods.PlanarMomentum[float64]
	state
}

// Vector3D is a generic 3D vector.
type Vector3D struct {
	spatial
	state
}

// Momentum3D is a 3D momentum vector.
type Momentum3D struct {
	spatial
	methods.SpatialMomentum[float64]
	state
}

// Vector4D is a generic 4D vector.
type Vector4D struct {
	lorentz
	state
}

// Momentum4D is a 4D momentum vector.
type Momentum4D struct {
	lorentz
	methods.LorentzMomentum[float64]
	state
}

func class(dim coords.Dimension, f coords.Flavor) dispatch.Class {
	return dispatch.Class{Backend: dispatch.Object, Dimension: dim, Flavor: f}
}

func (v *Vector2D) Class() dispatch.Class   { return class(coords.Dim2, coords.Generic) }
func (v *Momentum2D) Class() dispatch.Class { return class(coords.Dim2, coords.Momentum) }
func (v *Vector3D) Class() dispatch.Class   { return class(coords.Dim3, coords.Generic) }
func (v *Momentum3D) Class() dispatch.Class { return class(coords.Dim3, coords.Momentum) }
func (v *Vector4D) Class() dispatch.Class   { return class(coords.Dim4, coords.Generic) }
func (v *Momentum4D) Class() dispatch.Class { return class(coords.Dim4, coords.Momentum) }

func (v *Vector2D) String() string   { return v.format(v.Class()) }
func (v *Momentum2D) String() string { return v.format(v.Class()) }
func (v *Vector3D) String() string   { return v.format(v.Class()) }
func (v *Momentum3D) String() string { return v.format(v.Class()) }
func (v *Vector4D) String() string   { return v.format(v.Class()) }
func (v *Momentum4D) String() string { return v.format(v.Class()) }

// Longitudinal returns the stored longitudinal group.
func (v *Vector3D) Longitudinal() coords.Longitudinal[float64] { return v.groups.Lon }

// Longitudinal returns the stored longitudinal group.
func (v *Momentum3D) Longitudinal() coords.Longitudinal[float64] { return v.groups.Lon }

// Longitudinal returns the stored longitudinal group.
func (v *Vector4D) Longitudinal() coords.Longitudinal[float64] { return v.groups.Lon }

// Longitudinal returns the stored longitudinal group.
func (v *Momentum4D) Longitudinal() coords.Longitudinal[float64] { return v.groups.Lon }

// Temporal returns the stored temporal group.
func (v *Vector4D) Temporal() coords.Temporal[float64] { return v.groups.Temp }

// Temporal returns the stored temporal group.
func (v *Momentum4D) Temporal() coords.Temporal[float64] { return v.groups.Temp }

// build returns the concrete type of class c holding g. The embedded
// frontends are bound to the returned pointer.
func build(c dispatch.Class, g coords.Groups[float64]) dispatch.Vector {
	if !g.System().Valid() || g.Dimension() != c.Dimension {
		panic(coords.Invariantf("%s cannot hold coordinates %s", c, g.System()))
	}
	s := state{groups: g}
	switch {
	case c.Dimension == coords.Dim2 && !c.IsMomentum():
		v := &Vector2D{state: s}
		v.planar = methods.NewPlanar[float64, bool, float64](v)
		return v
	case c.Dimension == coords.Dim2:
		v := &Momentum2D{state: s}
		v.planar = methods.NewPlanar[float64, bool, float64](v)
		v.PlanarMomentum = methods.NewPlanarMomentum[float64](v)
		return v
	case c.Dimension == coords.Dim3 && !c.IsMomentum():
		v := &Vector3D{state: s}
		v.spatial = methods.NewSpatial[float64, bool, float64](v)
		return v
	case c.Dimension == coords.Dim3:
		v := &Momentum3D{state: s}
		v.spatial = methods.NewSpatial[float64, bool, float64](v)
		v.SpatialMomentum = methods.NewSpatialMomentum[float64](v)
		return v
	case !c.IsMomentum():
		v := &Vector4D{state: s}
		v.lorentz = methods.NewLorentz[float64, bool, float64](v)
		return v
	default:
		v := &Momentum4D{state: s}
		v.lorentz = methods.NewLorentz[float64, bool, float64](v)
		v.LorentzMomentum = methods.NewLorentzMomentum[float64](v)
		return v
	}
}
