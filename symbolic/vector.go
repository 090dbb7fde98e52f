package symbolic

import (
	"fmt"
	"strings"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/methods"
)

type (
	planar  = methods.Planar[Expr, Expr, any]
	spatial = methods.Spatial[Expr, Expr, any]
	lorentz = methods.Lorentz[Expr, Expr, any]
)

type state struct {
	class  dispatch.Class
	groups coords.Groups[Expr]
}

func (s *state) data() *state { return s }

// Class returns the vector type.
func (s *state) Class() dispatch.Class { return s.class }

// System classifies the stored groups.
func (s *state) System() coords.System { return s.groups.System() }

// Groups returns the stored coordinate expressions.
func (s *state) Groups() coords.Groups[Expr] { return s.groups }

// Symbols returns the names of the free symbols in first-use order.
func (s *state) Symbols() []string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range s.groups.Elements(s.groups.Dimension()) {
		collect(e, seen, &names)
	}
	return names
}

func collect(e Expr, seen map[string]bool, names *[]string) {
	switch e := e.(type) {
	case *Sym:
		if !seen[e.name] {
			seen[e.name] = true
			*names = append(*names, e.name)
		}
	case *Func:
		for _, a := range e.args {
			collect(a, seen, names)
		}
	}
}

func (s *state) String() string {
	sys := s.groups.System()
	names := make([]string, 0, 4)
	for _, k := range sys.Kinds() {
		names = append(names, k.Names()...)
	}
	elems := s.groups.Elements(sys.Dimension())
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = names[i] + "=" + e.String()
	}
	return fmt.Sprintf("%s(%s)", s.class.Name(), strings.Join(parts, ", "))
}

type source interface {
	dispatch.Vector
	data() *state
}

// Vector2D is a generic 2D vector.
type Vector2D struct {
	planar
	state
}

// Momentum2D is a 2D momentum vector.
type Momentum2D struct {
	planar
	methods.PlanarMomentum[Expr]
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
	methods.SpatialMomentum[Expr]
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
	methods.LorentzMomentum[Expr]
	state
}

func build(c dispatch.Class, g coords.Groups[Expr]) dispatch.Vector {
	c.Backend = dispatch.Symbolic
	if !g.System().Valid() || g.Dimension() != c.Dimension {
		panic(coords.Invariantf("%s cannot hold coordinates %s", c, g.System()))
	}
	s := state{class: c, groups: g}
	switch {
	case c.Dimension == coords.Dim2 && !c.IsMomentum():
		v := &Vector2D{state: s}
		v.planar = methods.NewPlanar[Expr, Expr, any](v)
		return v
	case c.Dimension == coords.Dim2:
		v := &Momentum2D{state: s}
		v.planar = methods.NewPlanar[Expr, Expr, any](v)
		v.PlanarMomentum = methods.NewPlanarMomentum[Expr](v)
		return v
	case c.Dimension == coords.Dim3 && !c.IsMomentum():
		v := &Vector3D{state: s}
		v.spatial = methods.NewSpatial[Expr, Expr, any](v)
		return v
	case c.Dimension == coords.Dim3:
		v := &Momentum3D{state: s}
		v.spatial = methods.NewSpatial[Expr, Expr, any](v)
		v.SpatialMomentum = methods.NewSpatialMomentum[Expr](v)
		return v
	case !c.IsMomentum():
		v := &Vector4D{state: s}
		v.lorentz = methods.NewLorentz[Expr, Expr, any](v)
		return v
	default:
		v := &Momentum4D{state: s}
		v.lorentz = methods.NewLorentz[Expr, Expr, any](v)
		v.LorentzMomentum = methods.NewLorentzMomentum[Expr](v)
		return v
	}
}
