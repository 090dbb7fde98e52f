package symbolic

import (
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/object"
)

// Field is one named coordinate expression.
type Field = coords.Field[Expr]

// F returns the field name=e.
func F(name string, e Expr) Field { return coords.Named(name, e) }

// FromFields builds a vector from named coordinate expressions. Names must
// form one of the allowed combinations; symbolic vectors carry no payload
// fields.
func FromFields(fields ...Field) (dispatch.Vector, error) {
	g, err := coords.Gather(fields...)
	if err != nil {
		return nil, err
	}
	if len(g.Extras) > 0 {
		return nil, coords.Unrecognizedf("symbolic vectors have no payload field %q", g.Extras[0].Name)
	}
	flavor := coords.Generic
	if g.Momentum {
		flavor = coords.Momentum
	}
	c := dispatch.Class{Backend: dispatch.Symbolic, Dimension: g.Groups.Dimension(), Flavor: flavor}
	return build(c, g.Groups), nil
}

// Symbols builds a vector whose coordinates are the symbols named like
// the coordinates themselves, e.g. Symbols("px", "py", "pz") is the
// momentum vector (px, py, pz).
func Symbols(names ...string) (dispatch.Vector, error) {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = F(name, S(name))
	}
	return FromFields(fields...)
}

// New builds a vector of the given flavor from groups.
func New(flavor coords.Flavor, g coords.Groups[Expr]) (dispatch.Vector, error) {
	if !g.System().Valid() {
		return nil, coords.Unrecognizedf("incomplete coordinate groups %s", g.System())
	}
	return build(dispatch.Class{Backend: dispatch.Symbolic, Dimension: g.Dimension(), Flavor: flavor}, g), nil
}

// Eval substitutes env into every coordinate of v and returns the object
// vector of the same class.
func Eval(v dispatch.Vector, env map[string]float64) (dispatch.Vector, error) {
	s, ok := v.(source)
	if !ok {
		return nil, dispatch.NewBackendError(dispatch.Symbolic, v.Class())
	}
	g := s.data().groups
	sys := g.System()
	elems := g.Elements(sys.Dimension())
	vals := make([]float64, len(elems))
	for i, e := range elems {
		x, err := e.Eval(env)
		if err != nil {
			return nil, err
		}
		vals[i] = x
	}
	return object.New(v.Class().Flavor, coords.FromElements(sys, vals))
}
