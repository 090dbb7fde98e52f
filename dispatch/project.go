package dispatch

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
)

// Override supplies the value of a coordinate group that a projection to a
// higher dimension introduces.
type Override struct {
	Kind  coords.Kind
	Value any
}

// WithZ sets the longitudinal group to z.
func WithZ(v any) Override { return Override{Kind: coords.Z, Value: v} }

// WithTheta sets the longitudinal group to theta.
func WithTheta(v any) Override { return Override{Kind: coords.Theta, Value: v} }

// WithEta sets the longitudinal group to eta.
func WithEta(v any) Override { return Override{Kind: coords.Eta, Value: v} }

// WithT sets the temporal group to t.
func WithT(v any) Override { return Override{Kind: coords.T, Value: v} }

// WithTau sets the temporal group to tau.
func WithTau(v any) Override { return Override{Kind: coords.Tau, Value: v} }

// Project returns v as a vector of dimension dim on v's own backend.
// Dropping dimensions discards the higher groups. Added groups take their
// values from overrides and default to z=0 and t=0. An override for a group
// that v already has, or that dim does not include, fails with
// coords.ErrUnrecognizedCoordinates. Flavor and extras are preserved.
func Project(v Vector, dim coords.Dimension, overrides ...Override) (Vector, error) {
	if dim < coords.Dim2 || dim > coords.Dim4 {
		panic(coords.Invariantf("cannot project to dimension %d", uint8(dim)))
	}
	sys := v.System()
	var lon, temp []string
	for _, o := range overrides {
		var have coords.Kind
		var need coords.Dimension
		switch o.Kind.Group() {
		case coords.GroupLongitudinal:
			lon = append(lon, o.Kind.String())
			have, need = sys.Longitudinal, coords.Dim3
		case coords.GroupTemporal:
			temp = append(temp, o.Kind.String())
			have, need = sys.Temporal, coords.Dim4
		default:
			panic(coords.Invariantf("cannot override %s coordinates in a projection", o.Kind))
		}
		if have != coords.None {
			return nil, coords.Unrecognizedf("cannot set %s: the vector already has %s", o.Kind, have)
		}
		if dim < need {
			return nil, coords.Unrecognizedf("cannot set %s when projecting to %dD", o.Kind, uint8(dim))
		}
	}
	if len(lon) > 1 {
		return nil, coords.Ambiguousf("specify z= or theta= or eta=, not more than one of them: got %v", lon)
	}
	if len(temp) > 1 {
		return nil, coords.Ambiguousf("specify t= or tau=, not both: got %v", temp)
	}
	return handlerFor(v.Class().Backend).project(v, dim, overrides)
}

func project[E any](b Backend[E], v Vector, dim coords.Dimension, overrides []Override) (Vector, error) {
	values := make([]any, len(overrides))
	for i, o := range overrides {
		values[i] = o.Value
	}
	frame, err := b.Bind("project", []Vector{v}, values)
	if err != nil {
		return nil, err
	}
	op := frame.Operands[0]
	groups := op.Groups.Truncate(dim)

	if dim >= coords.Dim3 && groups.Lon == nil {
		groups.Lon = coords.MakeLongitudinal(coords.Z, []E{b.Lib().Const(0)})
		for i, o := range overrides {
			if o.Kind.Group() == coords.GroupLongitudinal {
				groups.Lon = coords.MakeLongitudinal(o.Kind, frame.Params[i:i+1])
			}
		}
	}
	if dim == coords.Dim4 && groups.Temp == nil {
		groups.Temp = coords.MakeTemporal(coords.T, []E{b.Lib().Const(0)})
		for i, o := range overrides {
			if o.Kind.Group() == coords.GroupTemporal {
				groups.Temp = coords.MakeTemporal(o.Kind, frame.Params[i:i+1])
			}
		}
	}

	class := v.Class().Projection(dim)
	return b.NewVector(class, Operand[E]{Groups: groups, Flavor: class.Flavor, Extras: op.Extras})
}

// Convert returns v re-expressed in the target coordinate system, projecting
// first when the dimensions differ.
func Convert(v Vector, target coords.System) (Vector, error) {
	if !target.Valid() {
		panic(coords.Invariantf("cannot convert to invalid system %s", target))
	}
	dim := target.Dimension()
	if v.System().Dimension() != dim {
		var err error
		if v, err = Project(v, dim); err != nil {
			return nil, err
		}
	}
	return Typed[Vector](Call{
		Op:      compute.ConvertOp(target),
		Group:   compute.GroupFor(dim),
		Vectors: []Vector{v},
	})
}
