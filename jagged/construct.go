package jagged

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/numeric"
)

// ErrInvalidOffsets is returned for offsets that do not start at zero or
// decrease.
var ErrInvalidOffsets = errors.New("jagged: invalid offsets")

// Field is a named jagged field.
type Field = coords.Field[Floats]

// F returns the field name holding one list per event.
func F(name string, lists ...[]float64) Field { return coords.Named(name, Lists(lists...)) }

// FromFields builds jagged vectors from named fields. Coordinate names must
// form one of the allowed combinations; every other field is payload.
// Jagged fields must share offsets; uniform fields broadcast.
func FromFields(fields ...Field) (dispatch.Vector, error) {
	g, err := coords.Gather(fields...)
	if err != nil {
		return nil, err
	}
	flavor := coords.Generic
	if g.Momentum {
		flavor = coords.Momentum
	}
	jagged := 0
	for _, f := range fields {
		if f.Value.Offsets != nil {
			jagged++
			if err := validOffsets(f.Value.Offsets); err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
		}
	}
	if jagged == 0 {
		return nil, fmt.Errorf("no field carries offsets: %w", ErrInvalidOffsets)
	}
	c := dispatch.Class{Backend: dispatch.Jagged, Dimension: g.Groups.Dimension(), Flavor: flavor}
	return assemble(c, g.Groups, g.Extras)
}

// FromFlat builds jagged vectors from flat columns split by offsets.
func FromFlat(offsets []int, fields ...columnar.Field) (dispatch.Vector, error) {
	if err := validOffsets(offsets); err != nil {
		return nil, err
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		v := Floats{Offsets: offsets, Content: f.Value}
		if len(f.Value) == 1 && offsets[len(offsets)-1] != 1 {
			v.Offsets = nil
		}
		out[i] = coords.Named(f.Name, v)
	}
	return FromFields(out...)
}

// Of splits the records of a columnar vector into events by offsets.
// Flavor and payload columns are kept.
func Of(offsets []int, v dispatch.Vector) (dispatch.Vector, error) {
	if _, ok := columnar.Columns(v); !ok {
		return nil, dispatch.NewBackendError(dispatch.Jagged, v.Class())
	}
	if err := validOffsets(offsets); err != nil {
		return nil, err
	}
	o, err := columnar.Lift(v)
	if err != nil {
		return nil, err
	}
	split := func(a numeric.Array) Floats { return Floats{Offsets: offsets, Content: a} }
	extras := make([]Field, len(o.Extras))
	for i, f := range o.Extras {
		extras[i] = coords.Named(f.Name, split(f.Value))
	}
	c := dispatch.Class{Backend: dispatch.Jagged, Dimension: o.Dimension(), Flavor: o.Flavor}
	return assemble(c, coords.Map(o.Groups, split), extras)
}

func validOffsets(offsets []int) error {
	if len(offsets) == 0 || offsets[0] != 0 {
		return ErrInvalidOffsets
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return ErrInvalidOffsets
		}
	}
	return nil
}
