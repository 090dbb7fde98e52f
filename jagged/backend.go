package jagged

import (
	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/kernels"
	"github.com/hupe1980/hepvec/numeric"
	"github.com/hupe1980/hepvec/object"
)

type backend struct{}

var _ dispatch.Backend[Floats] = backend{}

var registry *compute.Registry[Floats]

// init builds the Floats kernels and installs the backend.
// No mutex needed: Go guarantees init() runs before any other code.
func init() {
	registry = kernels.Build[Floats]()
	dispatch.Register[Floats](backend{})
}

func (backend) ID() dispatch.BackendID              { return dispatch.Jagged }
func (backend) Lib() numeric.Lib[Floats]            { return Lib{} }
func (backend) Registry() *compute.Registry[Floats] { return registry }
func (backend) Scalar(v Floats) any                 { return v }

func (backend) Bool(v Floats) any {
	return Bools{Offsets: v.Offsets, Content: v.Content.Bools()}
}

func (backend) NewVector(c dispatch.Class, op dispatch.Operand[Floats]) (dispatch.Vector, error) {
	return assemble(c, op.Groups, op.Extras)
}

func (backend) Bind(op string, vs []dispatch.Vector, params []any) (dispatch.Frame[Floats], error) {
	var offsets []int
	for _, v := range vs {
		s, ok := v.(source)
		if !ok {
			continue
		}
		d := s.data()
		if offsets == nil {
			offsets = d.offsets
			continue
		}
		if !sameOffsets(offsets, d.offsets) {
			return dispatch.Frame[Floats]{}, &numeric.ShapeError{Lengths: []int{len(offsets) - 1, len(d.offsets) - 1}}
		}
	}
	if offsets == nil {
		return dispatch.Frame[Floats]{}, dispatch.NewBackendError(dispatch.Jagged, vs[0].Class())
	}

	f := dispatch.Frame[Floats]{
		Operands: make([]dispatch.Operand[Floats], len(vs)),
		Params:   make([]Floats, len(params)),
	}
	for i, v := range vs {
		if s, ok := v.(source); ok {
			d := s.data()
			f.Operands[i] = dispatch.Operand[Floats]{Groups: d.groups, Flavor: d.class.Flavor, Extras: d.extras}
			continue
		}
		o, err := columnar.Lift(v)
		if err != nil {
			return dispatch.Frame[Floats]{}, dispatch.NewBackendError(dispatch.Jagged, v.Class())
		}
		if f.Operands[i], err = perEventOperand(offsets, o); err != nil {
			return dispatch.Frame[Floats]{}, err
		}
	}
	for i, p := range params {
		x, err := param(op, offsets, p)
		if err != nil {
			return dispatch.Frame[Floats]{}, err
		}
		f.Params[i] = x
	}
	return f, nil
}

func param(op string, offsets []int, p any) (Floats, error) {
	switch p := p.(type) {
	case Floats:
		return p, nil
	case numeric.Array:
		return perEvent(offsets, p)
	default:
		x, ok := object.Param(p)
		if !ok {
			return Floats{}, dispatch.InvalidParameter(op, p)
		}
		return Uniform(x), nil
	}
}

// perEvent repeats col[i] for every record of event i. Length-one columns
// stay uniform.
func perEvent(offsets []int, col numeric.Array) (Floats, error) {
	if len(col) == 1 {
		return Floats{Content: col}, nil
	}
	events := len(offsets) - 1
	if len(col) != events {
		return Floats{}, &numeric.ShapeError{Lengths: []int{events, len(col)}}
	}
	out := make(numeric.Array, offsets[events])
	for i := 0; i < events; i++ {
		for j := offsets[i]; j < offsets[i+1]; j++ {
			out[j] = col[i]
		}
	}
	return Floats{Offsets: offsets, Content: out}, nil
}

func perEventOperand(offsets []int, o dispatch.Operand[numeric.Array]) (dispatch.Operand[Floats], error) {
	var err error
	lift := func(a numeric.Array) Floats {
		f, e := perEvent(offsets, a)
		if e != nil && err == nil {
			err = e
		}
		return f
	}
	out := dispatch.Operand[Floats]{Groups: coords.Map(o.Groups, lift), Flavor: o.Flavor}
	for _, x := range o.Extras {
		out.Extras = append(out.Extras, coords.Named(x.Name, lift(x.Value)))
	}
	return out, err
}
