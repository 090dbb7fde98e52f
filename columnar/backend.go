package columnar

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/kernels"
	"github.com/hupe1980/hepvec/numeric"
	"github.com/hupe1980/hepvec/object"
)

type backend struct{}

var (
	_ dispatch.Backend[numeric.Array]     = backend{}
	_ dispatch.Broadcaster[numeric.Array] = backend{}
)

func init() {
	dispatch.Register[numeric.Array](backend{})
}

func (backend) ID() dispatch.BackendID                     { return dispatch.Columnar }
func (backend) Lib() numeric.Lib[numeric.Array]            { return numeric.Arrays{} }
func (backend) Registry() *compute.Registry[numeric.Array] { return kernels.Array() }
func (backend) Scalar(v numeric.Array) any                 { return v }
func (backend) Bool(v numeric.Array) any                   { return v.Bools() }

func (backend) Broadcast(args []numeric.Array) ([]numeric.Array, error) {
	return numeric.Broadcast(args...)
}

func (backend) NewVector(c dispatch.Class, op dispatch.Operand[numeric.Array]) (dispatch.Vector, error) {
	return assemble(c, op.Groups, op.Extras)
}

func (backend) Bind(op string, vs []dispatch.Vector, params []any) (dispatch.Frame[numeric.Array], error) {
	f := dispatch.Frame[numeric.Array]{
		Operands: make([]dispatch.Operand[numeric.Array], len(vs)),
		Params:   make([]numeric.Array, len(params)),
	}
	for i, v := range vs {
		o, err := Lift(v)
		if err != nil {
			return dispatch.Frame[numeric.Array]{}, err
		}
		f.Operands[i] = o
	}
	for i, p := range params {
		a, ok := Param(p)
		if !ok {
			return dispatch.Frame[numeric.Array]{}, dispatch.InvalidParameter(op, p)
		}
		f.Params[i] = a
	}
	return f, nil
}

// Lift returns the columns of a columnar or object vector. Object
// coordinates become length-one columns.
func Lift(v dispatch.Vector) (dispatch.Operand[numeric.Array], error) {
	if s, ok := v.(source); ok {
		d := s.data()
		return dispatch.Operand[numeric.Array]{Groups: d.groups, Flavor: d.class.Flavor, Extras: d.extras}, nil
	}
	if g, ok := object.Groups(v); ok {
		return dispatch.Operand[numeric.Array]{Groups: coords.Map(g, numeric.Scalar), Flavor: v.Class().Flavor}, nil
	}
	return dispatch.Operand[numeric.Array]{}, dispatch.NewBackendError(dispatch.Columnar, v.Class())
}

// Param converts a number or column to numeric.Array.
func Param(p any) (numeric.Array, bool) {
	switch p := p.(type) {
	case numeric.Array:
		return p, true
	case []float64:
		return numeric.Array(p), true
	default:
		x, ok := object.Param(p)
		if !ok {
			return nil, false
		}
		return numeric.Scalar(x), true
	}
}
