package object

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/kernels"
	"github.com/hupe1980/hepvec/numeric"
)

type backend struct{}

var _ dispatch.Backend[float64] = backend{}

func init() {
	dispatch.Register[float64](backend{})
}

func (backend) ID() dispatch.BackendID               { return dispatch.Object }
func (backend) Lib() numeric.Lib[float64]            { return numeric.Float64{} }
func (backend) Registry() *compute.Registry[float64] { return kernels.Float64() }
func (backend) Scalar(v float64) any                 { return v }
func (backend) Bool(v float64) any                   { return v != 0 }

func (backend) NewVector(c dispatch.Class, op dispatch.Operand[float64]) (dispatch.Vector, error) {
	return build(c, op.Groups), nil
}

func (backend) Bind(op string, vs []dispatch.Vector, params []any) (dispatch.Frame[float64], error) {
	f := dispatch.Frame[float64]{
		Operands: make([]dispatch.Operand[float64], len(vs)),
		Params:   make([]float64, len(params)),
	}
	for i, v := range vs {
		s, ok := v.(source)
		if !ok {
			return dispatch.Frame[float64]{}, dispatch.NewBackendError(dispatch.Object, v.Class())
		}
		f.Operands[i] = dispatch.Operand[float64]{Groups: s.data(), Flavor: v.Class().Flavor}
	}
	for i, p := range params {
		x, ok := Param(p)
		if !ok {
			return dispatch.Frame[float64]{}, dispatch.InvalidParameter(op, p)
		}
		f.Params[i] = x
	}
	return f, nil
}

// Param converts a Go number to float64.
func Param(p any) (float64, bool) {
	switch p := p.(type) {
	case float64:
		return p, true
	case float32:
		return float64(p), true
	case int:
		return float64(p), true
	case int64:
		return float64(p), true
	case int32:
		return float64(p), true
	default:
		return 0, false
	}
}
