package symbolic

import (
	"github.com/hupe1980/hepvec/compute"
	"github.com/hupe1980/hepvec/dispatch"
	"github.com/hupe1980/hepvec/kernels"
	"github.com/hupe1980/hepvec/numeric"
)

type backend struct{}

var _ dispatch.Backend[Expr] = backend{}

var registry *compute.Registry[Expr]

func init() {
	registry = kernels.Build[Expr]()
	dispatch.Register[Expr](backend{})
}

func (backend) ID() dispatch.BackendID            { return dispatch.Symbolic }
func (backend) Lib() numeric.Lib[Expr]            { return Lib{} }
func (backend) Registry() *compute.Registry[Expr] { return registry }
func (backend) Scalar(v Expr) any                 { return v }
func (backend) Bool(v Expr) any                   { return v }

func (backend) NewVector(c dispatch.Class, op dispatch.Operand[Expr]) (dispatch.Vector, error) {
	return build(c, op.Groups), nil
}

func (backend) Bind(op string, vs []dispatch.Vector, params []any) (dispatch.Frame[Expr], error) {
	f := dispatch.Frame[Expr]{
		Operands: make([]dispatch.Operand[Expr], len(vs)),
		Params:   make([]Expr, len(params)),
	}
	for i, v := range vs {
		s, ok := v.(source)
		if !ok {
			return dispatch.Frame[Expr]{}, dispatch.NewBackendError(dispatch.Symbolic, v.Class())
		}
		f.Operands[i] = dispatch.Operand[Expr]{Groups: s.data().groups, Flavor: v.Class().Flavor}
	}
	for i, p := range params {
		e, ok := Param(p)
		if !ok {
			return dispatch.Frame[Expr]{}, dispatch.InvalidParameter(op, p)
		}
		f.Params[i] = e
	}
	return f, nil
}

// Param converts an expression, a symbol name or a Go number to an Expr.
func Param(p any) (Expr, bool) {
	switch p := p.(type) {
	case Expr:
		return p, true
	case string:
		return S(p), true
	case float64:
		return N(p), true
	case float32:
		return N(float64(p)), true
	case int:
		return N(float64(p)), true
	case int64:
		return N(float64(p)), true
	case int32:
		return N(float64(p)), true
	default:
		return nil, false
	}
}
