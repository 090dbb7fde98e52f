package symbolic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/hepvec/numeric"
)

// ErrUnboundSymbol is returned by Eval for a symbol missing from the
// environment.
var ErrUnboundSymbol = errors.New("symbolic: unbound symbol")

// Expr is a node of an expression tree. Trees are immutable.
type Expr interface {
	String() string
	// Eval computes the value with every symbol taken from env.
	Eval(env map[string]float64) (float64, error)
	// Equal reports structural equality.
	Equal(other Expr) bool
	exprType() string
}

// Num is a numeric constant.
type Num struct{ val float64 }

// N returns the constant v.
func N(v float64) *Num { return &Num{val: v} }

func (n *Num) Value() float64                           { return n.val }
func (n *Num) String() string                           { return strconv.FormatFloat(n.val, 'g', -1, 64) }
func (n *Num) Eval(map[string]float64) (float64, error) { return n.val, nil }
func (n *Num) exprType() string                         { return "num" }

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && (n.val == o.val || (n.val != n.val && o.val != o.val))
}

// Sym is a named variable.
type Sym struct{ name string }

// S returns the symbol name.
func S(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Name() string     { return s.name }
func (s *Sym) String() string   { return s.name }
func (s *Sym) exprType() string { return "sym" }

func (s *Sym) Eval(env map[string]float64) (float64, error) {
	v, ok := env[s.name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnboundSymbol, s.name)
	}
	return v, nil
}

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

// Func applies a named primitive to its arguments.
type Func struct {
	name string
	args []Expr
}

func (f *Func) Name() string     { return f.name }
func (f *Func) Args() []Expr     { return append([]Expr(nil), f.args...) }
func (f *Func) exprType() string { return "func" }

var infix = map[string]string{
	"add": "+", "sub": "-", "mul": "*", "div": "/",
	"less": "<", "less_equal": "<=", "equal": "==", "and": "&", "or": "|",
}

func (f *Func) String() string {
	if op, ok := infix[f.name]; ok {
		return "(" + f.args[0].String() + " " + op + " " + f.args[1].String() + ")"
	}
	if f.name == "neg" {
		return "-" + f.args[0].String()
	}
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Func) Eval(env map[string]float64) (float64, error) {
	vals := make([]float64, len(f.args))
	for i, a := range f.args {
		v, err := a.Eval(env)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}
	return primitives[f.name](vals), nil
}

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	if !ok || o.name != f.name || len(o.args) != len(f.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

var f64 numeric.Float64

// primitives evaluates every function name on float64.
var primitives = map[string]func(a []float64) float64{
	"add":        func(a []float64) float64 { return f64.Add(a[0], a[1]) },
	"sub":        func(a []float64) float64 { return f64.Sub(a[0], a[1]) },
	"mul":        func(a []float64) float64 { return f64.Mul(a[0], a[1]) },
	"div":        func(a []float64) float64 { return f64.Div(a[0], a[1]) },
	"neg":        func(a []float64) float64 { return f64.Neg(a[0]) },
	"abs":        func(a []float64) float64 { return f64.Abs(a[0]) },
	"sqrt":       func(a []float64) float64 { return f64.Sqrt(a[0]) },
	"sin":        func(a []float64) float64 { return f64.Sin(a[0]) },
	"cos":        func(a []float64) float64 { return f64.Cos(a[0]) },
	"tan":        func(a []float64) float64 { return f64.Tan(a[0]) },
	"acos":       func(a []float64) float64 { return f64.Arccos(a[0]) },
	"atan":       func(a []float64) float64 { return f64.Arctan(a[0]) },
	"atan2":      func(a []float64) float64 { return f64.Atan2(a[0], a[1]) },
	"exp":        func(a []float64) float64 { return f64.Exp(a[0]) },
	"log":        func(a []float64) float64 { return f64.Log(a[0]) },
	"sinh":       func(a []float64) float64 { return f64.Sinh(a[0]) },
	"cosh":       func(a []float64) float64 { return f64.Cosh(a[0]) },
	"asinh":      func(a []float64) float64 { return f64.Arcsinh(a[0]) },
	"copysign":   func(a []float64) float64 { return f64.Copysign(a[0], a[1]) },
	"mod":        func(a []float64) float64 { return f64.Mod(a[0], a[1]) },
	"max":        func(a []float64) float64 { return f64.Maximum(a[0], a[1]) },
	"nan_to_num": func(a []float64) float64 { return f64.NanToNum(a[0]) },
	"less":       func(a []float64) float64 { return f64.Less(a[0], a[1]) },
	"less_equal": func(a []float64) float64 { return f64.LessEqual(a[0], a[1]) },
	"equal":      func(a []float64) float64 { return f64.Equal(a[0], a[1]) },
	"and":        func(a []float64) float64 { return f64.And(a[0], a[1]) },
	"or":         func(a []float64) float64 { return f64.Or(a[0], a[1]) },
	"not":        func(a []float64) float64 { return f64.Not(a[0]) },
	"where":      func(a []float64) float64 { return f64.Where(a[0], a[1], a[2]) },
	"isclose":    func(a []float64) float64 { return f64.IsClose(a[0], a[1], a[2], a[3]) },
}

// Apply builds name(args...), folding constants and trivial identities.
// Multiplication by zero folds to zero whatever the other factor is.
// It panics on an unknown name.
func Apply(name string, args ...Expr) Expr {
	fn, ok := primitives[name]
	if !ok {
		panic(fmt.Sprintf("symbolic: unknown function %q", name))
	}
	vals := make([]float64, len(args))
	constant := true
	for i, a := range args {
		n, isNum := a.(*Num)
		if !isNum {
			constant = false
			break
		}
		vals[i] = n.val
	}
	if constant {
		return N(fn(vals))
	}
	if e := simplify(name, args); e != nil {
		return e
	}
	return &Func{name: name, args: args}
}

func isNum(e Expr, v float64) bool {
	n, ok := e.(*Num)
	return ok && n.val == v
}

func simplify(name string, a []Expr) Expr {
	switch name {
	case "add":
		if isNum(a[0], 0) {
			return a[1]
		}
		if isNum(a[1], 0) {
			return a[0]
		}
	case "sub":
		if isNum(a[1], 0) {
			return a[0]
		}
		if isNum(a[0], 0) {
			return Apply("neg", a[1])
		}
	case "mul":
		if isNum(a[0], 0) || isNum(a[1], 0) {
			return N(0)
		}
		if isNum(a[0], 1) {
			return a[1]
		}
		if isNum(a[1], 1) {
			return a[0]
		}
	case "div":
		if isNum(a[1], 1) {
			return a[0]
		}
	case "neg":
		if f, ok := a[0].(*Func); ok && f.name == "neg" {
			return f.args[0]
		}
	case "where":
		if n, ok := a[0].(*Num); ok {
			if n.val != 0 {
				return a[1]
			}
			return a[2]
		}
		if a[1].Equal(a[2]) {
			return a[1]
		}
	}
	return nil
}
