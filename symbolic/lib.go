package symbolic

import "github.com/hupe1980/hepvec/numeric"

// Lib implements numeric.Lib by building expression trees.
type Lib struct{}

var _ numeric.Lib[Expr] = Lib{}

func (Lib) Name() string               { return "symbolic" }
func (Lib) Const(c float64) Expr       { return N(c) }
func (Lib) Add(a, b Expr) Expr         { return Apply("add", a, b) }
func (Lib) Sub(a, b Expr) Expr         { return Apply("sub", a, b) }
func (Lib) Mul(a, b Expr) Expr         { return Apply("mul", a, b) }
func (Lib) Div(a, b Expr) Expr         { return Apply("div", a, b) }
func (Lib) Neg(a Expr) Expr            { return Apply("neg", a) }
func (Lib) Abs(a Expr) Expr            { return Apply("abs", a) }
func (Lib) Sqrt(a Expr) Expr           { return Apply("sqrt", a) }
func (Lib) Sin(a Expr) Expr            { return Apply("sin", a) }
func (Lib) Cos(a Expr) Expr            { return Apply("cos", a) }
func (Lib) Tan(a Expr) Expr            { return Apply("tan", a) }
func (Lib) Arccos(a Expr) Expr         { return Apply("acos", a) }
func (Lib) Arctan(a Expr) Expr         { return Apply("atan", a) }
func (Lib) Atan2(y, x Expr) Expr       { return Apply("atan2", y, x) }
func (Lib) Exp(a Expr) Expr            { return Apply("exp", a) }
func (Lib) Log(a Expr) Expr            { return Apply("log", a) }
func (Lib) Sinh(a Expr) Expr           { return Apply("sinh", a) }
func (Lib) Cosh(a Expr) Expr           { return Apply("cosh", a) }
func (Lib) Arcsinh(a Expr) Expr        { return Apply("asinh", a) }
func (Lib) Copysign(a, b Expr) Expr    { return Apply("copysign", a, b) }
func (Lib) Mod(a, b Expr) Expr         { return Apply("mod", a, b) }
func (Lib) Maximum(a, b Expr) Expr     { return Apply("max", a, b) }
func (Lib) NanToNum(a Expr) Expr       { return Apply("nan_to_num", a) }
func (Lib) Less(a, b Expr) Expr        { return Apply("less", a, b) }
func (Lib) LessEqual(a, b Expr) Expr   { return Apply("less_equal", a, b) }
func (Lib) Equal(a, b Expr) Expr       { return Apply("equal", a, b) }
func (Lib) And(a, b Expr) Expr         { return Apply("and", a, b) }
func (Lib) Or(a, b Expr) Expr          { return Apply("or", a, b) }
func (Lib) Not(a Expr) Expr            { return Apply("not", a) }
func (Lib) Where(cond, a, b Expr) Expr { return Apply("where", cond, a, b) }

func (Lib) IsClose(a, b, rtol, atol Expr) Expr { return Apply("isclose", a, b, rtol, atol) }
