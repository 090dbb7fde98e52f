package numeric

import "math"

// Float64 implements Lib on plain float64 scalars.
type Float64 struct{}

var _ Lib[float64] = Float64{}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (Float64) Name() string { return "float64" }

func (Float64) Const(c float64) float64 { return c }

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Div(a, b float64) float64 { return a / b }
func (Float64) Neg(a float64) float64    { return -a }
func (Float64) Abs(a float64) float64    { return math.Abs(a) }
func (Float64) Sqrt(a float64) float64   { return math.Sqrt(a) }

func (Float64) Sin(a float64) float64      { return math.Sin(a) }
func (Float64) Cos(a float64) float64      { return math.Cos(a) }
func (Float64) Tan(a float64) float64      { return math.Tan(a) }
func (Float64) Arccos(a float64) float64   { return math.Acos(a) }
func (Float64) Arctan(a float64) float64   { return math.Atan(a) }
func (Float64) Atan2(y, x float64) float64 { return math.Atan2(y, x) }

func (Float64) Exp(a float64) float64     { return math.Exp(a) }
func (Float64) Log(a float64) float64     { return math.Log(a) }
func (Float64) Sinh(a float64) float64    { return math.Sinh(a) }
func (Float64) Cosh(a float64) float64    { return math.Cosh(a) }
func (Float64) Arcsinh(a float64) float64 { return math.Asinh(a) }

func (Float64) Copysign(a, b float64) float64 { return math.Copysign(a, b) }
func (Float64) Mod(a, b float64) float64      { return floorMod(a, b) }
func (Float64) Maximum(a, b float64) float64  { return maximum(a, b) }
func (Float64) NanToNum(a float64) float64    { return nanToNum(a) }

func (Float64) Less(a, b float64) float64      { return truth(a < b) }
func (Float64) LessEqual(a, b float64) float64 { return truth(a <= b) }
func (Float64) Equal(a, b float64) float64     { return truth(a == b) }
func (Float64) And(a, b float64) float64       { return truth(a != 0 && b != 0) }
func (Float64) Or(a, b float64) float64        { return truth(a != 0 || b != 0) }
func (Float64) Not(a float64) float64          { return truth(a == 0) }

func (Float64) Where(cond, a, b float64) float64 {
	if cond != 0 {
		return a
	}
	return b
}

func (Float64) IsClose(a, b, rtol, atol float64) float64 { return truth(isClose(a, b, rtol, atol)) }

func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

// maximum propagates NaN like numpy.maximum.
func maximum(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN()
	}
	return math.Max(a, b)
}

func nanToNum(a float64) float64 {
	if math.IsNaN(a) {
		return 0
	}
	return a
}

func isClose(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
