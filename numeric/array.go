package numeric

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch is returned when array operands cannot be broadcast to a
// common length.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeError reports the incompatible lengths.
type ShapeError struct {
	Lengths []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("operands could not be broadcast together with lengths %v", e.Lengths)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// Array is a one-dimensional column of float64 values. An Array of length
// one broadcasts against arrays of any length.
type Array []float64

// Scalar returns a length-one array.
func Scalar(v float64) Array { return Array{v} }

// Fill returns an array of n copies of v.
func Fill(n int, v float64) Array {
	out := make(Array, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a) }

// At returns element i, broadcasting length-one arrays.
func (a Array) At(i int) float64 {
	if len(a) == 1 {
		return a[0]
	}
	return a[i]
}

// Bools interprets a as truth values.
func (a Array) Bools() []bool {
	out := make([]bool, len(a))
	for i, v := range a {
		out[i] = v != 0
	}
	return out
}

// BroadcastLen returns the common length of the given arrays.
func BroadcastLen(cols ...Array) (int, error) {
	n := 1
	for _, c := range cols {
		switch {
		case len(c) == 1 || len(c) == n:
		case n == 1:
			n = len(c)
		default:
			lengths := make([]int, len(cols))
			for i, c := range cols {
				lengths[i] = len(c)
			}
			return 0, &ShapeError{Lengths: lengths}
		}
	}
	return n, nil
}

// Broadcast expands every column to the common length. Columns already of
// that length are returned without copying.
func Broadcast(cols ...Array) ([]Array, error) {
	n, err := BroadcastLen(cols...)
	if err != nil {
		return nil, err
	}
	out := make([]Array, len(cols))
	for i, c := range cols {
		if len(c) == n {
			out[i] = c
			continue
		}
		out[i] = Fill(n, c[0])
	}
	return out, nil
}

// Arrays implements Lib elementwise on Array with length-one broadcasting.
// Operands of incompatible lengths panic with *ShapeError; callers broadcast
// up front with Broadcast.
type Arrays struct{}

var _ Lib[Array] = Arrays{}

func unary(a Array, fn func(float64) float64) Array {
	out := make(Array, len(a))
	for i, v := range a {
		out[i] = fn(v)
	}
	return out
}

func binary(a, b Array, fn func(x, y float64) float64) Array {
	n, err := BroadcastLen(a, b)
	if err != nil {
		panic(err)
	}
	out := make(Array, n)
	for i := range out {
		out[i] = fn(a.At(i), b.At(i))
	}
	return out
}

func (Arrays) Name() string { return "array" }

func (Arrays) Const(c float64) Array { return Array{c} }

func (Arrays) Add(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return x + y })
}

func (Arrays) Sub(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return x - y })
}

func (Arrays) Mul(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return x * y })
}

func (Arrays) Div(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return x / y })
}

func (Arrays) Neg(a Array) Array  { return unary(a, func(x float64) float64 { return -x }) }
func (Arrays) Abs(a Array) Array  { return unary(a, math.Abs) }
func (Arrays) Sqrt(a Array) Array { return unary(a, math.Sqrt) }

func (Arrays) Sin(a Array) Array    { return unary(a, math.Sin) }
func (Arrays) Cos(a Array) Array    { return unary(a, math.Cos) }
func (Arrays) Tan(a Array) Array    { return unary(a, math.Tan) }
func (Arrays) Arccos(a Array) Array { return unary(a, math.Acos) }
func (Arrays) Arctan(a Array) Array { return unary(a, math.Atan) }
func (Arrays) Atan2(y, x Array) Array {
	return binary(y, x, math.Atan2)
}

func (Arrays) Exp(a Array) Array     { return unary(a, math.Exp) }
func (Arrays) Log(a Array) Array     { return unary(a, math.Log) }
func (Arrays) Sinh(a Array) Array    { return unary(a, math.Sinh) }
func (Arrays) Cosh(a Array) Array    { return unary(a, math.Cosh) }
func (Arrays) Arcsinh(a Array) Array { return unary(a, math.Asinh) }

func (Arrays) Copysign(a, b Array) Array { return binary(a, b, math.Copysign) }
func (Arrays) Mod(a, b Array) Array      { return binary(a, b, floorMod) }
func (Arrays) Maximum(a, b Array) Array  { return binary(a, b, maximum) }
func (Arrays) NanToNum(a Array) Array    { return unary(a, nanToNum) }

func (Arrays) Less(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return truth(x < y) })
}

func (Arrays) LessEqual(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return truth(x <= y) })
}

func (Arrays) Equal(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return truth(x == y) })
}

func (Arrays) And(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return truth(x != 0 && y != 0) })
}

func (Arrays) Or(a, b Array) Array {
	return binary(a, b, func(x, y float64) float64 { return truth(x != 0 || y != 0) })
}

func (Arrays) Not(a Array) Array {
	return unary(a, func(x float64) float64 { return truth(x == 0) })
}

func (Arrays) Where(cond, a, b Array) Array {
	n, err := BroadcastLen(cond, a, b)
	if err != nil {
		panic(err)
	}
	out := make(Array, n)
	for i := range out {
		if cond.At(i) != 0 {
			out[i] = a.At(i)
		} else {
			out[i] = b.At(i)
		}
	}
	return out
}

func (Arrays) IsClose(a, b, rtol, atol Array) Array {
	n, err := BroadcastLen(a, b, rtol, atol)
	if err != nil {
		panic(err)
	}
	out := make(Array, n)
	for i := range out {
		out[i] = truth(isClose(a.At(i), b.At(i), rtol.At(i), atol.At(i)))
	}
	return out
}
