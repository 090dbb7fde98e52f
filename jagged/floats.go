package jagged

import (
	"slices"

	"github.com/hupe1980/hepvec/numeric"
)

// Floats is a list of variable-length lists of numbers. Event i holds
// Content[Offsets[i]:Offsets[i+1]]. A Floats without offsets is a single
// number broadcast to every record.
type Floats struct {
	Offsets []int
	Content numeric.Array
}

// Uniform returns the broadcast constant v.
func Uniform(v float64) Floats { return Floats{Content: numeric.Array{v}} }

// Lists builds a Floats from nested slices.
func Lists(lists ...[]float64) Floats {
	f := Floats{Offsets: make([]int, 1, len(lists)+1)}
	for _, l := range lists {
		f.Content = append(f.Content, l...)
		f.Offsets = append(f.Offsets, len(f.Content))
	}
	return f
}

// IsUniform reports whether f is a broadcast constant.
func (f Floats) IsUniform() bool { return f.Offsets == nil }

// Len returns the number of events.
func (f Floats) Len() int {
	if f.Offsets == nil {
		return 1
	}
	return len(f.Offsets) - 1
}

// Event returns the records of event i.
func (f Floats) Event(i int) numeric.Array {
	if f.Offsets == nil {
		return f.Content
	}
	return f.Content[f.Offsets[i]:f.Offsets[i+1]]
}

// ToLists returns a copy as nested slices.
func (f Floats) ToLists() [][]float64 {
	out := make([][]float64, f.Len())
	for i := range out {
		out[i] = slices.Clone(f.Event(i))
	}
	return out
}

// Bools is the truth-valued counterpart of Floats.
type Bools struct {
	Offsets []int
	Content []bool
}

// ToLists returns a copy as nested slices.
func (b Bools) ToLists() [][]bool {
	if b.Offsets == nil {
		return [][]bool{slices.Clone(b.Content)}
	}
	out := make([][]bool, len(b.Offsets)-1)
	for i := range out {
		out[i] = slices.Clone(b.Content[b.Offsets[i]:b.Offsets[i+1]])
	}
	return out
}

func sameOffsets(a, b []int) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0] || slices.Equal(a, b))
}

// offsetsOf returns the shared offsets of the jagged arguments, or nil if
// every argument is uniform.
func offsetsOf(xs ...Floats) ([]int, error) {
	var ref []int
	for _, x := range xs {
		if x.Offsets == nil {
			continue
		}
		if ref == nil {
			ref = x.Offsets
			continue
		}
		if !sameOffsets(ref, x.Offsets) {
			return nil, &numeric.ShapeError{Lengths: []int{len(ref) - 1, len(x.Offsets) - 1}}
		}
	}
	return ref, nil
}

// Lib implements numeric.Lib on Floats. Jagged operands must share their
// offsets; uniform operands broadcast. Mismatches panic with
// *numeric.ShapeError.
type Lib struct{}

var _ numeric.Lib[Floats] = Lib{}

var arrays numeric.Arrays

func apply(fn func(...numeric.Array) numeric.Array, xs ...Floats) Floats {
	offsets, err := offsetsOf(xs...)
	if err != nil {
		panic(err)
	}
	contents := make([]numeric.Array, len(xs))
	for i, x := range xs {
		contents[i] = x.Content
	}
	return Floats{Offsets: offsets, Content: fn(contents...)}
}

func unary(fn func(numeric.Array) numeric.Array) func(Floats) Floats {
	return func(a Floats) Floats { return Floats{Offsets: a.Offsets, Content: fn(a.Content)} }
}

func binary(fn func(a, b numeric.Array) numeric.Array, a, b Floats) Floats {
	return apply(func(c ...numeric.Array) numeric.Array { return fn(c[0], c[1]) }, a, b)
}

func (Lib) Name() string             { return "jagged" }
func (Lib) Const(c float64) Floats   { return Uniform(c) }
func (Lib) Add(a, b Floats) Floats   { return binary(arrays.Add, a, b) }
func (Lib) Sub(a, b Floats) Floats   { return binary(arrays.Sub, a, b) }
func (Lib) Mul(a, b Floats) Floats   { return binary(arrays.Mul, a, b) }
func (Lib) Div(a, b Floats) Floats   { return binary(arrays.Div, a, b) }
func (Lib) Neg(a Floats) Floats      { return unary(arrays.Neg)(a) }
func (Lib) Abs(a Floats) Floats      { return unary(arrays.Abs)(a) }
func (Lib) Sqrt(a Floats) Floats     { return unary(arrays.Sqrt)(a) }
func (Lib) Sin(a Floats) Floats      { return unary(arrays.Sin)(a) }
func (Lib) Cos(a Floats) Floats      { return unary(arrays.Cos)(a) }
func (Lib) Tan(a Floats) Floats      { return unary(arrays.Tan)(a) }
func (Lib) Arccos(a Floats) Floats   { return unary(arrays.Arccos)(a) }
func (Lib) Arctan(a Floats) Floats   { return unary(arrays.Arctan)(a) }
func (Lib) Atan2(y, x Floats) Floats { return binary(arrays.Atan2, y, x) }
func (Lib) Exp(a Floats) Floats      { return unary(arrays.Exp)(a) }
func (Lib) Log(a Floats) Floats      { return unary(arrays.Log)(a) }
func (Lib) Sinh(a Floats) Floats     { return unary(arrays.Sinh)(a) }
func (Lib) Cosh(a Floats) Floats     { return unary(arrays.Cosh)(a) }
func (Lib) Arcsinh(a Floats) Floats  { return unary(arrays.Arcsinh)(a) }

func (Lib) Copysign(a, b Floats) Floats  { return binary(arrays.Copysign, a, b) }
func (Lib) Mod(a, b Floats) Floats       { return binary(arrays.Mod, a, b) }
func (Lib) Maximum(a, b Floats) Floats   { return binary(arrays.Maximum, a, b) }
func (Lib) NanToNum(a Floats) Floats     { return unary(arrays.NanToNum)(a) }
func (Lib) Less(a, b Floats) Floats      { return binary(arrays.Less, a, b) }
func (Lib) LessEqual(a, b Floats) Floats { return binary(arrays.LessEqual, a, b) }
func (Lib) Equal(a, b Floats) Floats     { return binary(arrays.Equal, a, b) }
func (Lib) And(a, b Floats) Floats       { return binary(arrays.And, a, b) }
func (Lib) Or(a, b Floats) Floats        { return binary(arrays.Or, a, b) }
func (Lib) Not(a Floats) Floats          { return unary(arrays.Not)(a) }

func (Lib) Where(cond, a, b Floats) Floats {
	return apply(func(c ...numeric.Array) numeric.Array { return arrays.Where(c[0], c[1], c[2]) }, cond, a, b)
}

func (Lib) IsClose(a, b, rtol, atol Floats) Floats {
	return apply(func(c ...numeric.Array) numeric.Array { return arrays.IsClose(c[0], c[1], c[2], c[3]) }, a, b, rtol, atol)
}
