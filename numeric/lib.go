package numeric

// Lib is the set of numeric primitives kernels are written against.
//
// Truth values are represented in T itself: comparisons return 1 for true
// and 0 for false, and Where treats every non-zero value as true. Array
// implementations apply every primitive elementwise.
type Lib[T any] interface {
	// Name identifies the implementation in errors and logs.
	Name() string

	Const(c float64) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T
	Abs(a T) T
	Sqrt(a T) T

	Sin(a T) T
	Cos(a T) T
	Tan(a T) T
	Arccos(a T) T
	Arctan(a T) T
	Atan2(y, x T) T

	Exp(a T) T
	Log(a T) T
	Sinh(a T) T
	Cosh(a T) T
	Arcsinh(a T) T

	// Copysign returns the magnitude of a with the sign of b.
	Copysign(a, b T) T
	// Mod is the floored modulus: the result has the sign of b.
	Mod(a, b T) T
	Maximum(a, b T) T
	// NanToNum replaces NaN by zero.
	NanToNum(a T) T

	Less(a, b T) T
	LessEqual(a, b T) T
	Equal(a, b T) T
	And(a, b T) T
	Or(a, b T) T
	Not(a T) T
	Where(cond, a, b T) T

	// IsClose reports |a-b| <= atol + rtol*|b|.
	IsClose(a, b, rtol, atol T) T
}

// Square returns a*a.
func Square[T any](l Lib[T], a T) T { return l.Mul(a, a) }

// Hypot returns sqrt(sum of squares).
func Hypot[T any](l Lib[T], vs ...T) T {
	sum := Square(l, vs[0])
	for _, v := range vs[1:] {
		sum = l.Add(sum, Square(l, v))
	}
	return l.Sqrt(sum)
}

// Sum adds all values.
func Sum[T any](l Lib[T], vs ...T) T {
	out := vs[0]
	for _, v := range vs[1:] {
		out = l.Add(out, v)
	}
	return out
}
