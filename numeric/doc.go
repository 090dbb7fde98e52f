// Package numeric provides the backend-agnostic numeric primitives that
// kernels are written against.
//
// Float64 operates on plain scalars. Arrays operates elementwise on Array
// columns and broadcasts length-one operands the way NumPy does.
package numeric
