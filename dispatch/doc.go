// Package dispatch routes vector operations to the kernel registry of the
// right backend and wraps the raw results in concrete vector types.
//
// A call names an operation, its vector operands and its parameters. Do
// picks the backend with the highest precedence among the operands, lifts
// every operand into that backend's element type, selects the kernel family
// from the operands' dimensions, looks the kernel up by the operands'
// coordinate kinds and rebuilds the result:
//
//	res, err := dispatch.Do(dispatch.Call{Op: "deltaR", Vectors: []dispatch.Vector{a, b}})
//
// Backends install themselves with Register from their package init.
package dispatch
