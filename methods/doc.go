// Package methods provides the user-facing operations shared by every
// backend's vector types.
//
// Backends embed the frontends in their concrete types and bind them to the
// vector itself:
//
//	v := &Vector2D{...}
//	v.Planar = methods.NewPlanar[float64, bool, float64](v)
//
// S is the backend's scalar result type, B its truth-valued result type and
// P the parameter type it accepts for angles, factors and tolerances.
// Accessors and other parameterless operations return their result
// directly. Operations taking another vector or a caller-supplied parameter
// return an error as well: operands of different backends or dimensions may
// not combine, and a parameter may have the wrong type or length.
package methods
