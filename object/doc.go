// Package object implements vectors of plain float64 coordinates.
//
// Construct them from named coordinates:
//
//	v, err := object.Obj(object.F("x", 3), object.F("y", 4))
//	p, err := object.Obj(object.F("pt", 50), object.F("phi", 0.3), object.F("eta", 1.1), object.F("mass", 0.105))
//
// or from coordinate groups with the New* constructors. Object vectors are
// immutable except through Replace and are safe for concurrent use.
package object
