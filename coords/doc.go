// Package coords defines the closed taxonomy of coordinate representations.
//
// A vector is made of an azimuthal group (XY or RhoPhi), an optional
// longitudinal group (Z, Theta or Eta) and, for 4D vectors, a temporal group
// (T or Tau). Groups are generic over the element type so the same values
// serve plain scalars, column arrays and symbolic expressions.
//
// The dimension of a vector follows from which groups are present. The
// classifier functions map a stored group back to its Kind with an
// exhaustive type switch; an unknown implementation is a programming error
// and panics with *InvariantError.
package coords
