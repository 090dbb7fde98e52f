// Package columnar implements vectors stored as struct-of-arrays columns.
//
// Every coordinate is a numeric.Array of the same length, optionally
// accompanied by extra payload columns (charge, identifiers, weights) that
// single-vector operations carry through unchanged. Operations are
// elementwise; length-one columns and object vectors broadcast against
// full columns.
package columnar
