// Package symbolic implements vectors whose coordinates are expression
// trees. Every operation builds a new tree instead of computing a number;
// Eval substitutes values for the symbols and yields an object vector.
//
// Symbolic vectors have the lowest backend precedence and cannot be
// combined with numeric vectors.
package symbolic
