// SPDX-License-Identifier: MIT

// Package densemat: public element constraint and matrix contract.
// This file intentionally contains ONLY the domain-facing types; errors and
// options live in dedicated files (errors.go, options.go) per the package
// conventions.
package densemat

// Float constrains the element type of a matrix to the IEEE-754 floating
// point kinds. Arithmetic over T follows ordinary floating-point semantics:
// rounding applies, NaN propagates through +, -, *.
type Float interface {
	~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of T values with a
// shape fixed at construction. Implementations own their storage
// exclusively; no two instances ever share a buffer.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Float] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
