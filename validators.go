// SPDX-License-Identifier: MIT
// Package: densemat
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and constructors minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package densemat

import "math"

// ValidateShape ensures a requested construction shape is usable:
// rows > 0, cols > 0 and rows*cols representable as int.
//
// Errors: ErrBadShape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	// Reject non-positive dimensions before any allocation.
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}
	// Reject rows*cols overflow; a wrapped product would under-allocate.
	if rows > math.MaxInt/cols {
		return ErrBadShape
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil[T Float](m Matrix[T]) error {
	// Single source of truth for the "nil argument" condition.
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Float](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return ErrDimensionMismatch
	}
	if a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Use for Add/Sub/Hadamard kernels.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T Float](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareShape checks that a requested construction shape is square
// (rows == cols). Run ValidateShape first so degenerate shapes report
// ErrBadShape rather than ErrNonSquare.
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquareShape(rows, cols int) error {
	if rows != cols {
		return ErrNonSquare
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T Float](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}

// ValidateMulCompatible ensures inputs are non-nil and a.Cols == b.Rows.
// Use before matrix-product kernels.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Float](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
// Use for MatVec-like operations to avoid ad hoc length code.
//
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen[T Float](x []T, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines;
	// the nil-argument sentinel is reused on purpose.
	if x == nil {
		return ErrNilMatrix
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
