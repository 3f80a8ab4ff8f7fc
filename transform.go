// SPDX-License-Identifier: MIT
// Package densemat: whole-matrix transforms and approximate comparison.
//
// Purpose:
//   - Transpose, scalar scaling, elementwise (Hadamard) product and the
//     AllClose tolerance comparison.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i→j); Dense fast-paths operate on
//     the flat row-major buffer; one allocation per transform, none for
//     AllClose.

package densemat

import (
	"fmt"
	"math"
)

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is validated non-nil and never mutated; the result is a fresh
// Dense with flipped shape.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// Allocate result with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](cols, rows)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense: data[i*cols+j] → res.data[j*rows+i].
	var i, j int
	if dm, ok := m.(*Dense[T]); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j]. The input
// is never mutated; NaN/Inf alpha propagates per floating-point semantics.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Float](m Matrix[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}

	// Fast-path: single flat multiply over the backing slice.
	if dm, ok := m.(*Dense[T]); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) into a fresh Dense.
// Both inputs must be non-nil and same-shaped; operands are not mutated.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard[T Float](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, opErrorf(opHadamard, err)
	}

	// Fast-path: both operands *Dense → flat loop on backing slices.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // fixed order, deterministic
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop (bounds-safe, shape already validated).
	var i, j int
	var av, bv T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, opErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, opErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// AllClose checks elementwise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true, nil) if every element satisfies the relation, (false, nil)
// otherwise. Tolerances are taken as |rtol|, |atol|; NaN/Inf tolerances are
// rejected. Comparison runs in float64 regardless of T.
//
// Errors:
//   - ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1). Early exit on first violation.
func AllClose[T Float](a, b Matrix[T], rtol, atol float64) (bool, error) {
	// Tolerances must be finite; negative values are accepted but abs-ed.
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, opErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	// Validate presence and shape equality using the central validators.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, opErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: flat scan over both buffers.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				diff := math.Abs(float64(da.data[idx]) - float64(db.data[idx]))
				if diff > atol+rtol*math.Abs(float64(db.data[idx])) {
					return false, nil // early exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At with uniform error propagation.
	var av, bv T
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, opErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, opErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			diff := math.Abs(float64(av) - float64(bv))
			if diff > atol+rtol*math.Abs(float64(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
