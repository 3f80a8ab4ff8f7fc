// SPDX-License-Identifier: MIT
// Package densemat: elementwise arithmetic kernels.
//
// Purpose:
//   - Declare the shared operation tags and the uniform error wrapper used
//     by every kernel in the package.
//   - Implement elementwise Add/Sub over a shared internal kernel.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels
//     wrapped once with an operation tag; tests match via errors.Is.
//   - Operands are never mutated; every kernel allocates exactly one fresh
//     result (MulInto, which writes into a caller buffer, lives in product.go).

package densemat

import "fmt"

// zeroSum is the additive identity used to start every accumulation.
const zeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulInto   = "MulInto"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting; use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation and the fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense — single flat loop 0..n-1.
//     Otherwise fall back to At/Set with fixed i→j order.
//
// Determinism:
//   - Flat 0..n-1 in the fast path; i→j in the fallback.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Float](a, b Matrix[T], sign T, opTag string) (*Dense[T], error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Allocate result Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int // loop iterators (deterministic order)
	var av, bv T // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, opErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, opErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B and returns a fresh Dense:
// C[i,j] = A[i,j] + B[i,j] for every cell. Operands must share a shape —
// the check is a mandatory runtime guard because shape is not part of the
// Go type (see the package doc) — and are never mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The *Dense fast path is bandwidth-bound.
func Add[T Float](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B and returns a fresh
// Dense: C[i,j] = A[i,j] - B[i,j]. Same shape contract and guarantees as Add.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Float](a, b Matrix[T]) (*Dense[T], error) { return addSub(a, b, -1, opSub) }
