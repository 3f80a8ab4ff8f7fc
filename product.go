// SPDX-License-Identifier: MIT
// Package densemat: matrix-product kernels.
//
// Purpose:
//   - Implement the textbook matrix product, both into a caller-supplied
//     destination (MulInto) and as an allocating convenience (Mul), plus
//     the matrix-vector product (MatVec).
//
// Determinism:
//   - Every cell is accumulated in the fixed inner order k = 0..K-1. This
//     pins the floating-point summation order, so results are bit-stable
//     across runs; reordering would change rounding. There is deliberately
//     no zero-skip or operand-structure shortcut: skipping a 0*x term
//     would also skip NaN/Inf propagation the caller may rely on.

package densemat

import "fmt"

// MulInto computes the standard matrix product dst = a × b into a
// pre-allocated destination.
//
// Implementation:
//   - Stage 1: validate a,b non-nil with a.Cols == b.Rows; validate dst is
//     non-nil with shape a.Rows × b.Cols; reject buffer aliasing. All
//     checks run before the first write, so a failed call leaves dst
//     exactly as it was.
//   - Stage 2: triple loop i→j→k; each dst cell starts from the additive
//     identity and accumulates a[i,k]*b[k,j] for k = 0..K-1, then is
//     written exactly once.
//
// Behavior highlights:
//   - dst contents are irrelevant on entry: every cell is fully
//     overwritten, so a scratch or previously-populated matrix may be
//     reused freely between calls.
//   - dst must not alias a or b. The identical-buffer case is detected and
//     rejected with ErrAliasedResult; partial overlap through unsafe slice
//     surgery is not detectable and remains caller error.
//   - a and b are read-only for the duration of the call.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch or wrong dst
//     shape), ErrAliasedResult.
//
// Complexity:
//   - Time O(aRows * bCols * K) multiply-adds, Space O(1) beyond dst.
func MulInto[T Float](dst *Dense[T], a, b Matrix[T]) error {
	// Validate operands and inner-dimension compatibility.
	if err := ValidateMulCompatible(a, b); err != nil {
		return opErrorf(opMulInto, err)
	}
	// Validate the destination before any write.
	if dst == nil {
		return opErrorf(opMulInto, ErrNilMatrix)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	if dst.r != aRows || dst.c != bCols {
		return opErrorf(opMulInto, ErrDimensionMismatch)
	}
	// Reject shared backing buffers: the kernel overwrites dst cells whose
	// operand values would still be needed by later accumulations.
	if da, ok := a.(*Dense[T]); ok && len(da.data) > 0 && len(dst.data) > 0 && &da.data[0] == &dst.data[0] {
		return opErrorf(opMulInto, ErrAliasedResult)
	}
	if db, ok := b.(*Dense[T]); ok && len(db.data) > 0 && len(dst.data) > 0 && &db.data[0] == &dst.data[0] {
		return opErrorf(opMulInto, ErrAliasedResult)
	}

	var (
		i, j, k int // loop iterators (fixed i→j→k order)
		av, bv  T
		acc     T
	)
	// Fast-path for two Dense operands: flat row-major indexing.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var rowOffsetA, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for j = 0; j < bCols; j++ {
					acc = zeroSum // additive identity before accumulation
					for k = 0; k < aCols; k++ {
						acc += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					dst.data[rowOffsetR+j] = acc // single write per cell
				}
			}

			return nil
		}
	}

	// Fallback: generic interface triple loop, same i→j→k order.
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = zeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return opErrorf(opMulInto, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return opErrorf(opMulInto, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv // accumulate in fixed k order
			}
			dst.data[i*bCols+j] = acc
		}
	}

	return nil
}

// Mul performs the standard matrix product C = A × B into a freshly
// allocated result. Thin allocating facade over the MulInto kernel.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the result.
func Mul[T Float](a, b Matrix[T]) (*Dense[T], error) {
	// Validate first so the error carries the Mul tag, not MulInto's.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	res, err := NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err = MulInto(res, a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols(). The result vector is
// freshly allocated; x is read-only. Accumulation runs in fixed j order per
// row, matching the MulInto summation-order guarantee.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (vector length).
//
// Complexity:
//   - Time O(r*c), Space O(r) for y.
func MatVec[T Float](m Matrix[T], x []T) ([]T, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	// Validate x is non-nil and matches the column count.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]T, rows)

	// Fast-path: *Dense allows flat, row-major dot products.
	if d, ok := m.(*Dense[T]); ok {
		var i, j, base int
		var acc T
		for i = 0; i < d.r; i++ {
			acc = zeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot products via At.
	var i, j int
	var mv T
	var err error
	for i = 0; i < rows; i++ {
		y[i] = zeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, opErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
