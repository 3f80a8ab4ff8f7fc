// SPDX-License-Identifier: MIT
// Package densemat — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     constructor or kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels;
//     validation happens in the kernels, facades only compose or forward.

package densemat

// NewZeros returns a new zero-initialized rows×cols Dense.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols) zero-init.
func NewZeros[T Float](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers for MulInto.
// Complexity: O(r*c).
func ZerosLike[T Float](m Matrix[T]) (*Dense[T], error) {
	return NewDense[T](m.Rows(), m.Cols())
}

// opIdentityLike tags IdentityLike validation failures.
const opIdentityLike = "IdentityLike"

// IdentityLike returns I with the dimension of m; requires a square shape.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2).
func IdentityLike[T Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opIdentityLike, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, opErrorf(opIdentityLike, err)
	}

	return NewIdentity[T](m.Rows(), m.Cols())
}

// opScratchFor tags ScratchFor validation failures.
const opScratchFor = "ScratchFor"

// ScratchFor returns an allocation-only destination sized for the product
// a × b (shape a.Rows × b.Cols); contents are unspecified by contract.
// Errors: ErrNilMatrix, ErrDimensionMismatch via the compatibility check.
// Complexity: O(r*c).
func ScratchFor[T Float](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opScratchFor, err)
	}

	return NewScratch[T](a.Rows(), b.Cols())
}

// Sum is an alias for Add: elementwise a + b. Complexity: O(rc).
func Sum[T Float](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: elementwise a − b. Complexity: O(rc).
func Diff[T Float](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b. Complexity: O(r*n*c).
func Product[T Float](a, b Matrix[T]) (*Dense[T], error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ. Complexity: O(rc).
func T[F Float](m Matrix[F]) (*Dense[F], error) { return Transpose(m) }
