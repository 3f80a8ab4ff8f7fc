// SPDX-License-Identifier: MIT
// Package densemat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package densemat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "densemat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid: rows <= 0,
	// cols <= 0, or rows*cols overflowing int. Constructors must validate
	// the shape before allocation.
	ErrBadShape = errors.New("densemat: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("densemat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with different shapes, Mul/MulInto where
	// a.Cols != b.Rows or the destination shape is wrong, NewFromSlice with
	// a value slice whose length is not rows*cols, MatVec with a vector
	// whose length is not Cols.
	ErrDimensionMismatch = errors.New("densemat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// requested or supplied shape was rectangular (identity construction).
	ErrNonSquare = errors.New("densemat: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where a finite one is required
	// (AllClose tolerances). Matrix elements themselves are never policed:
	// NaN propagates through arithmetic per IEEE-754 semantics.
	ErrNaNInf = errors.New("densemat: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("densemat: nil matrix")

	// ErrAliasedResult is returned by MulInto when the destination shares
	// its backing buffer with an operand. The product overwrites cells that
	// are still inputs to later accumulations, so aliasing is rejected
	// before any write occurs.
	ErrAliasedResult = errors.New("densemat: result aliases an operand")
)
