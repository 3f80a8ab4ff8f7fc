// SPDX-License-Identifier: MIT
// Package: densemat
//
// Purpose:
//   - Provide every way to obtain a fully-initialized Dense: zero-filled,
//     identity, uniform-random, verbatim-copied, and allocation-only scratch.
//   - Guarantee the construction invariant: on success the buffer holds
//     exactly rows*cols elements; on failure nothing partially-initialized
//     escapes (validation precedes allocation on every path).
//
// Determinism & Performance:
//   - All constructors run a fixed validate → allocate → fill sequence.
//   - NewRandom is the only nondeterministic entry point, and only in its
//     default (entropy-seeded) configuration; see options.go.

package densemat

import (
	"fmt"
	mrand "math/rand"
	"unsafe"
)

// Construction tags for unified error wrapping (no magic strings).
const (
	opNewDense     = "NewDense"
	opNewIdentity  = "NewIdentity"
	opNewRandom    = "NewRandom"
	opNewFromSlice = "NewFromSlice"
	opNewScratch   = "NewScratch"
)

// multiplicativeIdentity is the diagonal value written by NewIdentity.
const multiplicativeIdentity = 1.0

// float32Size selects the 32-bit draw path in NewRandom by element size.
const float32Size = 4

// constructErrorf wraps err with a constructor tag, preserving the original
// sentinel via %w so callers match with errors.Is.
func constructErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewDense creates a rows×cols Dense matrix initialized to zeros — the
// additive identity of T fills every cell.
// Stage 1 (Validate): ensure rows and cols > 0 and rows*cols fits in int.
// Stage 2 (Prepare): allocate the flat backing slice (zeroed by the runtime).
// Stage 3 (Finalize): return the new Dense.
// Errors: ErrBadShape.
// Complexity: O(rows*cols) time and memory.
func NewDense[T Float](rows, cols int) (*Dense[T], error) {
	// Validate dimensions before any allocation.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, constructErrorf(opNewDense, err)
	}

	// Allocate flat slice; Go zeroes it, which is exactly the zeros() contract.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewIdentity creates a rows×cols matrix with the multiplicative identity on
// the diagonal and zeros elsewhere. The shape must be square; a rectangular
// request fails before any buffer is allocated, so nothing leaks and no
// partially-initialized matrix is observable.
// Stage 1 (Validate): shape validity, then rows == cols.
// Stage 2 (Prepare): zero-filled allocation via NewDense.
// Stage 3 (Execute): single diagonal pass writing offset i*cols+i.
// Errors: ErrBadShape, ErrNonSquare.
// Complexity: O(rows*cols) zeroing + O(rows) diagonal writes.
func NewIdentity[T Float](rows, cols int) (*Dense[T], error) {
	// Validate the shape itself first so a 0×3 request reports ErrBadShape,
	// not ErrNonSquare.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, constructErrorf(opNewIdentity, err)
	}
	// Identity exists only for square shapes; fail before allocating.
	if err := ValidateSquareShape(rows, cols); err != nil {
		return nil, constructErrorf(opNewIdentity, err)
	}

	// Start from the zero-filled state.
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, constructErrorf(opNewIdentity, err)
	}
	// Set the diagonal deterministically in a single fixed-order loop.
	for i := 0; i < rows; i++ {
		m.data[i*cols+i] = multiplicativeIdentity
	}

	return m, nil
}

// NewRandom creates a rows×cols matrix whose elements are independent
// uniform draws from [0, 1). By default the generator is seeded from the OS
// entropy source at call time, so two calls produce unrelated matrices;
// pass WithSeed or WithSource for reproducible output.
// Stage 1 (Validate): shape validity, then option resolution.
// Stage 2 (Prepare): zero-filled allocation via NewDense.
// Stage 3 (Execute): one draw per element in flat 0..n-1 order.
// Errors: ErrBadShape; a failed entropy read is wrapped and propagated.
// Complexity: O(rows*cols) plus one bounded entropy system call.
func NewRandom[T Float](rows, cols int, opts ...RandOption) (*Dense[T], error) {
	// Validate dimensions before touching the entropy source.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, constructErrorf(opNewRandom, err)
	}
	// Resolve the pseudo-random source (entropy-seeded unless overridden).
	src, err := gatherRandOptions(opts...)
	if err != nil {
		return nil, constructErrorf(opNewRandom, err)
	}
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, constructErrorf(opNewRandom, err)
	}

	// Draw in the native width of T: narrowing a float64 draw to 32 bits
	// can round values just below 1.0 up to exactly 1.0, which would break
	// the half-open [0,1) range contract. The width is decided by element
	// size, not by exact type, so defined types with a float32 underlying
	// type take the 32-bit path as well.
	rng := mrand.New(src)
	var draw func() T
	if unsafe.Sizeof(T(0)) == float32Size {
		draw = func() T { return T(rng.Float32()) }
	} else {
		draw = func() T { return T(rng.Float64()) }
	}
	for idx := range m.data { // flat fill, one independent draw per element
		m.data[idx] = draw()
	}

	return m, nil
}

// NewFromSlice creates a rows×cols matrix by copying values verbatim in
// row-major order: values[k] becomes the element at linear offset k, i.e.
// (k/cols, k%cols). The slice length must be exactly rows*cols — a shorter
// or longer slice is a checked failure, never an out-of-bounds read. The
// input slice is copied and never retained, preserving exclusive buffer
// ownership.
// Stage 1 (Validate): shape validity, then len(values) == rows*cols.
// Stage 2 (Execute): single copy into a fresh buffer.
// Errors: ErrBadShape, ErrNilMatrix (nil values), ErrDimensionMismatch.
// Complexity: O(rows*cols).
func NewFromSlice[T Float](rows, cols int, values []T) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, constructErrorf(opNewFromSlice, err)
	}
	// Length check before allocation: reuse the vector-length validator.
	if err := ValidateVecLen(values, rows*cols); err != nil {
		return nil, constructErrorf(opNewFromSlice, err)
	}

	data := make([]T, rows*cols)
	copy(data, values) // verbatim, order-preserving

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewScratch allocates a rows×cols matrix whose element values are
// UNSPECIFIED by contract. It exists purely as a pre-allocated target for
// in-place fills (MulInto, Fill); callers must not read an element before
// writing it and must never rely on the buffer being zeroed, even though
// the current implementation delegates to the zeroing allocator — the
// contract, not the implementation, is what future versions honor.
// Errors: ErrBadShape.
// Complexity: O(rows*cols).
func NewScratch[T Float](rows, cols int) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, constructErrorf(opNewScratch, err)
	}

	return m, nil
}
