// SPDX-License-Identifier: MIT

// Package densemat provides a minimal dense-matrix primitive: a fixed-shape,
// element-typed container with construction, indexed access and basic algebra.
//
// The package offers:
//
//   - Dense[T] — a row-major matrix over float32/float64 with a contiguous
//     backing buffer of exactly rows*cols elements, shape fixed at construction.
//   - Constructors: NewDense (zeros), NewIdentity, NewRandom, NewFromSlice,
//     NewScratch (allocation-only target for in-place fills).
//   - Kernels: Add, Sub, Mul, MulInto, Transpose, Scale, Hadamard, MatVec.
//   - Bounds-checked At/Set and a single canonical row-major linearization.
//
// Shape is stored at runtime: Go has no compile-time integer generics, so
// two matrices of different shape are the same Go type and every
// shape-sensitive operation performs an explicit runtime check, failing
// with ErrDimensionMismatch. The element type T, in contrast, is a
// compile-time parameter — Dense[float32] and Dense[float64] cannot mix.
//
// All operations either fully succeed or fail cleanly with a sentinel
// error (matched via errors.Is); no operation leaves a partially written
// result or a buffer shorter than rows*cols. The package is pure in-memory
// computation: no I/O, no background goroutines, no shared mutable state
// between instances. Distinct instances are safe to use from distinct
// goroutines; concurrent mutation of one instance must be serialized by
// the caller.
package densemat
