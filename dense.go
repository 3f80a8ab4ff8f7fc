// SPDX-License-Identifier: MIT

// Package densemat: Dense is the concrete, row-major implementation of the
// Matrix contract, storing elements in a flat slice for cache friendliness.
// The element at logical (row, col) lives at linear offset row*cols + col;
// indexOf below is the single point where that linearization is applied and
// every kernel in the package routes indexed access through the same formula.

package densemat

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds exactly r*c elements in row-major
// order. The buffer is owned exclusively by this instance: constructors copy
// caller slices and Clone deep-copies, so no two Dense values ever alias.
type Dense[T Float] struct {
	r, c int // number of rows and columns, fixed at construction
	data []T // flat backing storage, length == r*c
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return the linear offset row*c + col.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the backing slice.
// Errors: ErrOutOfRange on invalid coordinates.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the backing slice.
// Errors: ErrOutOfRange on invalid coordinates.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix. The copy owns a fresh
// buffer; mutating either matrix never affects the other.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() Matrix[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// Fill overwrites every element with v in a single flat pass.
// Handy to reset a scratch matrix between MulInto calls.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for idx := range m.data {
		m.data[idx] = v
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", float64(m.data[i*m.c+j]))
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
