// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix contract shared by all kernels.
package matrix

// Matrix is a read-only two-dimensional grid of float64 values.
//
// Package-level kernels (Add, Mul, Transpose, ...) accept any Matrix and take
// a flat-slice fast path when the operands are *Dense. There is deliberately
// no Set: matrices are values, every operation allocates its result.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows (height).
	Rows() int

	// Cols returns the number of columns (width).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
