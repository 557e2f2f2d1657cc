// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep values immutable: there is no exported mutator, every operation
//     allocates fresh storage and no two instances share a buffer.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Row: O(c) copy; Grid/String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"
	ctxAt    = "At"
	ctxRow   = "Row"
	ctxInts  = "NewFromInts"
	ctxZeros = "NewZeros"
)

// ---------- Formatting literals ----------

const (
	_fmtCellSep = " "  // between rendered cells
	_fmtCellEnd = " "  // trailing space after every cell
	_fmtRowEnd  = "\n" // after every row
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so errors.Is keeps working.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New builds a Dense from a non-empty grid of equal-length rows.
//
// Implementation:
//   - Stage 1: resolve options; validate grid is non-empty and rectangular.
//   - Stage 2: copy every row into a fresh flat buffer (the caller's slices
//     are never retained), enforcing the finite-only policy when enabled.
//
// Errors:
//   - ErrBadShape when grid is empty, the first row is empty or rows are ragged.
//   - ErrNaNInf (wrapped with coordinates) when a cell is NaN/±Inf and the
//     finite-only policy is on (default).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(grid [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if len(grid) == 0 {
		return nil, fmt.Errorf("%s: no rows: %w", ctxNew, ErrBadShape)
	}
	rows, cols := len(grid), len(grid[0])
	if cols == 0 {
		return nil, fmt.Errorf("%s: empty first row: %w", ctxNew, ErrBadShape)
	}

	m := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxNew, i, len(grid[i]), cols, ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			v := grid[i][j]
			if o.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// NewFromInts builds a Dense from an integer grid, converting every element
// with float64(v). Shape rules are identical to New.
func NewFromInts(grid [][]int, opts ...Option) (*Dense, error) {
	fg := make([][]float64, len(grid))
	for i, row := range grid {
		fg[i] = make([]float64, len(row))
		for j, v := range row {
			fg[i][j] = float64(v)
		}
	}
	m, err := New(fg, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxInts, err)
	}

	return m, nil
}

// NewZeros returns a new zero-initialized h×w matrix (the `zeroes` factory).
//
// Errors:
//   - ErrInvalidDimensions when h < 1 or w < 1.
//
// Complexity:
//   - Time O(h*w) zeroing by runtime, Space O(h*w).
func NewZeros(h, w int) (*Dense, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxZeros, h, w, ErrInvalidDimensions)
	}

	return newDense(h, w), nil
}

// newDense allocates an r×c zero matrix. Callers guarantee r,c >= 1.
func newDense(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf bounds-checks (row, col) and returns the flat offset.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Negative indices are rejected; there is no wraparound.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i (length Cols()). Mutating the returned slice
// never affects the matrix.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Grid returns the matrix as freshly allocated nested rows.
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders the matrix for diagnostics: every cell is written with a
// trailing space, cells are joined by a single space and every row ends
// with a newline. For [[1,2],[3,4]] the result is "1  2 \n3  4 \n".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtCellSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			b.WriteString(_fmtCellEnd)
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}
