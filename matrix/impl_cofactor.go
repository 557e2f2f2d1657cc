// SPDX-License-Identifier: MIT
// Package matrix - determinant family by cofactor (Laplace) expansion.
//
// Purpose:
//   - Determinant, SubMatrix/Minor, Trace, Cofactors, Adjugate and Inverse.
//
// Determinism & Cost:
//   - Determinant expands along row 0 recursively: O(n!) time, recursion
//     depth n. Results on integer grids are exact.
//   - Cofactors costs n² minors, each O((n-1)!). Keep n small (≲ 9).
//
// Numeric policy:
//   - Inverse refuses an exactly zero determinant with ErrSingular instead of
//     producing ±Inf/NaN cells. No epsilon is applied: a determinant of 1e-300
//     is inverted as-is.

package matrix

import "fmt"

// subMatrix builds the (r-1)×(c-1) matrix with the given row and column
// removed, writing directly into a fresh buffer (no intermediate full copy).
// Callers guarantee valid indices and r,c >= 2.
func (m *Dense) subMatrix(row, col int) *Dense {
	res := newDense(m.r-1, m.c-1)
	var i, j, dst int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[base+j]
			dst++
		}
	}

	return res
}

// det computes the determinant of a square *Dense.
//
// Implementation:
//   - 1×1: the single element.
//   - 2×2: a*d - b*c.
//   - n×n: Σ_i sign_i · m[0,i] · det(sub(0,i)), sign_0 = +1, flipping after
//     every term.
func (m *Dense) det() float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		a, b := m.data[0], m.data[1]
		c, d := m.data[2], m.data[3]
		return a*d - b*c
	}

	det := ZeroSum
	sign := 1.0
	for i := 0; i < m.c; i++ {
		det += sign * m.data[i] * m.subMatrix(0, i).det()
		sign = -sign
	}

	return det
}

// squareDense validates m (non-nil, square) and materializes it as *Dense.
func squareDense(m Matrix, opTag string) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return d, nil
}

// Determinant returns det(m) by recursive cofactor expansion along row 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level, depth n.
func Determinant(m Matrix) (float64, error) {
	d, err := squareDense(m, opDeterminant)
	if err != nil {
		return 0, err
	}

	return d.det(), nil
}

// Determinant returns det(m). See Determinant.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// SubMatrix returns a copy of m with row `row` and column `col` removed.
// Works on rectangular matrices too; m is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrOutOfRange when row or col is outside m.
//   - ErrBadShape when m has a single row or column (the result would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) SubMatrix(row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opSubMatrix, fmt.Errorf("%dx%d has no sub-matrix: %w", m.r, m.c, ErrBadShape))
	}

	return m.subMatrix(row, col), nil
}

// Minor returns det(SubMatrix(row, col)) for a square m of size >= 2.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrBadShape (1×1 input).
func (m *Dense) Minor(row, col int) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opSubMatrix, err)
	}
	sub, err := m.SubMatrix(row, col)
	if err != nil {
		return 0, err
	}

	return sub.det(), nil
}

// Trace returns Σ m[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	d, err := squareDense(m, opTrace)
	if err != nil {
		return 0, err
	}

	return d.trace(), nil
}

// Trace returns Σ m[i,i]. See Trace.
func (m *Dense) Trace() (float64, error) { return Trace(m) }

func (m *Dense) trace() float64 {
	sum := ZeroSum
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum
}

// checkerboard returns (-1)^(i+j).
func checkerboard(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// cofactors builds C[i,j] = (-1)^(i+j) · det(sub(i,j)) for a square *Dense.
// The 1×1 case has an empty minor whose determinant is 1 by convention.
func (m *Dense) cofactors() *Dense {
	n := m.r
	res := newDense(n, n)
	if n == 1 {
		res.data[0] = 1
		return res
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = checkerboard(i, j) * m.subMatrix(i, j).det()
		}
	}

	return res
}

// Cofactors returns the matrix of cofactors of m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactors(m Matrix) (*Dense, error) {
	d, err := squareDense(m, opCofactors)
	if err != nil {
		return nil, err
	}

	return d.cofactors(), nil
}

// Cofactors returns the matrix of cofactors. See Cofactors.
func (m *Dense) Cofactors() (*Dense, error) { return Cofactors(m) }

// Adjugate returns the transpose of the cofactor matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func Adjugate(m Matrix) (*Dense, error) {
	d, err := squareDense(m, opAdjugate)
	if err != nil {
		return nil, err
	}

	return d.cofactors().transpose(), nil
}

// Adjugate returns adj(m). See Adjugate.
func (m *Dense) Adjugate() (*Dense, error) { return Adjugate(m) }

// Inverse returns m⁻¹, dispatching on size.
//
// Implementation:
//   - 1×1: [[1/a]].
//   - 2×2: (1/det) · (trace·I − A). The identity holds for 2×2 only.
//   - n×n, n > 2: (1/det) · adj(A).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when the determinant is exactly 0.
//
// Complexity:
//   - O(1) for n ≤ 2; O(n² · (n-1)!) otherwise.
func Inverse(m Matrix) (*Dense, error) {
	d, err := squareDense(m, opInverse)
	if err != nil {
		return nil, err
	}

	det := d.det()
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	switch d.r {
	case 1:
		return &Dense{r: 1, c: 1, data: []float64{1 / d.data[0]}}, nil
	case 2:
		id, err := NewIdentity(2)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		trI := id.scaled(d.trace())
		shifted, err := Sub(trI, d)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}

		return shifted.scaled(1 / det), nil
	default:
		return d.cofactors().transpose().scaled(1 / det), nil
	}
}

// Inverse returns m⁻¹. See Inverse.
func (m *Dense) Inverse() (*Dense, error) { return Inverse(m) }

// scaled is the infallible kernel behind Scale for a known *Dense.
func (m *Dense) scaled(alpha float64) *Dense {
	res := newDense(m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = alpha * v
	}

	return res
}
