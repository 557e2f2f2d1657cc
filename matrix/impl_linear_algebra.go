// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, negation, scalar scaling, matrix
// multiplication and transpose. All functions perform strict fail-fast
// validation and return fresh *Dense results; operands are never mutated.
//
// Notes:
//   - *Dense operands take a flat-slice fast path; any other Matrix goes
//     through At with a fixed i→j order. Both paths give identical results.
//   - Every error is a package sentinel wrapped via matrixErrorf(op, err).

package matrix

import "fmt"

// ZeroSum is the initial value of every accumulation (dot products, traces,
// Laplace expansion).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opNegate      = "Negate"
	opScale       = "Scale"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opSubMatrix   = "SubMatrix"
	opTrace       = "Trace"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a *Dense copy read
// through At in i→j order. Callers must have validated m is non-nil.
//
// Complexity:
//   - Time O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}
	out := newDense(rows, cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// mapCells builds a fresh Dense with out[i,j] = f(m[i,j]).
func mapCells(m Matrix, opTag string, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDense(src.r, src.c)
	for idx, v := range src.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// Negate returns -m (unary minus). Always succeeds for a well-formed matrix.
//
// Errors:
//   - ErrNilMatrix.
func Negate(m Matrix) (*Dense, error) {
	return mapCells(m, opNegate, func(v float64) float64 { return -v })
}

// Scale returns alpha * m. The scalar may be written on either side at the
// API level: Scale(k, m) and m.Scale(k) produce identical results.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(alpha float64, m Matrix) (*Dense, error) {
	return mapCells(m, opScale, func(v float64) float64 { return alpha * v })
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: each C[i,j] is the dot product of row i of A and column j of B,
//     accumulated in k order from ZeroSum. *Dense operands index the flat
//     buffers directly; others go through At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch; the
//     message names both shapes).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - No zero-skipping: 0 × ±Inf must still yield NaN like a plain dot product.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols)

	var (
		i, j, k int
		av, bv  float64
		dot     float64
		err     error
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA int
			for i = 0; i < aRows; i++ {
				rowA = i * inner
				for j = 0; j < bCols; j++ {
					dot = ZeroSum
					for k = 0; k < inner; k++ {
						dot += da.data[rowA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = dot
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			dot = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				dot += av * bv
			}
			res.data[i*bCols+j] = dot
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// res[j,i] = m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return src.transpose(), nil
}

// transpose is the allocation-only kernel behind Transpose and (*Dense).T.
func (m *Dense) transpose() *Dense {
	res := newDense(m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// ---------- Method forms (receiver is the left operand) ----------

// Add returns m + b. See Add.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m - b. See Sub.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Mul returns m × b. See Mul.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Negate returns -m. See Negate.
func (m *Dense) Negate() (*Dense, error) { return Negate(m) }

// Scale returns alpha * m. See Scale.
func (m *Dense) Scale(alpha float64) (*Dense, error) { return Scale(alpha, m) }

// Transpose returns mᵀ. A nil receiver yields ErrNilMatrix.
func (m *Dense) Transpose() (*Dense, error) { return Transpose(m) }

// T is the short form of Transpose for a non-nil *Dense; it cannot fail.
func (m *Dense) T() *Dense { return m.transpose() }
