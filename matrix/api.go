// SPDX-License-Identifier: MIT
// Package matrix - public constructor facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for neutral elements
//     (zeros, identity) shaped explicitly or after another matrix.
//   - Avoid logic duplication: each facade delegates to NewZeros.

package matrix

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Built as NewZeros(n, n) with the diagonal overwritten.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
//
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}
