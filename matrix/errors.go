// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No exported
// function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Kernels wrap these with an operation tag (see matrixErrorf); callers match
// with errors.Is and never compare messages.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> square requirement -> singularity.

var (
	// ErrBadShape is returned when a grid handed to New is malformed:
	// empty, an empty first row, or rows of different lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// (NewZeros/NewIdentity).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Negative indices are always out of range (no wraparound).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates that Add/Sub operands differ in shape.
	ErrShapeMismatch = errors.New("matrix: operands must have the same shape")

	// ErrDimensionMismatch indicates incompatible inner dimensions for Mul:
	// an m×n matrix can only be multiplied by an n×p matrix.
	ErrDimensionMismatch = errors.New("matrix: operands must be m×n and n×p to multiply")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Trace, Cofactors, Adjugate, Inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion while the finite-only
	// policy is enabled (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
