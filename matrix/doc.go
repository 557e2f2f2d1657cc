// Package matrix is a small dense-matrix arithmetic library.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major float64 matrix built with New, NewFromInts,
//     NewZeros or NewIdentity.
//   - Element-wise Add/Sub, Negate, Scale (scalar on either side), Mul and
//     Transpose, each returning a freshly allocated *Dense.
//   - The cofactor family: Determinant (Laplace expansion along row 0),
//     SubMatrix/Minor, Trace, Cofactors, Adjugate and Inverse.
//
// Every failure is a package sentinel (ErrBadShape, ErrNonSquare,
// ErrShapeMismatch, ErrDimensionMismatch, ErrOutOfRange, ErrSingular, ...)
// wrapped with the operation name; match with errors.Is.
//
// The determinant is factorial-time on purpose. It is meant for small
// matrices where the textbook expansion is exactly what the caller wants;
// there is no LU or pivoting path.
//
// Instances are never mutated after construction, so concurrent reads of a
// shared *Dense are safe.
package matrix
