// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact and tolerance-based comparison of two matrices.
//   - Used by property tests (A·I == A, A·A⁻¹ ≈ I) and by callers that need
//     value equality, since *Dense holds a slice and is not comparable with ==.

package matrix

import (
	"fmt"
	"math"
)

// Equal reports whether a and b have the same shape and bitwise-equal
// float64 cells under ==. NaN never equals NaN; nil operands are never equal.
//
// Complexity: O(r*c), no allocations for *Dense operands.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, errA := asDense(a)
	db, errB := asDense(b)
	if errA != nil || errB != nil {
		return false
	}
	for idx, v := range da.data {
		if v != db.data[idx] {
			return false
		}
	}

	return true
}

// Equal reports value equality with b. See Equal.
func (m *Dense) Equal(b Matrix) bool { return Equal(m, b) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrShapeMismatch).
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: O(r*c) time, O(1) extra space for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, fmt.Errorf("left: %w", err))
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, fmt.Errorf("right: %w", err))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for idx, x := range da.data {
		y := db.data[idx]
		switch {
		case math.IsNaN(x) || math.IsNaN(y):
			return false, nil
		case math.IsInf(x, 0) || math.IsInf(y, 0):
			if x != y {
				return false, nil
			}
		case math.Abs(x-y) > atol+rtol*math.Abs(y):
			return false, nil
		}
	}

	return true, nil
}
