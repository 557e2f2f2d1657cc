// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the determinant family:
// Determinant, SubMatrix/Minor, Trace, Cofactors, Adjugate and Inverse.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Determinant ----------

func TestDeterminant_Table(t *testing.T) {
	for _, tc := range []struct {
		name string
		grid [][]float64
		want float64
	}{
		{"1x1", [][]float64{{5}}, 5},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"3x3 singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4 upper triangular", [][]float64{
			{2, 1, 0, 3},
			{0, 3, 1, 4},
			{0, 0, 4, 1},
			{0, 0, 0, 5},
		}, 120},
		{"4x4 row swap", [][]float64{
			{0, 1, 0, 0},
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		}, -1},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustNew(t, tc.grid)

			got, err := m.Determinant()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			slow, err := matrix.Determinant(hide{m})
			require.NoError(t, err)
			require.Equal(t, got, slow)
		})
	}
}

func TestDeterminant_IdentityIsOne(t *testing.T) {
	for n := 1; n <= 6; n++ {
		det, err := MustIdentity(t, n).Determinant()
		require.NoError(t, err)
		require.Equal(t, 1.0, det, "n=%d", n)
	}
}

func TestDeterminant_TransposeInvariant(t *testing.T) {
	for n := 1; n <= 5; n++ {
		m := RandDense(t, n, n, int64(100+n))
		d1, err := m.Determinant()
		require.NoError(t, err)
		d2, err := m.T().Determinant()
		require.NoError(t, err)
		require.InDelta(t, d1, d2, 1e-9, "n=%d", n)
	}
}

func TestSquareOnlyOps_NonSquare(t *testing.T) {
	m := RandDense(t, 2, 3, 7)

	_, err := m.Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = m.Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = m.Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = m.Cofactors()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = m.Adjugate()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = m.Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSquareOnlyOps_Nil(t *testing.T) {
	var m *matrix.Dense

	_, err := m.Determinant()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Trace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Inverse(m)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.SubMatrix(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- SubMatrix / Minor ----------

func TestSubMatrix(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := m.SubMatrix(1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {7, 9}}, sub)

	sub, err = m.SubMatrix(0, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 5}, {7, 8}}, sub)

	// original is untouched
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, m)
}

func TestSubMatrix_Rectangular(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	sub, err := m.SubMatrix(0, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 5}}, sub)
}

func TestSubMatrix_Errors(t *testing.T) {
	m := RandDense(t, 3, 3, 1)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := m.SubMatrix(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "index %v", idx)
	}

	_, err := MustNew(t, [][]float64{{1, 2, 3}}).SubMatrix(0, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = MustNew(t, [][]float64{{1}}).Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestMinor(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})

	minor, err := m.Minor(0, 1)
	require.NoError(t, err)
	require.Equal(t, -5.0, minor) // det([[0,5],[1,6]])
}

// ---------- Trace ----------

func TestTrace(t *testing.T) {
	tr, err := MustNew(t, [][]float64{{1, 2}, {3, 4}}).Trace()
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	tr, err = matrix.Trace(hide{MustIdentity(t, 7)})
	require.NoError(t, err)
	require.Equal(t, 7.0, tr)
}

// ---------- Cofactors / Adjugate ----------

func TestCofactors_Concrete3x3(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})

	c, err := m.Cofactors()
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{24, 5, -4},
		{-12, 3, 2},
		{-2, -5, 4},
	}, c)

	adj, err := m.Adjugate()
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{24, -12, -2},
		{5, 3, -5},
		{-4, 2, 4},
	}, adj)
}

func TestCofactors_OneByOne(t *testing.T) {
	c, err := MustNew(t, [][]float64{{9}}).Cofactors()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}}, c)
}

// TestCofactors_Checkerboard checks every cell against (-1)^(i+j)·Minor(i,j)
// for both even and odd widths.
func TestCofactors_Checkerboard(t *testing.T) {
	for n := 2; n <= 6; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			m := RandDense(t, n, n, int64(n))
			c, err := m.Cofactors()
			require.NoError(t, err)

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					minor, err := m.Minor(i, j)
					require.NoError(t, err)
					sign := 1.0
					if (i+j)%2 == 1 {
						sign = -1.0
					}
					require.Equal(t, sign*minor, MustAt(t, c, i, j), "cell (%d,%d)", i, j)
				}
			}
		})
	}
}

// TestAdjugate_TimesA checks adj(A)·A == det(A)·I on integer matrices,
// where every intermediate is exact.
func TestAdjugate_TimesA(t *testing.T) {
	for n := 2; n <= 5; n++ {
		m := RandDense(t, n, n, int64(40+n))
		adj, err := m.Adjugate()
		require.NoError(t, err)
		det, err := m.Determinant()
		require.NoError(t, err)

		left, err := adj.Mul(m)
		require.NoError(t, err)
		want, err := MustIdentity(t, n).Scale(det)
		require.NoError(t, err)
		require.True(t, left.Equal(want), "n=%d\n%v", n, left)
	}
}

// ---------- Inverse ----------

func TestInverse_Scenario2x2(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})

	inv, err := m.Inverse()
	require.NoError(t, err)
	CompareClose(t, inv, MustNew(t, [][]float64{{-2, 1}, {1.5, -0.5}}), rtol, atol)

	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)
}

func TestInverse_OneByOne(t *testing.T) {
	inv, err := MustNew(t, [][]float64{{4}}).Inverse()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, inv)
}

func TestInverse_3x3(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}})

	inv, err := m.Inverse()
	require.NoError(t, err)
	want := MustNew(t, [][]float64{
		{24.0 / 22, -12.0 / 22, -2.0 / 22},
		{5.0 / 22, 3.0 / 22, -5.0 / 22},
		{-4.0 / 22, 2.0 / 22, 4.0 / 22},
	})
	CompareClose(t, inv, want, rtol, atol)

	slow, err := matrix.Inverse(hide{m})
	require.NoError(t, err)
	require.True(t, inv.Equal(slow))
}

func TestInverse_Singular(t *testing.T) {
	for name, grid := range map[string][][]float64{
		"1x1": {{0}},
		"2x2": {{1, 2}, {2, 4}},
		"3x3": {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		"4x4": {{1, 2, 3, 4}, {2, 4, 6, 8}, {0, 1, 0, 1}, {5, 5, 5, 5}},
	} {
		grid := grid
		t.Run(name, func(t *testing.T) {
			inv, err := MustNew(t, grid).Inverse()
			require.ErrorIs(t, err, matrix.ErrSingular)
			require.Nil(t, inv)
		})
	}
}
