// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/triad/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// requireClose compares two matrices element-wise within eps.
func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, _ := want.At(i, j)
			g, _ := got.At(i, j)
			require.InDeltaf(t, w, g, tol, "cell (%d,%d)", i, j)
		}
	}
}

// TestMul verifies a small product and the dimension guard.
func TestMul(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{58, 64}, {139, 154}}), got, eps)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "2x3 * 2x3 must fail")

	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose checks shape flipping.
func TestTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}), at, eps)

	v, _ := a.At(0, 0)
	assert.Equal(t, 1.0, v, "inputs are never mutated")
}

// TestStatistics covers row sums, L1 normalization and L2 norms.
func TestStatistics(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 3}, {0, 0}, {3, 4}})

	sums, err := matrix.RowSums(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 7}, sums)

	p, norms, err := matrix.NormalizeRowsL1(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 7}, norms)
	requireClose(t, mustRows(t, [][]float64{{0.25, 0.75}, {0, 0}, {3.0 / 7, 4.0 / 7}}), p, eps)

	l2, err := matrix.RowNormsL2(a)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, l2[2], eps)
	assert.Equal(t, 0.0, l2[1])
}

// TestClipMin zeroes non-positive cells.
func TestClipMin(t *testing.T) {
	a := mustRows(t, [][]float64{{-1, 0, 2}})
	got, err := matrix.ClipMin(a, 0)
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{0, 0, 2}}), got, eps)
}
