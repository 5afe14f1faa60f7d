// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - LowRank + ClipMin is the latent-semantic denoising step used by LSI.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Unlike NewDense it accepts empty shapes (0×N, N×0), which occur for empty
// collections or vocabularies.
//
// Errors: ErrInvalidDimensions for negative sizes.
func NewZeros(rows, cols int) (*Dense, error) {
	return newDenseZeroOK(rows, cols)
}

// NewFromRows builds a *Dense from a rectangular [][]float64 (copying data).
// Errors: ErrDimensionMismatch for ragged input, ErrNaNInf for non-finite cells.
func NewFromRows(rows [][]float64) (*Dense, error) {
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	out, err := newDenseZeroOK(len(rows), c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("NewFromRows", ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf("NewFromRows", err)
			}
		}
	}
	return out, nil
}

// T is a short alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// RowSums returns Σ_j m[i,j] for every row.
func RowSums(m Matrix) ([]float64, error) { return rowSums(m) }

// NormalizeRowsL1 scales rows to unit L1 norm; all-zero rows stay zero.
func NormalizeRowsL1(X Matrix) (Matrix, []float64, error) { return normalizeRowsL1(X) }

// RowNormsL2 returns the Euclidean norm of every row.
func RowNormsL2(X Matrix) ([]float64, error) { return rowNormsL2(X) }

// ClipMin replaces every value ≤ floor by floor in a fresh copy.
func ClipMin(m Matrix, floor float64) (Matrix, error) {
	out, err := ewClipMin(m, floor)
	if err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	return out, nil
}

// LowRank returns the best rank-k approximation of m (Eckart–Young) using the
// default SVD policy. k is clamped to [0, min(rows, cols)].
//
// Complexity: SVD cost plus O(r·k·c) reconstruction.
func LowRank(m Matrix, k int) (Matrix, error) {
	u, s, v, err := SVD(m, DefaultSVDTolerance, DefaultSVDMaxSweeps)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		k = 0
	}
	if k > len(s) {
		k = len(s)
	}
	return Reconstruct(u, s, v, k)
}
