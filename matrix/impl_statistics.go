// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide row-wise statistical transforms used by the scoring models
//     (row sums, L1 normalization into distributions, L2 norms) as deterministic
//     compositions over ew* micro-kernels.
//
// Exposed API:
//   - RowSums(X)         -> sums               // Σ_j X[i,j]
//   - NormalizeRowsL1(X) -> (Y, norms)          // L1 row normalization (degenerate rows unchanged)
//   - RowNormsL2(X)      -> norms               // sqrt(Σ_j X[i,j]²)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opRowNormsL2      = "RowNormsL2"
)

// rowSums returns Σ_j X[i,j] for every row (signed, not absolute).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func rowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				sums[i] += d.data[base+j]
			}
		}
		return sums, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}
	return sums, nil
}

// normalizeRowsL1 scales each row so that its absolute values sum to 1.
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Compute L1 norms per row deterministically.
//   - Stage 3: Build scales (1/norm; 1 for degenerate rows).
//   - Stage 4: Apply ewScaleRows to produce a normalized copy.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) are left unchanged, so an empty document stays all-zero.
//
// Returns:
//   - Matrix: normalized copy; []float64: original L1 norms.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Non-negative count tables become per-row probability distributions.
func normalizeRowsL1(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)
	if r == 0 || c == 0 {
		return X.Clone(), norms, nil
	}

	var i, j int
	var s, v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if d, ok := X.(*Dense); ok {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
			}
			s += math.Abs(v)
		}
		norms[i] = s
	}

	scale := make([]float64, r)
	for i = 0; i < r; i++ {
		if norms[i] > 0 {
			scale[i] = 1.0 / norms[i]
		} else {
			scale[i] = 1.0
		}
	}

	Y, err := ewScaleRows(X, scale)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	return Y, norms, nil
}

// rowNormsL2 returns sqrt(Σ_j X[i,j]²) per row.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func rowNormsL2(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowNormsL2, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)

	var i, j int
	var s, v float64
	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if d, ok := X.(*Dense); ok {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowNormsL2, err)
			}
			s += v * v
		}
		norms[i] = math.Sqrt(s)
	}
	return norms, nil
}
