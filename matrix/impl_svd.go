// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Thin singular value decomposition A = U·diag(S)·Vᵀ via one-sided Jacobi
//     (Hestenes) rotations, and rank-k reconstruction U[:, :k]·S[:k]·Vᵀ[:k, :].
//
// Contract:
//   - For an r×c input with p = min(r, c): U is r×p, S has p entries sorted
//     descending, V is c×p. Every rank 0 ≤ k ≤ p is a valid slice, so callers
//     may truncate arbitrarily without re-factorizing.
//
// Determinism & Performance:
//   - Cyclic (p,q) sweep order is fixed; ties in S keep column order (stable sort).
//   - Each sweep is O(p²·max(r,c)); convergence is quadratic in practice.
//
// AI-Hints:
//   - Wide inputs (r < c) are factorized through Aᵀ and the factors swapped back.

package matrix

import (
	"math"
	"sort"
)

// Default numeric policy for SVD.
const (
	// DefaultSVDTolerance bounds |<a_p,a_q>| / (‖a_p‖‖a_q‖) at convergence.
	DefaultSVDTolerance = 1e-12
	// DefaultSVDMaxSweeps caps the number of full cyclic sweeps.
	DefaultSVDMaxSweeps = 80
)

// SVD factorizes m into U, S, V with m = U·diag(S)·Vᵀ.
// MAIN DESCRIPTION:
//   - One-sided Jacobi: orthogonalize the columns of a working copy W = A·V by
//     plane rotations accumulated into V; singular values are the final column norms.
//
// Implementation:
//   - Stage 1: Validate m (non-nil). Empty shapes return empty factors.
//   - Stage 2: If rows < cols, factorize mᵀ and swap U/V.
//   - Stage 3: Sweep all (p,q) pairs rotating columns until no pair exceeds tol.
//   - Stage 4: Sort singular values descending (stable) and normalize U columns.
//
// Behavior highlights:
//   - Zero singular values produce zero U columns; reconstruction is unaffected.
//
// Inputs:
//   - m: any matrix (r×c).
//   - tol: orthogonality tolerance (> 0); non-positive uses DefaultSVDTolerance.
//   - maxSweeps: sweep cap; non-positive uses DefaultSVDMaxSweeps.
//
// Returns:
//   - U (r×p), S (len p, descending), V (c×p).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (wrapped with opSVD).
//   - ErrSVDFailed when the sweep cap is hit before convergence.
//
// Determinism:
//   - Fixed rotation order; identical inputs give bit-identical factors.
//
// Complexity:
//   - Time O(sweeps · p² · max(r,c)), Space O(r·c + c²).
func SVD(m Matrix, tol float64, maxSweeps int) (*Dense, []float64, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	if tol <= 0 {
		tol = DefaultSVDTolerance
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultSVDMaxSweeps
	}

	rows, cols := m.Rows(), m.Cols()
	if rows < cols {
		mt, err := Transpose(m)
		if err != nil {
			return nil, nil, nil, matrixErrorf(opSVD, err)
		}
		u, s, v, err := svdTall(mt.(*Dense), tol, maxSweeps)
		if err != nil {
			return nil, nil, nil, err
		}
		// mᵀ = U'·S·V'ᵀ  ⇒  m = V'·S·U'ᵀ
		return v, s, u, nil
	}

	d, ok := m.(*Dense)
	if !ok {
		cl, err := newDenseZeroOK(rows, cols)
		if err != nil {
			return nil, nil, nil, matrixErrorf(opSVD, err)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, e := m.At(i, j)
				if e != nil {
					return nil, nil, nil, matrixErrorf(opSVD, e)
				}
				cl.data[i*cols+j] = v
			}
		}
		d = cl
	}

	return svdTall(d, tol, maxSweeps)
}

// svdTall runs the Jacobi sweeps on a matrix with rows ≥ cols.
func svdTall(a *Dense, tol float64, maxSweeps int) (*Dense, []float64, *Dense, error) {
	r, c := a.r, a.c

	// Column-major working copies: w[j] is column j of A·V, vc[j] is column j of V.
	w := make([][]float64, c)
	vc := make([][]float64, c)
	var i, j int
	for j = 0; j < c; j++ {
		w[j] = make([]float64, r)
		for i = 0; i < r; i++ {
			x := a.data[i*c+j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, nil, nil, matrixErrorf(opSVD, ErrNaNInf)
			}
			w[j][i] = x
		}
		vc[j] = make([]float64, c)
		vc[j][j] = 1
	}

	converged := c < 2
	for sweep := 0; sweep < maxSweeps && !converged; sweep++ {
		rotated := false
		for p := 0; p < c-1; p++ {
			for q := p + 1; q < c; q++ {
				alpha := dot(w[p], w[p])
				beta := dot(w[q], w[q])
				gamma := dot(w[p], w[q])
				if gamma == 0 || alpha == 0 || beta == 0 {
					continue
				}
				if math.Abs(gamma) <= tol*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true

				zeta := (beta - alpha) / (2 * gamma)
				t := math.Copysign(1, zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				cs := 1 / math.Sqrt(1+t*t)
				sn := cs * t
				rotate(w[p], w[q], cs, sn)
				rotate(vc[p], vc[q], cs, sn)
			}
		}
		converged = !rotated
	}
	if !converged {
		return nil, nil, nil, matrixErrorf(opSVD, ErrSVDFailed)
	}

	sigma := make([]float64, c)
	order := make([]int, c)
	for j = 0; j < c; j++ {
		sigma[j] = math.Sqrt(dot(w[j], w[j]))
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool { return sigma[order[x]] > sigma[order[y]] })

	u, _ := newDenseZeroOK(r, c)
	v, _ := newDenseZeroOK(c, c)
	s := make([]float64, c)
	for k, src := range order {
		s[k] = sigma[src]
		if s[k] > 0 {
			inv := 1 / s[k]
			for i = 0; i < r; i++ {
				u.data[i*c+k] = w[src][i] * inv
			}
		}
		for i = 0; i < c; i++ {
			v.data[i*c+k] = vc[src][i]
		}
	}

	return u, s, v, nil
}

// Reconstruct returns U[:, :k]·diag(S[:k])·V[:, :k]ᵀ.
//
// Implementation:
//   - Stage 1: Validate factors and 0 ≤ k ≤ len(S).
//   - Stage 2: Build B = U_k·diag(S_k) and C = V_kᵀ, then Mul(B, C).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadRank (wrapped with opReconstruct).
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Reconstruct(u Matrix, s []float64, v Matrix, k int) (Matrix, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	if u.Cols() != len(s) || v.Cols() != len(s) {
		return nil, matrixErrorf(opReconstruct, ErrDimensionMismatch)
	}
	if k < 0 || k > len(s) {
		return nil, matrixErrorf(opReconstruct, ErrBadRank)
	}

	r, c := u.Rows(), v.Rows()
	left, _ := newDenseZeroOK(r, k)
	right, _ := newDenseZeroOK(k, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < k; j++ {
			x, err := u.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opReconstruct, err)
			}
			left.data[i*k+j] = x * s[j]
		}
	}
	for i = 0; i < c; i++ {
		for j = 0; j < k; j++ {
			x, err := v.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opReconstruct, err)
			}
			right.data[j*c+i] = x
		}
	}

	out, err := Mul(left, right)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	return out, nil
}

func dot(a, b []float64) float64 {
	s := ZeroSum
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// rotate applies the plane rotation [c -s; s c] to the column pair (x, y).
func rotate(x, y []float64, c, s float64) {
	for i := range x {
		xp, xq := x[i], y[i]
		x[i] = c*xp - s*xq
		y[i] = s*xp + c*xq
	}
}
