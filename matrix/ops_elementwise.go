// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise micro-kernels shared by statistics and reconstruction code.
//   - Each kernel allocates exactly one result and never mutates its input.
//
// Determinism & Performance:
//   - Fixed i→j traversal; *Dense fast-paths operate on the flat buffer.

package matrix

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// AI-Hint: use for L1/L2 row-normalization.
func ewScaleRows(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != r {
		return nil, matrixErrorf("scaleRows", ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf("scaleRows", err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c  // row base offset
			sf := scale[i] // scale factor for row i
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("scaleRows", e)
			}
			out.data[i*c+j] = v * sf
		}
	}
	return out, nil
}

// ewClipMin copies X replacing every value ≤ floor by floor.
// LSI reconstruction uses floor = 0 so that non-positive latent weights vanish.
// Time: O(r*c). Space: O(r*c).
func ewClipMin(X Matrix, floor float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("clipMin", err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf("clipMin", err)
	}

	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			if v <= floor {
				v = floor
			}
			out.data[idx] = v
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("clipMin", e)
			}
			if v <= floor {
				v = floor
			}
			out.data[i*c+j] = v
		}
	}
	return out, nil
}
