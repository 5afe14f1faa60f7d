// SPDX-License-Identifier: MIT

package ir

import "math"

// Cosine returns a·b / (‖a‖·‖b‖) for equal-length vectors, 0 when either
// norm is 0. The result is clamped to [0, 1] for non-negative inputs.
func Cosine(a, b []float64) float64 {
	var aa, bb float64
	for k := range a {
		aa += a[k] * a[k]
		bb += b[k] * b[k]
	}

	return cosineNormed(a, b, math.Sqrt(aa), math.Sqrt(bb))
}

// cosineNormed is Cosine with the Euclidean norms of a and b given.
func cosineNormed(a, b []float64, na, nb float64) float64 {
	cross := na * nb
	if cross == 0 {
		return 0
	}
	var dot float64
	for k := range a {
		dot += a[k] * b[k]
	}

	return clamp01(dot / cross)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
