// Package matrix offers the dense numeric core behind term-document scoring.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 table with bounds-checked At/Set and a
//     NaN/Inf guard, plus RowView for allocation-free scoring loops.
//   - Kernels: Mul, Transpose.
//   - Row statistics: RowSums, NormalizeRowsL1 (count rows → distributions),
//     RowNormsL2.
//   - SVD via one-sided Jacobi rotations, Reconstruct for rank-k slices and
//     the LowRank/ClipMin pair used for latent-semantic denoising.
//
// All kernels are deterministic: loop orders are fixed and no map iteration
// is involved, so identical inputs give bit-identical outputs.
package matrix
