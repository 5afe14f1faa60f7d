// Package tdm provides labelled term-document matrices over matrix.Dense.
//
// Rows are documents and columns are terms, both addressed by label. Builders
// turn artifact collections into matrices (biterm or token vocabulary),
// Equalize aligns two matrices on the union of their terms, and the
// weighting helpers (TF, DF, IDF, TF-IDF, rank reduction, row
// distributions) transform a matrix in place.
package tdm
