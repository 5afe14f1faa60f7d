// SPDX-License-Identifier: MIT
// Package: tdm
//
// Purpose:
//   - Weighting transforms of the vector-space pipeline: TF, DF, IDF, TF-IDF,
//     binary identity, lookup replacement and rank reduction.
//
// Contract:
//   - Transforms named as methods mutate the receiver and return it, so calls chain:
//     m.Identity().ReplaceFrom(weights). DF and IDF are read-only.

package tdm

import (
	"math"

	"github.com/katalvlaran/triad/matrix"
)

// TF divides every row by its row sum. Rows summing to 0 are left untouched.
func (t *TDM) TF() *TDM {
	sums, err := matrix.RowSums(t.data)
	if err != nil {
		return t
	}
	for i, sum := range sums {
		if sum == 0 {
			continue
		}
		row := t.data.RowView(i)
		for j := range row {
			row[j] /= sum
		}
	}

	return t
}

// DF returns, per term, the number of documents with a value > 0.
func (t *TDM) DF() []float64 {
	df := make([]float64, len(t.terms))
	for i := range t.docs {
		for j, v := range t.data.RowView(i) {
			if v > 0 {
				df[j]++
			}
		}
	}

	return df
}

// IDF returns ln(n/df) per term, or 0 where df is 0.
func IDF(df []float64, n int) []float64 {
	idf := make([]float64, len(df))
	for j, d := range df {
		if d > 0 {
			idf[j] = math.Log(float64(n) / d)
		}
	}

	return idf
}

// scaleTerms multiplies column j by w[j]; len(w) == NumTerms().
func (t *TDM) scaleTerms(w []float64) *TDM {
	for i := range t.docs {
		row := t.data.RowView(i)
		for j := range row {
			row[j] *= w[j]
		}
	}

	return t
}

// TFIDF applies TF, then scales every term by its IDF over this matrix.
func (t *TDM) TFIDF() *TDM {
	t.TF()
	return t.scaleTerms(IDF(t.DF(), t.NumDocs()))
}

// Identity replaces every cell by 1 when it is > 0 and by 0 otherwise.
func (t *TDM) Identity() *TDM {
	for i := range t.docs {
		row := t.data.RowView(i)
		for j, v := range row {
			if v > 0 {
				row[j] = 1
			} else {
				row[j] = 0
			}
		}
	}

	return t
}

// ReplaceFrom overwrites every cell (doc, term) with src.Value(doc, term);
// labels unknown to src become 0.
func (t *TDM) ReplaceFrom(src *TDM) *TDM {
	for i, doc := range t.docs {
		row := t.data.RowView(i)
		for j, term := range t.terms {
			row[j] = src.Value(doc, term)
		}
	}

	return t
}

// ReduceRank replaces the table by its rank-k SVD reconstruction with
// non-positive values set to 0. k is clamped to [0, min(docs, terms)].
// The factorization is taken over the terms × documents orientation; the
// reconstruction is identical for either orientation.
//
// Errors:
//   - matrix.ErrSVDFailed when the Jacobi sweeps do not converge.
func (t *TDM) ReduceRank(k int) (*TDM, error) {
	termsByDocs, err := matrix.Transpose(t.data)
	if err != nil {
		return nil, tdmErrorf("ReduceRank", err)
	}
	low, err := matrix.LowRank(termsByDocs, k)
	if err != nil {
		return nil, tdmErrorf("ReduceRank", err)
	}
	clipped, err := matrix.ClipMin(low, 0)
	if err != nil {
		return nil, tdmErrorf("ReduceRank", err)
	}
	back, err := matrix.Transpose(clipped)
	if err != nil {
		return nil, tdmErrorf("ReduceRank", err)
	}
	t.data = back.(*matrix.Dense)

	return t, nil
}

// Distributions returns a copy of the table with every row scaled to sum
// to 1. All-zero rows stay zero.
func (t *TDM) Distributions() *TDM {
	out := t.Clone()
	p, _, err := matrix.NormalizeRowsL1(t.data)
	if err == nil {
		out.data = p.(*matrix.Dense)
	}

	return out
}
