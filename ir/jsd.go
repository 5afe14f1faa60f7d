// SPDX-License-Identifier: MIT

package ir

import (
	"math"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/similarity"
	"github.com/katalvlaran/triad/tdm"
)

// JSD scores documents by 1 − Jensen-Shannon divergence of their token distributions.
type JSD struct{}

// NewJSD returns a JSD model.
func NewJSD() *JSD { return &JSD{} }

// Name returns "JSD".
func (*JSD) Name() string { return NameJSD }

// Compute implements Model.
//
// Implementation:
//   - Stage 1: Token matrices of source and target, equalized.
//   - Stage 2: Rows normalized to distributions (all-zero rows stay zero).
//   - Stage 3: similarity = max(0, 1 − JSD(P, Q)) per pair, rows sorted descending.
//
// Behavior highlights:
//   - A document without any token scores exactly 0 against everything.
func (*JSD) Compute(source, target *artifact.Collection) (*similarity.Matrix, error) {
	q, d := tdm.Equalize(tdm.FromTokens(source), tdm.FromTokens(target))
	q, d = q.Distributions(), d.Distributions()

	out := similarity.New()
	links := make([]similarity.Link, d.NumDocs())
	for i := 0; i < q.NumDocs(); i++ {
		p := q.Row(i)
		for j := 0; j < d.NumDocs(); j++ {
			links[j] = similarity.Link{Source: q.DocName(i), Target: d.DocName(j), Score: JSDSimilarity(p, d.Row(j))}
		}
		for _, l := range similarity.SortedDesc(links) {
			out.AddLink(l.Source, l.Target, l.Score)
		}
	}

	return out, nil
}

// JSDSimilarity returns max(0, 1 − JSD(p, q)) for two distributions of
// equal length, where JSD(p, q) = H((p+q)/2) − (H(p)+H(q))/2 in bits.
// It returns 0 when either vector is all zeros.
func JSDSimilarity(p, q []float64) float64 {
	var sp, sq float64
	for k := range p {
		sp += p[k]
		sq += q[k]
	}
	if sp == 0 || sq == 0 {
		return 0
	}

	mid := 0.0
	for k := range p {
		mid += xlog2x(0.5 * (p[k] + q[k]))
	}
	divergence := mid - 0.5*(Entropy(p)+Entropy(q))

	return clamp01(1 - divergence)
}

// Entropy returns the base-2 Shannon entropy of a distribution, with 0·log 0 = 0.
func Entropy(p []float64) float64 {
	h := 0.0
	for _, v := range p {
		h += xlog2x(v)
	}
	return h
}

func xlog2x(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return -v * math.Log2(v)
}
