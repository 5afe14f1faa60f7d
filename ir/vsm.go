// SPDX-License-Identifier: MIT
// Package: ir
//
// Purpose:
//   - VSM and LSI: TF-IDF weighting on the combined source+target matrix,
//     optional rank reduction, then cosine similarity of source rows
//     against target rows.

package ir

import (
	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/matrix"
	"github.com/katalvlaran/triad/similarity"
	"github.com/katalvlaran/triad/tdm"
)

// VSM is the vector-space model with TF-IDF weights.
type VSM struct {
	opts Options
}

// NewVSM returns a VSM model. A nil opts uses DefaultOptions().
func NewVSM(opts *Options) *VSM {
	return &VSM{opts: resolve(opts)}
}

// Name returns "VSM".
func (m *VSM) Name() string { return NameVSM }

// Compute implements Model.
//
// Implementation:
//   - Stage 1: Build the combined matrix and apply TF, DF, IDF, TF-IDF.
//   - Stage 2: Build identity matrices of the source and target documents,
//     equalize them against the TF-IDF vocabulary, replace cells by TF-IDF.
//   - Stage 3: Cosine of every (source, target) row pair, rows sorted descending.
//
// Complexity:
//   - Time O(|S|·|T|·|V|), Space O((|S|+|T|)·|V|).
func (m *VSM) Compute(source, target *artifact.Collection) (*similarity.Matrix, error) {
	return vectorSpace(source, target, m.opts, -1)
}

// LSI is VSM over a rank-reduced TF-IDF matrix.
type LSI struct {
	opts Options
}

// NewLSI returns an LSI model. A nil opts uses DefaultOptions().
func NewLSI(opts *Options) *LSI {
	return &LSI{opts: resolve(opts)}
}

// Name returns "LSI".
func (m *LSI) Name() string { return NameLSI }

// Compute implements Model. The TF-IDF matrix is replaced by its rank-k SVD
// reconstruction, k = min(|source|, |target|, MaxRank), non-positive cells set to 0.
//
// Errors:
//   - matrix.ErrSVDFailed (wrapped) when the decomposition does not converge.
func (m *LSI) Compute(source, target *artifact.Collection) (*similarity.Matrix, error) {
	k := min(source.Len(), target.Len(), m.opts.MaxRank)
	return vectorSpace(source, target, m.opts, k)
}

func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	o := *opts
	if o.Extractor == nil {
		o.Extractor = artifact.DefaultExtractor
	}
	if o.MaxRank <= 0 {
		o.MaxRank = DefaultMaxRank
	}
	return o
}

func build(c *artifact.Collection, opts Options) *tdm.TDM {
	if opts.Vocabulary == TokenVocabulary {
		return tdm.FromTokens(c)
	}
	return tdm.FromBiterms(c, opts.Extractor)
}

// vectorSpace runs the shared VSM/LSI pipeline; rank < 0 disables reduction.
func vectorSpace(source, target *artifact.Collection, opts Options, rank int) (*similarity.Matrix, error) {
	weights := build(artifact.Merge(source, target), opts).TFIDF()
	if rank >= 0 {
		if _, err := weights.ReduceRank(rank); err != nil {
			return nil, irErrorf("vectorSpace", err)
		}
	}

	queries, _ := tdm.Equalize(build(source, opts).Identity(), weights)
	documents, _ := tdm.Equalize(build(target, opts).Identity(), weights)
	queries.ReplaceFrom(weights)
	documents.ReplaceFrom(weights)

	return cosineMatrix(queries, documents), nil
}

// cosineMatrix scores every row of q against every row of d. Row norms are
// computed once per side.
func cosineMatrix(q, d *tdm.TDM) *similarity.Matrix {
	q, d = tdm.Equalize(q, d)
	qNorms, _ := matrix.RowNormsL2(q.Data())
	dNorms, _ := matrix.RowNormsL2(d.Data())
	out := similarity.New()
	links := make([]similarity.Link, d.NumDocs())
	for i := 0; i < q.NumDocs(); i++ {
		src := q.DocName(i)
		for j := 0; j < d.NumDocs(); j++ {
			score := cosineNormed(q.Row(i), d.Row(j), qNorms[i], dNorms[j])
			links[j] = similarity.Link{Source: src, Target: d.DocName(j), Score: score}
		}
		for _, l := range similarity.SortedDesc(links) {
			out.AddLink(l.Source, l.Target, l.Score)
		}
	}

	return out
}
