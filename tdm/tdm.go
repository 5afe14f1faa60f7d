// SPDX-License-Identifier: MIT
// Package: tdm
//
// Purpose:
//   - Labelled documents × terms table over matrix.Dense.
//   - Document and term indices are stable for the lifetime of a TDM; term
//     names are sorted, document names are sorted when built from a collection.
//
// Determinism:
//   - Every builder sorts its labels; no output depends on map iteration order.

package tdm

import (
	"sort"

	"github.com/katalvlaran/triad/matrix"
)

// TDM is a term-document matrix: row i is document docs[i], column j is term terms[j].
type TDM struct {
	docs    []string
	terms   []string
	docIdx  map[string]int
	termIdx map[string]int
	data    *matrix.Dense
}

// New wraps data with the given labels. The labels are copied; data is
// adopted as-is.
//
// Errors:
//   - ErrShape when len(docs) != rows or len(terms) != cols.
//   - ErrDuplicateLabel when a name repeats.
func New(docs, terms []string, data *matrix.Dense) (*TDM, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, tdmErrorf("New", err)
	}
	if len(docs) != data.Rows() || len(terms) != data.Cols() {
		return nil, tdmErrorf("New", ErrShape)
	}
	t := &TDM{
		docs:  append([]string(nil), docs...),
		terms: append([]string(nil), terms...),
		data:  data,
	}
	var err error
	if t.docIdx, err = indexOf(t.docs); err != nil {
		return nil, tdmErrorf("New", err)
	}
	if t.termIdx, err = indexOf(t.terms); err != nil {
		return nil, tdmErrorf("New", err)
	}

	return t, nil
}

// fromCounts builds a TDM from per-document term counts. Documents keep the
// given order; terms are the sorted union of all keys.
func fromCounts(docs []string, counts []map[string]float64) *TDM {
	vocab := make(map[string]struct{})
	for _, c := range counts {
		for term := range c {
			vocab[term] = struct{}{}
		}
	}
	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	data, _ := matrix.NewZeros(len(docs), len(terms))
	t := &TDM{docs: docs, terms: terms, data: data}
	t.docIdx, _ = indexOf(docs)
	t.termIdx, _ = indexOf(terms)
	for i, c := range counts {
		row := data.RowView(i)
		for term, v := range c {
			row[t.termIdx[term]] += v
		}
	}

	return t
}

func indexOf(names []string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := idx[n]; dup {
			return nil, ErrDuplicateLabel
		}
		idx[n] = i
	}
	return idx, nil
}

// NumDocs returns the number of documents (rows).
func (t *TDM) NumDocs() int { return len(t.docs) }

// NumTerms returns the vocabulary size (columns).
func (t *TDM) NumTerms() int { return len(t.terms) }

// Docs returns a copy of the document names in row order.
func (t *TDM) Docs() []string { return append([]string(nil), t.docs...) }

// Terms returns a copy of the term names in column order.
func (t *TDM) Terms() []string { return append([]string(nil), t.terms...) }

// DocName returns the name of row i.
func (t *TDM) DocName(i int) string { return t.docs[i] }

// TermName returns the name of column j.
func (t *TDM) TermName(j int) string { return t.terms[j] }

// DocIndex returns the row of a document.
func (t *TDM) DocIndex(doc string) (int, bool) {
	i, ok := t.docIdx[doc]
	return i, ok
}

// TermIndex returns the column of a term.
func (t *TDM) TermIndex(term string) (int, bool) {
	j, ok := t.termIdx[term]
	return j, ok
}

// Value returns the cell for (doc, term), or 0 when either label is unknown.
func (t *TDM) Value(doc, term string) float64 {
	i, ok := t.docIdx[doc]
	if !ok {
		return 0
	}
	j, ok := t.termIdx[term]
	if !ok {
		return 0
	}
	v, _ := t.data.At(i, j)

	return v
}

// Row returns row i aliasing the table. Callers must not write through it.
func (t *TDM) Row(i int) []float64 { return t.data.RowView(i) }

// Data returns the underlying table.
func (t *TDM) Data() *matrix.Dense { return t.data }

// Clone returns a deep copy.
func (t *TDM) Clone() *TDM {
	c := &TDM{
		docs:    t.Docs(),
		terms:   t.Terms(),
		docIdx:  make(map[string]int, len(t.docIdx)),
		termIdx: make(map[string]int, len(t.termIdx)),
		data:    t.data.Clone().(*matrix.Dense),
	}
	for k, v := range t.docIdx {
		c.docIdx[k] = v
	}
	for k, v := range t.termIdx {
		c.termIdx[k] = v
	}

	return c
}

// Equalize re-expresses a and b over the sorted union of their
// vocabularies. Both results keep their own documents and values; terms
// missing from one side become zero columns. The inputs are not modified.
//
// Complexity:
//   - Time O((|Da| + |Db|) · |V|), Space the same.
func Equalize(a, b *TDM) (*TDM, *TDM) {
	vocab := make(map[string]struct{}, len(a.terms)+len(b.terms))
	for _, term := range a.terms {
		vocab[term] = struct{}{}
	}
	for _, term := range b.terms {
		vocab[term] = struct{}{}
	}
	terms := make([]string, 0, len(vocab))
	for term := range vocab {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	return reshape(a, terms), reshape(b, terms)
}

// reshape copies old onto the column layout given by terms.
func reshape(old *TDM, terms []string) *TDM {
	data, _ := matrix.NewZeros(len(old.docs), len(terms))
	out := &TDM{docs: old.Docs(), terms: append([]string(nil), terms...), data: data}
	out.docIdx, _ = indexOf(out.docs)
	out.termIdx, _ = indexOf(out.terms)

	for i := range old.docs {
		src := old.data.RowView(i)
		dst := data.RowView(i)
		for j, term := range old.terms {
			dst[out.termIdx[term]] = src[j]
		}
	}

	return out
}
