// SPDX-License-Identifier: MIT
// Package: similarity
//
// Purpose:
//   - Sparse source → ranked links structure shared by every pipeline stage.
//   - Absent pairs score 0 on lookup and are never materialized.
//
// Determinism:
//   - Per-source link order is insertion order; every multi-source view
//     (AllLinks, TopK, thresholds, CSV) walks sources in sorted order.

package similarity

import (
	"sort"
)

// Link is one scored (source, target) pair.
type Link struct {
	Source string
	Target string
	Score  float64
}

// Matrix maps each source id to its links.
// The zero value is not usable; call New.
type Matrix struct {
	rows map[string][]Link
}

// New returns an empty matrix.
func New() *Matrix {
	return &Matrix{rows: make(map[string][]Link)}
}

// AddLink appends a link. Repeated pairs are kept as duplicates.
func (m *Matrix) AddLink(source, target string, score float64) {
	m.rows[source] = append(m.rows[source], Link{Source: source, Target: target, Score: score})
}

// SetScore removes every existing (source, target) link and appends one with score.
func (m *Matrix) SetScore(source, target string, score float64) {
	links := m.rows[source]
	kept := links[:0]
	for _, l := range links {
		if l.Target != target {
			kept = append(kept, l)
		}
	}
	m.rows[source] = append(kept, Link{Source: source, Target: target, Score: score})
}

// Score returns the score of the first (source, target) link, or 0 when
// absent. Later duplicates added by AddLink are ignored here and by WriteCSV.
func (m *Matrix) Score(source, target string) float64 {
	for _, l := range m.rows[source] {
		if l.Target == target {
			return l.Score
		}
	}
	return 0
}

// Has reports whether at least one (source, target) link exists.
func (m *Matrix) Has(source, target string) bool {
	for _, l := range m.rows[source] {
		if l.Target == target {
			return true
		}
	}
	return false
}

// Links returns a copy of the links of source in insertion order, or nil.
func (m *Matrix) Links(source string) []Link {
	links, ok := m.rows[source]
	if !ok {
		return nil
	}
	return append([]Link(nil), links...)
}

// Sources returns the sorted source ids that own at least one link slot.
func (m *Matrix) Sources() []string {
	out := make([]string, 0, len(m.rows))
	for s := range m.rows {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Targets returns the sorted set of target ids over all links.
func (m *Matrix) Targets() []string {
	set := make(map[string]struct{})
	for _, links := range m.rows {
		for _, l := range links {
			set[l.Target] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)

	return out
}

// Len returns the total number of links, duplicates included.
func (m *Matrix) Len() int {
	n := 0
	for _, links := range m.rows {
		n += len(links)
	}
	return n
}

// AllLinks returns every link, sources in sorted order, links in insertion order.
func (m *Matrix) AllLinks() []Link {
	out := make([]Link, 0, m.Len())
	for _, s := range m.Sources() {
		out = append(out, m.rows[s]...)
	}
	return out
}

// LinksAbove returns the links with score strictly greater than threshold.
func (m *Matrix) LinksAbove(threshold float64) []Link {
	return m.filter(func(l Link) bool { return l.Score > threshold })
}

// LinksBelow returns the links with score strictly less than threshold.
func (m *Matrix) LinksBelow(threshold float64) []Link {
	return m.filter(func(l Link) bool { return l.Score < threshold })
}

func (m *Matrix) filter(keep func(Link) bool) []Link {
	var out []Link
	for _, s := range m.Sources() {
		for _, l := range m.rows[s] {
			if keep(l) {
				out = append(out, l)
			}
		}
	}
	return out
}

// TopK returns, per source, the k highest-scoring links. Each row is stably
// sorted ascending and its last k links are taken, so the result per source
// is in ascending score order. A k larger than a row returns the whole row.
// The matrix is not modified.
//
// Errors:
//   - ErrNegativeK when k < 0.
func (m *Matrix) TopK(k int) ([]Link, error) {
	if k < 0 {
		return nil, ErrNegativeK
	}
	var out []Link
	for _, s := range m.Sources() {
		row := append([]Link(nil), m.rows[s]...)
		sort.SliceStable(row, func(i, j int) bool { return row[i].Score < row[j].Score })
		if k < len(row) {
			row = row[len(row)-k:]
		}
		out = append(out, row...)
	}

	return out, nil
}

// Clone returns a deep copy sharing no mutable state with m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: make(map[string][]Link, len(m.rows))}
	for s, links := range m.rows {
		c.rows[s] = append([]Link(nil), links...)
	}
	return c
}

// SortedDesc returns a copy of links stably sorted by descending score.
func SortedDesc(links []Link) []Link {
	out := append([]Link(nil), links...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
