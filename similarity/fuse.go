// SPDX-License-Identifier: MIT
// Package: similarity
//
// Purpose:
//   - Element-wise algebra over sparse matrices: average, max and the
//     base-preserving blend used to merge enriched scores back.
//
// Contract:
//   - Inputs are never modified; every function returns a fresh Matrix.
//   - Absent pairs count as 0.

package similarity

import "sort"

type pair struct{ s, t string }

// sortedKeys returns the union of (source, target) keys of ms, ordered by
// source then target.
func sortedKeys(ms ...*Matrix) []pair {
	set := make(map[pair]struct{})
	for _, m := range ms {
		for s, links := range m.rows {
			for _, l := range links {
				set[pair{s, l.Target}] = struct{}{}
			}
		}
	}
	keys := make([]pair, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].s != keys[j].s {
			return keys[i].s < keys[j].s
		}
		return keys[i].t < keys[j].t
	})

	return keys
}

// Average returns the element-wise mean of ms over the union of their
// keys. A pair is kept only when its mean is strictly positive.
func Average(ms ...*Matrix) *Matrix {
	out := New()
	if len(ms) == 0 {
		return out
	}
	n := float64(len(ms))
	for _, k := range sortedKeys(ms...) {
		sum := 0.0
		for _, m := range ms {
			sum += m.Score(k.s, k.t)
		}
		if avg := sum / n; avg > 0 {
			out.AddLink(k.s, k.t, avg)
		}
	}

	return out
}

// MaxOver returns max(a, b) for every pair in a's sources × a's targets.
// A pair is kept only when the maximum is strictly positive.
func MaxOver(a, b *Matrix) *Matrix {
	out := New()
	targets := a.Targets()
	for _, s := range a.Sources() {
		for _, t := range targets {
			v := a.Score(s, t)
			if w := b.Score(s, t); w > v {
				v = w
			}
			if v > 0 {
				out.AddLink(s, t, v)
			}
		}
	}

	return out
}

// FuseAverage deep-copies base and sets 0.5·(base + other) for every pair
// in base's sources × base's targets. Pairs outside that grid are ignored.
func FuseAverage(base, other *Matrix) *Matrix {
	out := base.Clone()
	targets := base.Targets()
	for _, s := range base.Sources() {
		for _, t := range targets {
			out.SetScore(s, t, 0.5*(base.Score(s, t)+other.Score(s, t)))
		}
	}

	return out
}
