// SPDX-License-Identifier: MIT

package transitivity

import "github.com/katalvlaran/triad/similarity"

// TopLinks returns the links of id in m scoring at least rowMax·thr, ranked
// by descending score (stable) and truncated to k. It returns nil when the
// row is empty, its maximum is 0, or k < 1.
func TopLinks(m *similarity.Matrix, id string, k int, thr float64) []similarity.Link {
	if m == nil || k < 1 {
		return nil
	}
	row := m.Links(id)
	if len(row) == 0 {
		return nil
	}
	rowMax := row[0].Score
	for _, l := range row[1:] {
		if l.Score > rowMax {
			rowMax = l.Score
		}
	}
	if rowMax == 0 {
		return nil
	}

	cut := rowMax * thr
	out := make([]similarity.Link, 0, k)
	for _, l := range similarity.SortedDesc(row) {
		if len(out) == k {
			break
		}
		if l.Score >= cut {
			out = append(out, l)
		}
	}
	return out
}
