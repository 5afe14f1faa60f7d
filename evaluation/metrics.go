// SPDX-License-Identifier: MIT

package evaluation

import (
	"sort"

	"github.com/katalvlaran/triad/similarity"
)

// ElevenPointLevels is the number of recall levels of the classic
// 11-point interpolated curve (0.0, 0.1, …, 1.0).
const ElevenPointLevels = 11

// PRF holds precision, recall and F1.
type PRF struct {
	Precision float64
	Recall    float64
	F1        float64
}

type linkKey struct{ s, t string }

// ComputePRF treats links as the retrieved set. Links are unique by
// (source, target); scores are ignored. An empty retrieved set or an empty
// gold standard yields zeros for the undefined ratios.
func ComputePRF(links []similarity.Link, gold *GoldStandard) PRF {
	seen := make(map[linkKey]struct{}, len(links))
	tp := 0
	for _, l := range links {
		k := linkKey{l.Source, l.Target}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if gold.IsLink(l.Source, l.Target) {
			tp++
		}
	}

	var p, r float64
	if len(seen) > 0 {
		p = float64(tp) / float64(len(seen))
	}
	if total := gold.TotalRelevantLinks(); total > 0 {
		r = float64(tp) / float64(total)
	}
	return PRF{Precision: p, Recall: r, F1: FMeasure(p, r)}
}

// Precision is the fraction of retrieved links (duplicates included) that
// are true links, or 0 for an empty list.
func Precision(retrieved []similarity.Link, gold *GoldStandard) float64 {
	if len(retrieved) == 0 {
		return 0
	}
	return float64(countCorrect(retrieved, gold)) / float64(len(retrieved))
}

// Recall is the number of correct retrieved links over the gold-standard
// size, or 0 when either is empty.
func Recall(retrieved []similarity.Link, gold *GoldStandard) float64 {
	total := gold.TotalRelevantLinks()
	if len(retrieved) == 0 || total == 0 {
		return 0
	}
	return float64(countCorrect(retrieved, gold)) / float64(total)
}

func countCorrect(links []similarity.Link, gold *GoldStandard) int {
	n := 0
	for _, l := range links {
		if gold.IsLink(l.Source, l.Target) {
			n++
		}
	}
	return n
}

// FMeasure is the harmonic mean of p and r, 0 when both are 0.
func FMeasure(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// AveragePrecision scores one ranked list against the relevant targets:
// the sum of precision@i over the ranks i holding a relevant target,
// divided by the number of relevant targets.
func AveragePrecision(ranked []similarity.Link, relevant []string) float64 {
	if len(ranked) == 0 || len(relevant) == 0 {
		return 0
	}
	rel := make(map[string]struct{}, len(relevant))
	for _, t := range relevant {
		rel[t] = struct{}{}
	}
	sum, hits := 0.0, 0
	for i, l := range ranked {
		if _, ok := rel[l.Target]; ok {
			hits++
			sum += float64(hits) / float64(i+1)
		}
	}
	return sum / float64(len(rel))
}

// MAP is the mean average precision over the sources of m, each row
// ranked by descending score (stable).
func MAP(m *similarity.Matrix, gold *GoldStandard) float64 {
	sources := m.Sources()
	if len(sources) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range sources {
		sum += AveragePrecision(similarity.SortedDesc(m.Links(s)), gold.RelevantLinks(s))
	}
	return sum / float64(len(sources))
}

// RecallLevel returns the i-th of levels recall cut-offs: i/10 for the
// 11-point curve, (i+1)/levels otherwise.
func RecallLevel(i, levels int) float64 {
	if levels == ElevenPointLevels {
		return float64(i) / 10.0
	}
	return float64(i+1) / float64(levels)
}

// PrecisionAtRecallLevels returns the interpolated precision at each
// recall level: the best precision over every rank of the globally ranked
// link list whose recall reaches the level.
//
// Errors:
//   - ErrBadLevels when levels < 1.
func PrecisionAtRecallLevels(m *similarity.Matrix, gold *GoldStandard, levels int) ([]float64, error) {
	if levels < 1 {
		return nil, evalErrorf("PrecisionAtRecallLevels", ErrBadLevels)
	}
	out := make([]float64, levels)
	total := gold.TotalRelevantLinks()
	if total == 0 {
		return out, nil
	}

	ranked := similarity.SortedDesc(m.AllLinks())
	recalls := make([]float64, len(ranked))
	precisions := make([]float64, len(ranked))
	correct := 0
	for i, l := range ranked {
		if gold.IsLink(l.Source, l.Target) {
			correct++
		}
		recalls[i] = float64(correct) / float64(total)
		precisions[i] = float64(correct) / float64(i+1)
	}
	// Recall never decreases along the ranking, so the admissible ranks of a
	// level form a suffix.
	best := make([]float64, len(ranked)+1)
	for i := len(ranked) - 1; i >= 0; i-- {
		best[i] = best[i+1]
		if precisions[i] > best[i] {
			best[i] = precisions[i]
		}
	}
	for i := range out {
		level := RecallLevel(i, levels)
		j := sort.Search(len(recalls), func(k int) bool { return recalls[k] >= level })
		out[i] = best[j]
	}

	return out, nil
}

// FMeasuresAt11 combines the 11-point interpolated precision with each
// recall level into an F-measure.
func FMeasuresAt11(m *similarity.Matrix, gold *GoldStandard) []float64 {
	prec, _ := PrecisionAtRecallLevels(m, gold, ElevenPointLevels)
	out := make([]float64, ElevenPointLevels)
	for i, p := range prec {
		out[i] = FMeasure(p, RecallLevel(i, ElevenPointLevels))
	}
	return out
}
