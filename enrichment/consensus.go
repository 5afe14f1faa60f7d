// SPDX-License-Identifier: MIT

package enrichment

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/similarity"
)

// Candidate is a biterm key chosen for an artifact by neighbor consensus.
type Candidate struct {
	Key   string
	Score float64 // summed weighted vote
	Reps  int     // times the biterm is appended
}

// Stats summarizes one Extend call.
type Stats struct {
	Artifacts     int
	KeptBiterms   int // biterms appended at least once, over all artifacts
	AppendedTerms int // terms written into text bodies, over all artifacts
}

// FrequencyMaps returns artifact id → (biterm key → summed weight) for every
// artifact of c.
func FrequencyMaps(c *artifact.Collection, ex artifact.Extractor) map[string]map[string]int {
	out := make(map[string]map[string]int, c.Len())
	for _, a := range c.Artifacts() {
		out[a.ID()] = artifact.Frequencies(a.Biterms(ex))
	}
	return out
}

// Votes scores candidate biterms for one artifact from its bridge row.
//
// Neighbors are the links scoring at least rowMax·M, ranked by descending
// score (stable) and truncated to TopK. Every (key, freq) of a neighbor's
// frequency map adds (score/rowMax)·ln(1+freq) to key.
//
// An empty row, or a row whose maximum is not positive, yields no votes.
func Votes(row []similarity.Link, neighbors map[string]map[string]int, opts Options) map[string]float64 {
	votes := make(map[string]float64)
	rowMax := 0.0
	for _, l := range row {
		if l.Score > rowMax {
			rowMax = l.Score
		}
	}
	if rowMax <= 0 {
		return votes
	}

	cut := rowMax * opts.M
	ranked := similarity.SortedDesc(row)
	taken := 0
	for _, l := range ranked {
		if taken == opts.TopK {
			break
		}
		if l.Score < cut {
			continue
		}
		taken++
		weight := l.Score / rowMax
		for key, freq := range neighbors[l.Target] {
			votes[key] += weight * math.Log1p(float64(freq))
		}
	}

	return votes
}

// Select keeps the votes reaching MinAgreements, orders them by descending
// score (ties by key) and truncates to MaxBitermsPerDoc. Candidates whose
// repetition count rounds to zero are dropped.
func Select(votes map[string]float64, opts Options) []Candidate {
	out := make([]Candidate, 0, len(votes))
	for key, score := range votes {
		if score < opts.MinAgreements-agreementSlack {
			continue
		}
		out = append(out, Candidate{Key: key, Score: score, Reps: opts.Reps(score)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > opts.MaxBitermsPerDoc {
		out = out[:opts.MaxBitermsPerDoc]
	}

	kept := out[:0]
	for _, c := range out {
		if c.Reps > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

// Extend returns a new collection in which every artifact of c that has
// candidates carries the extra line "t1 t2 t1 t2 ..." (each candidate's
// two terms, Reps times) and gains each candidate biterm with weight Reps.
// Artifacts without candidates are copied unchanged and c is never modified.
func Extend(c *artifact.Collection, selected map[string][]Candidate) (*artifact.Collection, Stats) {
	out := artifact.NewCollection()
	st := Stats{Artifacts: c.Len()}
	for _, a := range c.Artifacts() {
		cands := selected[a.ID()]
		if len(cands) == 0 {
			out.Add(a)
			continue
		}

		var (
			line     strings.Builder
			appended []artifact.Biterm
		)
		for _, cand := range cands {
			t1, t2 := artifact.SplitKey(cand.Key)
			if t1 == "" || t2 == "" {
				continue
			}
			st.KeptBiterms++
			for i := 0; i < cand.Reps; i++ {
				line.WriteString(t1)
				line.WriteByte(' ')
				line.WriteString(t2)
				line.WriteByte(' ')
				st.AppendedTerms += 2
			}
			appended = append(appended, artifact.NewBiterm(t1, t2, cand.Reps))
		}
		out.Add(a.WithAppendedText(strings.TrimSpace(line.String()), appended))
	}

	return out, st
}

// Consensus runs Votes and Select for every artifact of c against its row
// in bridge, drawing neighbor vocabularies from neighbors.
func Consensus(c *artifact.Collection, bridge *similarity.Matrix, neighbors map[string]map[string]int, opts Options) map[string][]Candidate {
	out := make(map[string][]Candidate, c.Len())
	for _, id := range c.IDs() {
		if cands := Select(Votes(bridge.Links(id), neighbors, opts), opts); len(cands) > 0 {
			out[id] = cands
		}
	}
	return out
}
