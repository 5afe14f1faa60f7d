// SPDX-License-Identifier: MIT

package tdm

import (
	"strings"

	"github.com/katalvlaran/triad/artifact"
)

// FromBiterms builds the biterm variant: one column per biterm key, cells
// hold summed biterm weights. Documents are the sorted artifact ids.
// A nil extractor means artifact.DefaultExtractor.
func FromBiterms(c *artifact.Collection, ex artifact.Extractor) *TDM {
	arts := c.Artifacts()
	docs := make([]string, len(arts))
	counts := make([]map[string]float64, len(arts))
	for i, a := range arts {
		docs[i] = a.ID()
		row := make(map[string]float64)
		for _, b := range a.Biterms(ex) {
			row[b.Key()] += float64(b.Weight)
		}
		counts[i] = row
	}

	return fromCounts(docs, counts)
}

// FromTokens builds the token variant: one column per whitespace token of
// the processed text, cells hold token counts.
func FromTokens(c *artifact.Collection) *TDM {
	arts := c.Artifacts()
	docs := make([]string, len(arts))
	counts := make([]map[string]float64, len(arts))
	for i, a := range arts {
		docs[i] = a.ID()
		row := make(map[string]float64)
		for _, tok := range strings.Fields(a.ProcessedText()) {
			row[tok]++
		}
		counts[i] = row
	}

	return fromCounts(docs, counts)
}
