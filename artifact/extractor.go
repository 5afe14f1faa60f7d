// SPDX-License-Identifier: MIT

package artifact

import (
	"strings"

	"github.com/katalvlaran/triad/textproc"
)

// Extractor turns a raw text body into weighted biterms. Implementations
// must be safe for concurrent use and deterministic for a given input.
type Extractor interface {
	Extract(kind Kind, text string) []Biterm
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(kind Kind, text string) []Biterm

// Extract calls f(kind, text).
func (f ExtractorFunc) Extract(kind Kind, text string) []Biterm { return f(kind, text) }

// DefaultExtractor is the extractor used when none is supplied.
var DefaultExtractor Extractor = CooccurrenceExtractor{}

// Weights used by CooccurrenceExtractor for code identifiers.
const (
	declaredIdentifierWeight = 2
	identifierWeight         = 1
)

// CooccurrenceExtractor pairs terms that occur together.
//
// Prose: every pair of adjacent processed terms within a sentence yields a
// biterm of weight 1 per occurrence.
//
// Code: comments are treated as prose; the split terms of each identifier
// are paired with each other (all pairs), with declared type names counting
// double.
//
// Pairs of identical terms are skipped.
type CooccurrenceExtractor struct{}

// Extract implements Extractor.
func (CooccurrenceExtractor) Extract(kind Kind, text string) []Biterm {
	var out []Biterm
	if !kind.IsCode() {
		return proseBiterms(out, text)
	}

	parts := textproc.ExtractCode(text, kind.language())
	for _, c := range parts.Comments {
		out = proseBiterms(out, c)
	}
	declared := make(map[string]struct{}, len(parts.Declared))
	for _, d := range parts.Declared {
		declared[d] = struct{}{}
	}
	for _, id := range parts.Identifiers {
		w := identifierWeight
		if _, ok := declared[id]; ok {
			w = declaredIdentifierWeight
		}
		terms := strings.Fields(textproc.ProcessWord(id))
		for i := 0; i < len(terms)-1; i++ {
			for j := i + 1; j < len(terms); j++ {
				if terms[i] != terms[j] {
					out = append(out, NewBiterm(terms[i], terms[j], w))
				}
			}
		}
	}

	return out
}

func proseBiterms(out []Biterm, text string) []Biterm {
	for _, sentence := range textproc.Sentences(text) {
		terms := textproc.Tokens(sentence)
		for i := 0; i+1 < len(terms); i++ {
			if terms[i] != terms[i+1] {
				out = append(out, NewBiterm(terms[i], terms[i+1], 1))
			}
		}
	}
	return out
}
