// SPDX-License-Identifier: MIT

package ir

import (
	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/similarity"
)

// Model names as reported by Name().
const (
	NameVSM   = "VSM"
	NameLSI   = "LSI"
	NameJSD   = "JSD"
	NameUnion = "IR-UNION"
)

// DefaultMaxRank caps the LSI rank.
const DefaultMaxRank = 100

// Model scores every source artifact against every target artifact.
// Implementations never modify the collections they are given.
type Model interface {
	Name() string
	Compute(source, target *artifact.Collection) (*similarity.Matrix, error)
}

// Vocabulary selects how documents are turned into term columns.
//
//   - BitermVocabulary: one column per biterm key, weighted by biterm weight.
//   - TokenVocabulary:  one column per processed token, weighted by count.
type Vocabulary int

const (
	// BitermVocabulary uses extracted (or precomputed) biterms.
	BitermVocabulary Vocabulary = iota

	// TokenVocabulary uses whitespace tokens of the processed text.
	TokenVocabulary
)

// Options configures the vector-space models.
//
// Fields:
//   - Extractor:  biterm source for BitermVocabulary; nil means artifact.DefaultExtractor.
//   - Vocabulary: column space of VSM and LSI. JSD always uses tokens.
//   - MaxRank:    LSI rank cap; k = min(|source|, |target|, MaxRank).
type Options struct {
	Extractor  artifact.Extractor
	Vocabulary Vocabulary
	MaxRank    int
}

// DefaultOptions returns the biterm vocabulary, the default extractor and
// DefaultMaxRank.
func DefaultOptions() Options {
	return Options{
		Extractor:  artifact.DefaultExtractor,
		Vocabulary: BitermVocabulary,
		MaxRank:    DefaultMaxRank,
	}
}
