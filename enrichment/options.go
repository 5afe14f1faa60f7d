// SPDX-License-Identifier: MIT

package enrichment

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/triad/artifact"
)

// Default tuning parameters.
const (
	DefaultM                = 0.5
	DefaultTopK             = 3
	DefaultMinAgreements    = 2
	DefaultMaxBitermsPerDoc = 24
	DefaultMaxRepPerBiterm  = 4
)

// agreementSlack absorbs rounding in summed votes compared to MinAgreements.
const agreementSlack = 1e-9

// Options configures neighbor-consensus enrichment.
//
// Fields:
//   - M:                neighbor cut-off as a fraction of the row maximum, in (0, 1].
//   - TopK:             at most this many neighbors vote per artifact.
//   - MinAgreements:    minimum summed vote for a biterm to be appended.
//   - MaxBitermsPerDoc: at most this many biterms are appended per artifact.
//   - MaxRepPerBiterm:  cap on the repetitions of one appended biterm.
//   - Extractor:        biterm source; nil means artifact.DefaultExtractor.
//   - Logger:           receives per-tier enrichment statistics; nil means slog.Default().
type Options struct {
	M                float64
	TopK             int
	MinAgreements    float64
	MaxBitermsPerDoc int
	MaxRepPerBiterm  int
	Extractor        artifact.Extractor
	Logger           *slog.Logger
}

// DefaultOptions returns M=0.5, TopK=3, MinAgreements=2,
// MaxBitermsPerDoc=24 and MaxRepPerBiterm=4.
func DefaultOptions() Options {
	return Options{
		M:                DefaultM,
		TopK:             DefaultTopK,
		MinAgreements:    DefaultMinAgreements,
		MaxBitermsPerDoc: DefaultMaxBitermsPerDoc,
		MaxRepPerBiterm:  DefaultMaxRepPerBiterm,
		Extractor:        artifact.DefaultExtractor,
	}
}

// Validate reports ErrInvalidOptions for parameters outside their domain.
func (o Options) Validate() error {
	switch {
	case math.IsNaN(o.M) || o.M <= 0 || o.M > 1:
		return fmt.Errorf("%w: m=%v not in (0,1]", ErrInvalidOptions, o.M)
	case o.TopK < 1:
		return fmt.Errorf("%w: topK=%d < 1", ErrInvalidOptions, o.TopK)
	case math.IsNaN(o.MinAgreements) || o.MinAgreements < 0:
		return fmt.Errorf("%w: minAgreements=%v < 0", ErrInvalidOptions, o.MinAgreements)
	case o.MaxBitermsPerDoc < 0:
		return fmt.Errorf("%w: maxBitermsPerDoc=%d < 0", ErrInvalidOptions, o.MaxBitermsPerDoc)
	case o.MaxRepPerBiterm < 1:
		return fmt.Errorf("%w: maxRepPerBiterm=%d < 1", ErrInvalidOptions, o.MaxRepPerBiterm)
	}
	return nil
}

// Reps is the number of times a biterm with the given vote is appended:
// the vote rounded half away from zero, capped at MaxRepPerBiterm.
func (o Options) Reps(score float64) int {
	r := int(math.Round(score))
	if r > o.MaxRepPerBiterm {
		r = o.MaxRepPerBiterm
	}
	return r
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
