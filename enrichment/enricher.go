// SPDX-License-Identifier: MIT

package enrichment

import (
	"log/slog"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/ir"
	"github.com/katalvlaran/triad/similarity"
)

// Enricher appends neighbor-consensus biterms to artifacts and re-scores
// them with an IR model.
type Enricher struct {
	model ir.Model
	opts  Options
}

// New returns an Enricher scoring with model. A nil opts uses DefaultOptions().
//
// Errors:
//   - ErrNilModel when model is nil.
//   - ErrInvalidOptions when opts fails Validate.
func New(model ir.Model, opts *Options) (*Enricher, error) {
	if model == nil {
		return nil, enrichErrorf("New", ErrNilModel)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, enrichErrorf("New", err)
	}

	return &Enricher{model: model, opts: o}, nil
}

// Options returns the effective options.
func (e *Enricher) Options() Options { return e.opts }

// ThreeTier enriches sources and targets with the vocabulary of their
// nearest intermediate artifacts.
//
// Bridges: sourceToIntermediate has source rows, targetToIntermediate has
// target rows; both have intermediate columns. The enriched sources are
// scored against the original targets and the original sources against the
// enriched targets; the two results are averaged over the union of keys.
func (e *Enricher) ThreeTier(
	source, intermediate, target *artifact.Collection,
	sourceToIntermediate, targetToIntermediate *similarity.Matrix,
) (*similarity.Matrix, error) {
	vocab := FrequencyMaps(intermediate, e.opts.Extractor)
	s1, s2, err := e.enrichAndScore(source, target, sourceToIntermediate, vocab, targetToIntermediate, vocab, "three-tier")
	if err != nil {
		return nil, enrichErrorf("ThreeTier", err)
	}

	return similarity.Average(s1, s2), nil
}

// TwoTier is the fallback without an intermediate tier: sources borrow from
// their nearest targets (bridge sourceToTarget) and targets from their
// nearest sources (bridge targetToSource). The two re-scored matrices are
// fused by element-wise max over the first one's grid.
func (e *Enricher) TwoTier(
	source, target *artifact.Collection,
	sourceToTarget, targetToSource *similarity.Matrix,
) (*similarity.Matrix, error) {
	srcVocab := FrequencyMaps(source, e.opts.Extractor)
	tgtVocab := FrequencyMaps(target, e.opts.Extractor)
	s1, s2, err := e.enrichAndScore(source, target, sourceToTarget, tgtVocab, targetToSource, srcVocab, "two-tier")
	if err != nil {
		return nil, enrichErrorf("TwoTier", err)
	}

	return similarity.MaxOver(s1, s2), nil
}

func (e *Enricher) enrichAndScore(
	source, target *artifact.Collection,
	srcBridge *similarity.Matrix, srcVocab map[string]map[string]int,
	tgtBridge *similarity.Matrix, tgtVocab map[string]map[string]int,
	mode string,
) (*similarity.Matrix, *similarity.Matrix, error) {
	log := e.opts.logger()

	extSource, st := Extend(source, Consensus(source, srcBridge, srcVocab, e.opts))
	logStats(log, mode, "source", st)
	extTarget, st := Extend(target, Consensus(target, tgtBridge, tgtVocab, e.opts))
	logStats(log, mode, "target", st)

	s1, err := e.model.Compute(extSource, target)
	if err != nil {
		return nil, nil, err
	}
	s2, err := e.model.Compute(source, extTarget)
	if err != nil {
		return nil, nil, err
	}

	return s1, s2, nil
}

func logStats(log *slog.Logger, mode, tier string, st Stats) {
	avgKept, avgTerms := 0.0, 0.0
	if st.Artifacts > 0 {
		avgKept = float64(st.KeptBiterms) / float64(st.Artifacts)
		avgTerms = float64(st.AppendedTerms) / float64(st.Artifacts)
	}
	log.Info("enrichment applied",
		"mode", mode,
		"tier", tier,
		"artifacts", st.Artifacts,
		"avg_kept_biterms", avgKept,
		"avg_appended_terms", avgTerms,
	)
}
