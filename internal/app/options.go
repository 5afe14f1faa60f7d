// SPDX-License-Identifier: MIT

package app

import (
	"fmt"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/config"
	"github.com/katalvlaran/triad/ir"
	"github.com/katalvlaran/triad/pipeline"
	"github.com/katalvlaran/triad/transitivity"
)

// ModelOptions maps the ir section of cfg onto ir.Options.
func ModelOptions(cfg config.Config) (ir.Options, error) {
	vocab, err := ir.ParseVocabulary(cfg.IR.Vocabulary)
	if err != nil {
		return ir.Options{}, err
	}
	o := ir.DefaultOptions()
	o.Vocabulary = vocab
	o.MaxRank = cfg.IR.MaxRank

	return o, nil
}

// PipelineOptions maps the enrichment and transitivity sections of cfg onto
// pipeline.Options. The logger is left for the caller.
func PipelineOptions(cfg config.Config) (pipeline.Options, error) {
	policy, err := transitivity.ParsePolicy(cfg.Transitivity.Policy)
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("transitivity policy: %w", err)
	}

	o := pipeline.DefaultOptions()
	o.Enrichment.M = cfg.Enrichment.M
	o.Enrichment.TopK = cfg.Enrichment.TopK
	o.Enrichment.MinAgreements = cfg.Enrichment.MinAgreements
	o.Enrichment.MaxBitermsPerDoc = cfg.Enrichment.MaxBitermsPerDoc
	o.Enrichment.MaxRepPerBiterm = cfg.Enrichment.MaxRepPerBiterm
	o.Transitivity = transitivity.Options{
		T:      cfg.Transitivity.TopK,
		M:      cfg.Transitivity.M,
		Policy: policy,
	}
	o.TransitivityEnabled = cfg.Transitivity.Enabled

	return o, nil
}

// loadTier reads one tier of a project. A nil tier yields a nil collection.
func loadTier(l *artifact.Loader, tier *config.TierConfig) (*artifact.Collection, error) {
	if tier == nil {
		return nil, nil
	}
	kind, err := artifact.ParseKind(tier.Type)
	if err != nil {
		return nil, err
	}
	return l.LoadCollection(tier.Path, kind, tier.Precomputed)
}
