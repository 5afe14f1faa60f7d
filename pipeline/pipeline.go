// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/enrichment"
	"github.com/katalvlaran/triad/ir"
	"github.com/katalvlaran/triad/similarity"
	"github.com/katalvlaran/triad/transitivity"
)

// Options configures a Pipeline.
//
// Fields:
//   - Bridge:              model for the inter-tier bridge matrices; nil means ir.NewUnion(nil).
//   - Enrichment:          consensus parameters; its Logger defaults to Logger.
//   - Transitivity:        hop schedule and policy.
//   - TransitivityEnabled: apply the closure in three-tier mode.
//   - Logger:              stage logging; nil means slog.Default().
type Options struct {
	Bridge              ir.Model
	Enrichment          enrichment.Options
	Transitivity        transitivity.Options
	TransitivityEnabled bool
	Logger              *slog.Logger
}

// DefaultOptions returns the union bridge, default enrichment and
// transitivity parameters, with transitivity enabled.
func DefaultOptions() Options {
	return Options{
		Enrichment:          enrichment.DefaultOptions(),
		Transitivity:        transitivity.DefaultOptions(),
		TransitivityEnabled: true,
	}
}

// Pipeline recovers links between the source and target tiers of a Project.
// A Pipeline is stateless between runs and may be reused.
type Pipeline struct {
	model    ir.Model
	bridge   ir.Model
	enricher *enrichment.Enricher
	opts     Options
	log      *slog.Logger
}

// New returns a Pipeline scoring with model. A nil opts uses DefaultOptions().
//
// Errors:
//   - ErrNilModel when model is nil.
//   - enrichment.ErrInvalidOptions, transitivity.ErrInvalidOptions or
//     transitivity.ErrUnknownPolicy for out-of-range parameters.
func New(model ir.Model, opts *Options) (*Pipeline, error) {
	if model == nil {
		return nil, pipelineErrorf("New", ErrNilModel)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}
	if o.Enrichment.Logger == nil {
		o.Enrichment.Logger = log
	}
	bridge := o.Bridge
	if bridge == nil {
		bridge = ir.NewUnion(nil)
	}
	if err := o.Transitivity.Validate(); err != nil {
		return nil, pipelineErrorf("New", err)
	}
	enricher, err := enrichment.New(model, &o.Enrichment)
	if err != nil {
		return nil, pipelineErrorf("New", err)
	}

	return &Pipeline{model: model, bridge: bridge, enricher: enricher, opts: o, log: log}, nil
}

// Model returns the scoring model.
func (p *Pipeline) Model() ir.Model { return p.model }

// RunIROnly returns the model's source × target matrix without enrichment
// or transitivity.
func (p *Pipeline) RunIROnly(ctx context.Context, prj Project) (*similarity.Matrix, error) {
	if err := prj.Validate(); err != nil {
		return nil, pipelineErrorf("RunIROnly", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, pipelineErrorf("RunIROnly", err)
	}
	p.log.Info("ir-only run started", "project", prj.Name, "model", p.model.Name())

	m, err := p.model.Compute(prj.Source, prj.Target)
	if err != nil {
		return nil, pipelineErrorf("RunIROnly", err)
	}
	return m, nil
}

// Run executes the full recovery for prj.
//
// Stages:
//  1. IR-only baseline with the scoring model.
//  2. Two-tier mode (no intermediate artifacts): bridges S→T and T→S,
//     enrichment fused by max, then FuseAverage(baseline, enriched).
//  3. Three-tier mode: bridges S-I, I-T, T-I, S-S and I-I, enrichment
//     fused by average, FuseAverage(baseline, enriched), then the
//     transitivity closure when enabled.
//
// The context is checked between stages; a cancelled run returns ctx.Err()
// wrapped. Collections are never modified.
func (p *Pipeline) Run(ctx context.Context, prj Project) (*similarity.Matrix, error) {
	result, _, err := p.RunWithBaseline(ctx, prj)
	return result, err
}

// RunWithBaseline is Run that also returns the IR-only baseline of stage 1,
// so callers comparing both do not score the project twice. The baseline is
// the matrix RunIROnly would return and is not modified by later stages.
func (p *Pipeline) RunWithBaseline(ctx context.Context, prj Project) (result, baseline *similarity.Matrix, err error) {
	base, err := p.RunIROnly(ctx, prj)
	if err != nil {
		return nil, nil, pipelineErrorf("Run", err)
	}

	if !prj.HasIntermediate() {
		p.log.Info("no intermediate artifacts, running two-tier enrichment", "project", prj.Name)
		result, err = p.runTwoTier(ctx, prj, base)
	} else {
		result, err = p.runThreeTier(ctx, prj, base)
	}
	if err != nil {
		return nil, nil, err
	}
	return result, base, nil
}

func (p *Pipeline) runTwoTier(ctx context.Context, prj Project, base *similarity.Matrix) (*similarity.Matrix, error) {
	st, err := p.bridgeMatrix(ctx, "source-target", prj.Source, prj.Target)
	if err != nil {
		return nil, err
	}
	ts, err := p.bridgeMatrix(ctx, "target-source", prj.Target, prj.Source)
	if err != nil {
		return nil, err
	}

	enriched, err := p.enricher.TwoTier(prj.Source, prj.Target, st, ts)
	if err != nil {
		return nil, pipelineErrorf("Run", err)
	}
	fused := similarity.FuseAverage(base, enriched)
	p.log.Info("two-tier run finished", "project", prj.Name, "links", fused.Len())

	return fused, nil
}

func (p *Pipeline) runThreeTier(ctx context.Context, prj Project, base *similarity.Matrix) (*similarity.Matrix, error) {
	s, i, t := prj.Source, prj.Intermediate, prj.Target

	si, err := p.bridgeMatrix(ctx, "source-intermediate", s, i)
	if err != nil {
		return nil, err
	}
	it, err := p.bridgeMatrix(ctx, "intermediate-target", i, t)
	if err != nil {
		return nil, err
	}
	ti, err := p.bridgeMatrix(ctx, "target-intermediate", t, i)
	if err != nil {
		return nil, err
	}
	ss, err := p.bridgeMatrix(ctx, "source-source", s, s)
	if err != nil {
		return nil, err
	}
	ii, err := p.bridgeMatrix(ctx, "intermediate-intermediate", i, i)
	if err != nil {
		return nil, err
	}

	enriched, err := p.enricher.ThreeTier(s, i, t, si, ti)
	if err != nil {
		return nil, pipelineErrorf("Run", err)
	}
	fused := similarity.FuseAverage(base, enriched)
	if !p.opts.TransitivityEnabled {
		p.log.Info("three-tier run finished", "project", prj.Name, "transitivity", false, "links", fused.Len())
		return fused, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, pipelineErrorf("Run", err)
	}

	closure, err := transitivity.New(si, it, ss, ii, &p.opts.Transitivity)
	if err != nil {
		return nil, pipelineErrorf("Run", err)
	}
	final := closure.Apply(fused)
	p.log.Info("three-tier run finished",
		"project", prj.Name,
		"transitivity", true,
		"policy", p.opts.Transitivity.Policy.String(),
		"links", final.Len(),
	)

	return final, nil
}

// bridgeMatrix scores from × to with the bridge model.
func (p *Pipeline) bridgeMatrix(ctx context.Context, name string, from, to *artifact.Collection) (*similarity.Matrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, pipelineErrorf("Run", err)
	}
	m, err := p.bridge.Compute(from, to)
	if err != nil {
		return nil, pipelineErrorf("bridge "+name, err)
	}
	p.log.Debug("bridge computed", "bridge", name, "model", p.bridge.Name(), "links", m.Len())

	return m, nil
}
