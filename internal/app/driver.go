// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/config"
	"github.com/katalvlaran/triad/evaluation"
	"github.com/katalvlaran/triad/ir"
	"github.com/katalvlaran/triad/pipeline"
	"github.com/katalvlaran/triad/similarity"
)

// TriadPrefix prefixes the approach name of a full TRIAD run.
const TriadPrefix = "Triad-"

// Comparison is the statistical comparison of a TRIAD run against the
// IR-only baseline over the F-measures at the 11 standard recall levels.
type Comparison struct {
	Baseline    string
	PValue      float64
	CliffsDelta float64
	Skipped     bool // both samples were all zero
}

// Result summarizes one project of a run. Err is set when the project
// failed; the other fields are then zero.
type Result struct {
	Project        string
	Approach       string
	SimilarityPath string
	Links          int
	Evaluated      bool
	PRF            evaluation.PRF
	MAP            float64
	Comparison     *Comparison
	Err            error
}

// outcome carries the in-memory products of one project between the
// concurrent compute phase and the ordered report phase.
type outcome struct {
	name     string
	approach string
	result   *similarity.Matrix
	baseline *similarity.Matrix
	gold     *evaluation.GoldStandard
	err      error
}

// Driver runs the configured projects.
type Driver struct {
	cfg        config.Config
	loader     *artifact.Loader
	reporter   *evaluation.Reporter
	pipeline   *pipeline.Pipeline
	thresholds []float64
	runID      string
	log        *slog.Logger
}

// New validates cfg and prepares a Driver reading datasets from and writing
// reports to fs. A nil log uses slog.Default(); every record carries the
// run_id attribute.
func New(cfg config.Config, fs afero.Fs, log *slog.Logger) (*Driver, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	runID := uuid.NewString()
	log = log.With("run_id", runID)

	irOpts, err := ModelOptions(cfg)
	if err != nil {
		return nil, err
	}
	model, err := ir.ByName(cfg.IRMethod, &irOpts)
	if err != nil {
		return nil, err
	}
	opts, err := PipelineOptions(cfg)
	if err != nil {
		return nil, err
	}
	opts.Logger = log
	p, err := pipeline.New(model, &opts)
	if err != nil {
		return nil, err
	}
	thresholds, err := evaluation.Thresholds(
		cfg.Evaluation.ThresholdStart, cfg.Evaluation.ThresholdEnd, cfg.Evaluation.ThresholdStep)
	if err != nil {
		return nil, err
	}

	return &Driver{
		cfg:        cfg,
		loader:     artifact.NewLoader(fs, cfg.DatasetRoot),
		reporter:   evaluation.NewReporter(fs, cfg.OutputDir),
		pipeline:   p,
		thresholds: thresholds,
		runID:      runID,
		log:        log,
	}, nil
}

// RunID returns the identifier attached to every log record of the run.
func (d *Driver) RunID() string { return d.runID }

// Approach returns the approach name used in reports.
func (d *Driver) Approach() string {
	if d.cfg.RunTriad {
		return TriadPrefix + d.pipeline.Model().Name()
	}
	return d.pipeline.Model().Name()
}

// Run processes every project and returns one Result per project, in
// configured order. Project failures are reported in Result.Err; the
// returned error is non-nil only when ctx ends the run early.
func (d *Driver) Run(ctx context.Context) ([]Result, error) {
	projects := d.cfg.Projects
	outcomes := make([]outcome, len(projects))

	d.log.Info("run started",
		"projects", len(projects), "approach", d.Approach(), "parallelism", d.cfg.Parallelism)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Parallelism)
	for i, pc := range projects {
		g.Go(func() error {
			outcomes[i] = d.compute(gctx, pc)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run %s: %w", d.runID, err)
	}

	results := make([]Result, len(outcomes))
	failed := 0
	for i, o := range outcomes {
		results[i] = d.report(o)
		if results[i].Err != nil {
			failed++
			d.log.Error("project failed", "project", o.name, "error", results[i].Err)
		}
	}
	d.log.Info("run finished", "projects", len(results), "failed", failed)

	return results, nil
}

// compute loads a project and scores it. It never touches the reports.
func (d *Driver) compute(ctx context.Context, pc config.ProjectConfig) outcome {
	o := outcome{name: pc.Name, approach: d.Approach()}
	log := d.log.With("project", pc.Name)
	log.Info("project started")

	prj, err := d.loadProject(pc)
	if err != nil {
		o.err = err
		return o
	}

	if d.cfg.RunTriad {
		var baseline *similarity.Matrix
		o.result, baseline, err = d.pipeline.RunWithBaseline(ctx, prj)
		if d.cfg.DoEvaluate {
			o.baseline = baseline
		}
	} else {
		o.result, err = d.pipeline.RunIROnly(ctx, prj)
	}
	if err != nil {
		o.err = err
		return o
	}

	if d.cfg.DoEvaluate {
		if pc.GoldStandardPath == "" {
			log.Warn("evaluation skipped", "error", ErrNoGoldStandard)
			return o
		}
		o.gold, err = evaluation.LoadGoldStandard(d.loader.Fs(), d.loader.Resolve(pc.GoldStandardPath))
		if err != nil {
			o.err = fmt.Errorf("gold standard: %w", err)
			return o
		}
	}
	log.Info("project scored", "links", o.result.Len())

	return o
}

func (d *Driver) loadProject(pc config.ProjectConfig) (pipeline.Project, error) {
	prj := pipeline.Project{Name: pc.Name}
	var err error
	if prj.Source, err = loadTier(d.loader, &pc.Source); err != nil {
		return prj, fmt.Errorf("source tier: %w", err)
	}
	if prj.Intermediate, err = loadTier(d.loader, pc.Intermediate); err != nil {
		return prj, fmt.Errorf("intermediate tier: %w", err)
	}
	if prj.Target, err = loadTier(d.loader, &pc.Target); err != nil {
		return prj, fmt.Errorf("target tier: %w", err)
	}
	d.log.Debug("project loaded", "project", pc.Name,
		"source", prj.Source.Len(), "intermediate", prj.Intermediate.Len(), "target", prj.Target.Len())
	return prj, nil
}

// report writes every file of one outcome and assembles its Result.
func (d *Driver) report(o outcome) Result {
	res := Result{Project: o.name, Approach: o.approach, Err: o.err}
	if o.err != nil {
		return res
	}
	log := d.log.With("project", o.name, "approach", o.approach)

	path, err := d.reporter.WriteSimilarity(o.name, o.approach, o.result)
	if err != nil {
		res.Err = err
		return res
	}
	res.SimilarityPath = path
	res.Links = o.result.Len()
	log.Info("similarity matrix written", "path", path)

	if o.gold == nil {
		return res
	}
	if err := d.evaluate(&res, o, log); err != nil {
		res.Err = err
	}
	return res
}

func (d *Driver) evaluate(res *Result, o outcome, log *slog.Logger) error {
	m, gold := o.result, o.gold

	// 1) Summary over every scored pair.
	res.PRF = evaluation.ComputePRF(m.AllLinks(), gold)
	res.MAP = evaluation.MAP(m, gold)
	res.Evaluated = true
	log.Info("evaluation",
		"precision", res.PRF.Precision, "recall", res.PRF.Recall, "f1", res.PRF.F1, "map", res.MAP)
	if err := d.reporter.AppendSummary(o.name, o.approach, res.PRF, res.MAP); err != nil {
		return err
	}

	// 2) Threshold sweep and top-k cut-offs.
	sweep := evaluation.ThresholdSweep(m, gold, d.thresholds)
	for _, r := range sweep {
		log.Debug("threshold", "threshold", r.Threshold, "f1", r.F1, "amount", r.Amount)
	}
	if err := d.reporter.AppendThresholds(o.approach, o.name, sweep); err != nil {
		return err
	}
	if len(d.cfg.Evaluation.TopK) > 0 {
		topK := make([]evaluation.TopKResult, 0, len(d.cfg.Evaluation.TopK))
		for _, k := range d.cfg.Evaluation.TopK {
			r, err := evaluation.EvaluateTopK(m, gold, k)
			if err != nil {
				return err
			}
			topK = append(topK, r)
		}
		if err := d.reporter.AppendTopK(o.approach, o.name, topK); err != nil {
			return err
		}
	}

	// 3) Interpolated precision-recall curve.
	precisions, err := evaluation.PrecisionAtRecallLevels(m, gold, d.cfg.Evaluation.RecallLevels)
	if err != nil {
		return err
	}
	if err := d.reporter.AppendPRCurve(o.name, o.approach, precisions); err != nil {
		return err
	}

	// 4) TRIAD against the IR-only baseline.
	if o.baseline != nil {
		cmp, err := compare(m, o.baseline, gold, d.pipeline.Model().Name())
		if err != nil {
			return err
		}
		res.Comparison = cmp
		if cmp.Skipped {
			log.Warn("both samples are all zeros, comparison skipped", "baseline", cmp.Baseline)
		} else {
			log.Info("statistical comparison",
				"baseline", cmp.Baseline, "wilcoxon_p", cmp.PValue, "cliffs_delta", cmp.CliffsDelta)
		}
	}
	return nil
}

// compare tests improved against base on their F-measures at 11 recall levels.
func compare(improved, base *similarity.Matrix, gold *evaluation.GoldStandard, baseline string) (*Comparison, error) {
	fi := evaluation.FMeasuresAt11(improved, gold)
	fb := evaluation.FMeasuresAt11(base, gold)
	cmp := &Comparison{Baseline: baseline}
	if evaluation.AllZero(fi) && evaluation.AllZero(fb) {
		cmp.Skipped = true
		return cmp, nil
	}

	p, err := evaluation.WilcoxonPValue(fi, fb)
	if err != nil {
		return nil, err
	}
	cmp.PValue = p
	cmp.CliffsDelta = evaluation.CliffsDelta(fi, fb)
	return cmp, nil
}
