package app_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/config"
	"github.com/katalvlaran/triad/internal/app"
	"github.com/katalvlaran/triad/ir"
	"github.com/katalvlaran/triad/transitivity"
)

var dataset = map[string]string{
	"/data/demo/req/R1.txt":    "The drone shall land safely when the battery is low.",
	"/data/demo/req/R2.txt":    "The operator shall plan the flight route.",
	"/data/demo/design/D1.txt": "The landing controller lands the drone when the battery is low.",
	"/data/demo/design/D2.txt": "The route planner computes the flight route for the operator.",
	"/data/demo/code/LandingController.java": "// lands the drone when the battery is low\n" +
		"class LandingController { void landDrone(Battery battery) {} }",
	"/data/demo/code/RoutePlanner.java": "class RoutePlanner { Route planFlightRoute(Operator operator) { return null; } }",
	"/data/demo/answer.csv":             "# source,target\nR1,LandingController\nR2,RoutePlanner\n",
}

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range dataset {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func demoProject() config.ProjectConfig {
	return config.ProjectConfig{
		Name:             "demo",
		Source:           config.TierConfig{Path: "demo/req", Type: "TEXTUAL"},
		Intermediate:     &config.TierConfig{Path: "demo/design", Type: "TEXTUAL"},
		Target:           config.TierConfig{Path: "demo/code", Type: "JAVA_CODE"},
		GoldStandardPath: "demo/answer.csv",
	}
}

func testConfig(projects ...config.ProjectConfig) config.Config {
	cfg := config.Default()
	cfg.DatasetRoot = "/data"
	cfg.OutputDir = "/out"
	cfg.Projects = projects
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, path)
	require.NoError(t, err, path)
	return string(b)
}

func TestRunTriadWithEvaluation(t *testing.T) {
	fs := newFs(t)
	d, err := app.New(testConfig(demoProject()), fs, quietLogger())
	require.NoError(t, err)
	require.NotEmpty(t, d.RunID())
	assert.Equal(t, "Triad-VSM", d.Approach())

	results, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.NoError(t, r.Err)
	assert.Equal(t, "demo", r.Project)
	assert.Equal(t, "/out/similarities/demo_Triad-VSM.csv", r.SimilarityPath)
	assert.True(t, r.Evaluated)
	assert.Positive(t, r.Links)
	assert.InDelta(t, 1.0, r.PRF.Recall, 1e-12, "every pair is scored")
	require.NotNil(t, r.Comparison)
	assert.Equal(t, "VSM", r.Comparison.Baseline)

	assert.True(t, strings.HasPrefix(readFile(t, fs, r.SimilarityPath), "Source Artifact,LandingController,RoutePlanner\n"))
	summary := readFile(t, fs, "/out/evaluation_summary.csv")
	assert.True(t, strings.HasPrefix(summary, "Project,Approach,Precision,Recall,F1,MAP\n"))
	assert.Contains(t, summary, "demo,Triad-VSM,")

	sweep := readFile(t, fs, "/out/Triad-VSM_evaluation_with_threshold.csv")
	assert.Len(t, strings.Split(strings.TrimSpace(sweep), "\n"), 1+9, "header plus thresholds 0.1..0.9")
	topK := readFile(t, fs, "/out/Triad-VSM_evaluation_top_k.csv")
	assert.Contains(t, topK, "Triad-VSM,demo,1,")
	curve := readFile(t, fs, "/out/demo/precision_recall_curves.csv")
	assert.True(t, strings.HasPrefix(curve, "Approach,R0.05,R0.10,"))
	assert.Contains(t, curve, "\nTriad-VSM,")
}

func TestRunContinuesAfterProjectFailure(t *testing.T) {
	fs := newFs(t)
	broken := demoProject()
	broken.Name = "broken"
	broken.Source.Path = "missing/req"

	cfg := testConfig(broken, demoProject())
	cfg.Parallelism = 2
	d, err := app.New(cfg, fs, quietLogger())
	require.NoError(t, err)

	results, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "broken", results[0].Project)
	require.ErrorIs(t, results[0].Err, artifact.ErrMissingDir)
	assert.Empty(t, results[0].SimilarityPath)

	assert.Equal(t, "demo", results[1].Project)
	require.NoError(t, results[1].Err)
	assert.True(t, results[1].Evaluated)

	summary := readFile(t, fs, "/out/evaluation_summary.csv")
	assert.NotContains(t, summary, "broken")
}

func TestRunIROnly(t *testing.T) {
	fs := newFs(t)
	cfg := testConfig(demoProject())
	cfg.RunTriad = false
	d, err := app.New(cfg, fs, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "VSM", d.Approach())

	results, err := d.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Nil(t, results[0].Comparison, "the baseline is only compared against TRIAD")
	assert.Equal(t, "/out/similarities/demo_VSM.csv", results[0].SimilarityPath)
}

func TestRunTwoTierWithoutGold(t *testing.T) {
	fs := newFs(t)
	prj := demoProject()
	prj.Intermediate = nil
	prj.GoldStandardPath = ""

	d, err := app.New(testConfig(prj), fs, quietLogger())
	require.NoError(t, err)

	results, err := d.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.False(t, results[0].Evaluated)
	assert.Nil(t, results[0].Comparison)

	exists, err := afero.Exists(fs, "/out/evaluation_summary.csv")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunCancelled(t *testing.T) {
	d, err := app.New(testConfig(demoProject()), newFs(t), quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := app.New(testConfig(), afero.NewMemMapFs(), nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPipelineOptions(t *testing.T) {
	cfg := testConfig(demoProject())
	cfg.Enrichment.TopK = 5
	cfg.Transitivity.TopK = 2
	cfg.Transitivity.Policy = "max"
	cfg.Transitivity.Enabled = false

	o, err := app.PipelineOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, o.Enrichment.TopK)
	assert.Equal(t, cfg.Enrichment.MaxRepPerBiterm, o.Enrichment.MaxRepPerBiterm)
	assert.Equal(t, transitivity.Options{T: 2, M: 0.5, Policy: transitivity.Max}, o.Transitivity)
	assert.False(t, o.TransitivityEnabled)

	cfg.Transitivity.Policy = "sum"
	_, err = app.PipelineOptions(cfg)
	require.ErrorIs(t, err, transitivity.ErrUnknownPolicy)
}

func TestModelOptions(t *testing.T) {
	cfg := testConfig(demoProject())
	o, err := app.ModelOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.BitermVocabulary, o.Vocabulary)
	assert.Equal(t, 100, o.MaxRank)
	assert.NotNil(t, o.Extractor)

	cfg.IR = config.IRConfig{Vocabulary: "token", MaxRank: 7}
	o, err = app.ModelOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.TokenVocabulary, o.Vocabulary)
	assert.Equal(t, 7, o.MaxRank)

	cfg.IR.Vocabulary = "ngram"
	_, err = app.ModelOptions(cfg)
	require.ErrorIs(t, err, ir.ErrUnknownVocabulary)
}
