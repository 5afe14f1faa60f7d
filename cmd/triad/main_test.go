package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/config"
	"github.com/katalvlaran/triad/evaluation"
	"github.com/katalvlaran/triad/internal/app"
)

const runConfig = `irMethod: vsm
datasetRoot: /data
outputDir: /out
log: {level: warn, format: json}
projects:
  - name: demo
    source: {path: demo/req}
    target: {path: demo/code, type: JAVA_CODE}
    goldStandardPath: demo/answer.csv
`

func execute(t *testing.T, fs afero.Fs, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(fs)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func demoFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/cfg/triad.yaml":                   runConfig,
		"/data/demo/req/R1.txt":             "The drone shall land when the battery is low.",
		"/data/demo/req/R2.txt":             "The operator shall plan the flight route.",
		"/data/demo/code/Lander.java":       "class Lander { void landDrone(Battery lowBattery) {} }",
		"/data/demo/code/RoutePlanner.java": "class RoutePlanner { void planFlightRoute(Operator operator) {} }",
		"/data/demo/answer.csv":             "R1,Lander\nR2,RoutePlanner\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Equal(t, "triad dev\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, _, err := execute(t, fs, "config", "init", "/cfg/triad.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "/cfg/triad.yaml")

	_, _, err = execute(t, fs, "config", "init", "/cfg/triad.yaml")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, _, err = execute(t, fs, "config", "init", "--force", "/cfg/triad.yaml")
	require.NoError(t, err)

	out, _, err = execute(t, fs, "config", "show", "-c", "/cfg/triad.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "irMethod: VSM")
	assert.Contains(t, out, "name: example")
}

func TestRunCommand(t *testing.T) {
	fs := demoFs(t)

	out, stderr, err := execute(t, fs, "run", "-c", "/cfg/triad.yaml", "--ir-only")
	require.NoError(t, err)
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "VSM")
	assert.NotContains(t, stderr, `"level":"INFO"`, "log level comes from the config")

	exists, err := afero.Exists(fs, "/out/similarities/demo_VSM.csv")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = afero.Exists(fs, "/out/"+evaluation.SummaryFile)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunCommandFlagsOverrideConfig(t *testing.T) {
	fs := demoFs(t)

	_, _, err := execute(t, fs, "run", "-c", "/cfg/triad.yaml", "--method", "jsd", "--no-eval", "--output", "/alt")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/alt/similarities/demo_Triad-JSD.csv")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = afero.Exists(fs, "/alt/"+evaluation.SummaryFile)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunCommandReportsFailures(t *testing.T) {
	fs := demoFs(t)
	require.NoError(t, fs.RemoveAll("/data/demo/code"))

	out, _, err := execute(t, fs, "run", "-c", "/cfg/triad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 projects failed")
	assert.Contains(t, out, "failed:")
}

func TestRunCommandInvalidConfig(t *testing.T) {
	fs := demoFs(t)
	_, _, err := execute(t, fs, "run", "-c", "/cfg/triad.yaml", "--parallel", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSummaryRow(t *testing.T) {
	failed := summaryRow(app.Result{Project: "p", Approach: "VSM", Err: errors.New("boom")})
	assert.Equal(t, "failed: boom", failed[statusColumn])
	assert.Equal(t, "-", failed[2])

	plain := summaryRow(app.Result{Project: "p", Approach: "VSM", Links: 4})
	assert.Equal(t, []string{"p", "VSM", "4", "-", "-", "-", "-", "-", "-", "not evaluated"}, plain)

	evaluated := summaryRow(app.Result{
		Project: "p", Approach: "Triad-VSM", Links: 4, Evaluated: true,
		PRF:        evaluation.PRF{Precision: 0.5, Recall: 1, F1: 2.0 / 3},
		MAP:        0.75,
		Comparison: &app.Comparison{Baseline: "VSM", Skipped: true},
	})
	assert.Equal(t, []string{"p", "Triad-VSM", "4", "0.5000", "1.0000", "0.6667", "0.7500", "skipped", "skipped", "ok"}, evaluated)

	table := renderSummary([]app.Result{{Project: "p", Approach: "VSM", Err: errors.New("boom")}})
	assert.Contains(t, table, "Wilcoxon p")
	assert.Contains(t, table, "failed: boom")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})
	log.Info("hidden")
	log.Warn("shown", "project", "demo")

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"project":"demo"`)

	buf.Reset()
	newLogger(&buf, config.LogConfig{Level: "bogus", Format: "text"}).Info("fallback")
	assert.Contains(t, buf.String(), "level=INFO msg=fallback")
}
