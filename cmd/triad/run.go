// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/triad/config"
	"github.com/katalvlaran/triad/internal/app"
)

type runFlags struct {
	method      string
	irOnly      bool
	noEvaluate  bool
	parallelism int
	output      string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run link recovery over the configured projects",
		Example: `  triad run
  triad run --config experiments/dronology.yaml --method LSI
  triad run --ir-only --parallel 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(root.fs, root.cfgFile)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, &cfg, f)

			log := newLogger(cmd.ErrOrStderr(), cfg.Log)
			d, err := app.New(cfg, root.fs, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
			defer stop()

			results, err := d.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(results))

			if failed := countFailed(results); failed > 0 {
				return fmt.Errorf("%d of %d projects failed (run %s)", failed, len(results), d.RunID())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.method, "method", "m", "", "IR model: VSM, LSI or JSD (overrides irMethod)")
	cmd.Flags().BoolVar(&f.irOnly, "ir-only", false, "score with the IR model only, without enrichment or transitivity")
	cmd.Flags().BoolVar(&f.noEvaluate, "no-eval", false, "skip the evaluation against gold standards")
	cmd.Flags().IntVarP(&f.parallelism, "parallel", "p", 0, "number of projects processed at once (overrides parallelism)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output directory (overrides outputDir)")
	return cmd
}

// applyRunFlags lets explicitly set flags win over file and environment.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config, f runFlags) {
	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.IRMethod = f.method
	}
	if flags.Changed("ir-only") {
		cfg.RunTriad = !f.irOnly
	}
	if flags.Changed("no-eval") {
		cfg.DoEvaluate = !f.noEvaluate
	}
	if flags.Changed("parallel") {
		cfg.Parallelism = f.parallelism
	}
	if flags.Changed("output") {
		cfg.OutputDir = f.output
	}
	cfg.IRMethod = strings.ToUpper(strings.TrimSpace(cfg.IRMethod))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func countFailed(results []app.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
