// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// version is the application version, overridden at build time with
// -ldflags "-X main.version=...".
var version = "dev"

// rootOptions holds the persistent flags and the filesystem every
// subcommand reads from and writes to.
type rootOptions struct {
	cfgFile string
	fs      afero.Fs
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &rootOptions{fs: fs}

	cmd := &cobra.Command{
		Use:   "triad",
		Short: "Recover and evaluate traceability links between artifact tiers.",
		Long: `triad scores source artifacts (e.g. requirements) against target artifacts
(e.g. code) with an IR model, enriches both tiers with biterms agreed on by
an intermediate tier (e.g. design documents), adjusts the scores along
transitive paths and evaluates the result against a gold standard.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default is ./triad.yaml or $HOME/.triad.yaml)")

	cmd.AddCommand(newRunCmd(opts), newConfigCmd(opts), newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the triad version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "triad %s\n", version)
		},
	}
}
