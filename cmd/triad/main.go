// SPDX-License-Identifier: MIT

// Command triad recovers traceability links between software artifact tiers
// and evaluates them against gold standards.
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
