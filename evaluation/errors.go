// SPDX-License-Identifier: MIT

package evaluation

import (
	"errors"
	"fmt"
)

// Sentinel errors for gold standards, statistics and reports.
var (
	// ErrGoldIsDir indicates a gold-standard path that points to a directory.
	ErrGoldIsDir = errors.New("evaluation: gold standard path is a directory")

	// ErrSampleSize indicates paired samples that are empty or of unequal length.
	ErrSampleSize = errors.New("evaluation: samples must have the same non-zero size")

	// ErrBadLevels indicates a non-positive number of recall levels.
	ErrBadLevels = errors.New("evaluation: recall levels must be positive")

	// ErrBadThresholds indicates an empty or non-advancing threshold range.
	ErrBadThresholds = errors.New("evaluation: invalid threshold range")
)

func evalErrorf(tag string, err error) error {
	return fmt.Errorf("evaluation.%s: %w", tag, err)
}
