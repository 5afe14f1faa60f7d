// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors for pipeline construction and project validation.
var (
	// ErrNilModel indicates a Pipeline built without a scoring model.
	ErrNilModel = errors.New("pipeline: nil model")

	// ErrMissingTier indicates a project without a source or target collection.
	ErrMissingTier = errors.New("pipeline: missing artifact tier")
)

func pipelineErrorf(tag string, err error) error {
	return fmt.Errorf("pipeline.%s: %w", tag, err)
}
