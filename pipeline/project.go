// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/triad/artifact"
)

// Project groups the artifact tiers of one dataset. Intermediate may be nil
// or empty, in which case the pipeline runs in two-tier mode.
type Project struct {
	Name         string
	Source       *artifact.Collection
	Intermediate *artifact.Collection
	Target       *artifact.Collection
}

// HasIntermediate reports whether the project carries intermediate artifacts.
func (p Project) HasIntermediate() bool { return p.Intermediate.Len() > 0 }

// Validate reports ErrMissingTier when the source or target tier is nil.
func (p Project) Validate() error {
	if p.Source == nil {
		return fmt.Errorf("project %q: source: %w", p.Name, ErrMissingTier)
	}
	if p.Target == nil {
		return fmt.Errorf("project %q: target: %w", p.Name, ErrMissingTier)
	}
	return nil
}
