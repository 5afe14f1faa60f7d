// SPDX-License-Identifier: MIT

package enrichment

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the enrichers.
var (
	// ErrNilModel indicates an Enricher built without an IR model.
	ErrNilModel = errors.New("enrichment: nil model")

	// ErrInvalidOptions indicates out-of-range tuning parameters.
	ErrInvalidOptions = errors.New("enrichment: invalid options")
)

func enrichErrorf(tag string, err error) error {
	return fmt.Errorf("enrichment.%s: %w", tag, err)
}
