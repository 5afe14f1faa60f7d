// SPDX-License-Identifier: MIT

package tdm

import (
	"errors"
	"fmt"
)

// Sentinel errors for term-document matrices.
var (
	// ErrShape indicates labels that do not match the table dimensions.
	ErrShape = errors.New("tdm: labels do not match table shape")

	// ErrDuplicateLabel indicates a repeated document or term name.
	ErrDuplicateLabel = errors.New("tdm: duplicate label")
)

func tdmErrorf(tag string, err error) error {
	return fmt.Errorf("tdm.%s: %w", tag, err)
}
