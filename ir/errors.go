// SPDX-License-Identifier: MIT

package ir

import (
	"errors"
	"fmt"
)

// ErrUnknownModel indicates a model name that the registry does not know.
var ErrUnknownModel = errors.New("ir: unknown model")

// ErrUnknownVocabulary indicates a vocabulary name other than "biterm" or "token".
var ErrUnknownVocabulary = errors.New("ir: unknown vocabulary")

func irErrorf(tag string, err error) error {
	return fmt.Errorf("ir.%s: %w", tag, err)
}
