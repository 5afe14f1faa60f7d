// SPDX-License-Identifier: MIT

package ir

import (
	"fmt"
	"strings"
)

// ByName returns the model registered under name (case-insensitive):
// "VSM", "LSI", "JSD" or "IR-UNION".
func ByName(name string, opts *Options) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case NameVSM:
		return NewVSM(opts), nil
	case NameLSI:
		return NewLSI(opts), nil
	case NameJSD:
		return NewJSD(), nil
	case NameUnion:
		return NewUnion(opts), nil
	}

	return nil, fmt.Errorf("ir.ByName(%q): %w", name, ErrUnknownModel)
}

// ParseVocabulary maps "biterm" or "token" (case-insensitive) to its
// Vocabulary.
func ParseVocabulary(name string) (Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "biterm":
		return BitermVocabulary, nil
	case "token":
		return TokenVocabulary, nil
	}

	return BitermVocabulary, fmt.Errorf("ir.ParseVocabulary(%q): %w", name, ErrUnknownVocabulary)
}

// Names lists the registered model names.
func Names() []string { return []string{NameVSM, NameLSI, NameJSD, NameUnion} }
