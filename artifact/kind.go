// SPDX-License-Identifier: MIT

package artifact

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/triad/textproc"
)

// Kind tags an artifact with its preprocessing strategy.
type Kind int

const (
	// KindTextual covers requirements, design notes and any other prose.
	KindTextual Kind = iota
	// KindJavaCode is a Java source file.
	KindJavaCode
	// KindCCode is a C source or header file.
	KindCCode
)

var kindNames = [...]string{
	KindTextual:  "TEXTUAL",
	KindJavaCode: "JAVA_CODE",
	KindCCode:    "C_CODE",
}

// String returns the canonical upper-case name ("TEXTUAL", "JAVA_CODE", "C_CODE").
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsCode reports whether the kind is a source-code kind.
func (k Kind) IsCode() bool { return k == KindJavaCode || k == KindCCode }

// ParseKind maps a configuration name to a Kind. Matching is case-insensitive
// and accepts the short aliases "text", "java" and "c".
func ParseKind(name string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TEXTUAL", "TEXT", "":
		return KindTextual, nil
	case "JAVA_CODE", "JAVA":
		return KindJavaCode, nil
	case "C_CODE", "C":
		return KindCCode, nil
	}

	return KindTextual, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// Preprocess turns a raw text body into space-joined terms using the
// strategy of the kind: the prose pipeline for TEXTUAL, the comment and
// identifier scan for code kinds.
func (k Kind) Preprocess(text string) string {
	switch k {
	case KindJavaCode:
		return textproc.ProcessCode(text, textproc.LangJava)
	case KindCCode:
		return textproc.ProcessCode(text, textproc.LangC)
	default:
		return textproc.ProcessText(text)
	}
}

// language maps a code kind onto the scanner language.
func (k Kind) language() textproc.Language {
	if k == KindCCode {
		return textproc.LangC
	}
	return textproc.LangJava
}
