// SPDX-License-Identifier: MIT

package textproc

import "strings"

// Sentences splits raw prose at sentence terminators (. ! ? ;) and line
// breaks. Blank pieces are dropped; the remaining ones are trimmed.
func Sentences(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '!', '?', ';', '\n', '\r':
			return true
		}
		return false
	})
	out := pieces[:0]
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
