// SPDX-License-Identifier: MIT

package textproc

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopwordsRaw string

// stopwords is built once at package init and never mutated.
var stopwords = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(stopwordsRaw, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}()

// IsStopword reports whether the lowercase word is an English stopword.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

func removeStopwords(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if !IsStopword(f) {
			kept = append(kept, f)
		}
	}

	return strings.Join(kept, " ")
}
