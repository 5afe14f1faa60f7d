// SPDX-License-Identifier: MIT
// Package: textproc
//
// Purpose:
//   - Turn raw artifact text into a space-joined stream of normalized terms.
//   - One pipeline serves prose and code identifiers alike.
//
// Pipeline (per word):
//   1. Drop the plural 's' of an acronym ("UAVs" → "UAV").
//   2. Split camelCase (acronym aware) and snake_case.
//   3. Lowercase.
//   4. Remove stopwords, stem (Snowball English), remove stopwords again.
//   5. Keep words of length ≥ MinWordLen.
//
// Determinism:
//   - Pure functions over strings; no hidden state besides the read-only stopword set.

package textproc

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"golang.org/x/text/unicode/norm"
)

// MinWordLen is the shortest term kept by the length filter.
const MinWordLen = 2

// ProcessText cleans text and runs every whitespace-separated word through
// ProcessWord. Empty results are dropped; the output is space-joined.
//
// Behavior highlights:
//   - Hyphens and every non-letter become spaces before tokenization.
//   - Blank input yields "".
//
// Complexity:
//   - Time O(n) in the input length (stemming is O(len(word)) per word).
func ProcessText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	cleaned := cleanCharacters(text)

	var sb strings.Builder
	for _, w := range strings.Fields(cleaned) {
		p := ProcessWord(w)
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p)
	}

	return sb.String()
}

// Tokens is ProcessText split into terms.
func Tokens(text string) []string {
	return strings.Fields(ProcessText(text))
}

// ProcessWord applies the per-word pipeline to an already tokenized word or
// identifier. The result may hold several terms (camelCase parts).
func ProcessWord(word string) string {
	if strings.TrimSpace(word) == "" {
		return ""
	}
	r := []rune(word)
	if n := len(r); n > 1 && r[n-1] == 's' && unicode.IsUpper(r[n-2]) {
		word = string(r[:n-1])
	}

	s := splitCamelCase(word)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ToLower(s)
	s = removeStopwords(s)
	s = stemText(s)
	s = removeStopwords(s)

	return lengthFilter(s, MinWordLen)
}

// Normalize applies Unicode NFKC so that ligatures and full-width letters
// reach the ASCII letter filter in their canonical form.
func Normalize(text string) string {
	return norm.NFKC.String(text)
}

// Stem returns the Snowball English stem of a lowercase word.
func Stem(word string) string {
	return english.Stem(word, false)
}

// cleanCharacters keeps ASCII letters only and collapses whitespace.
func cleanCharacters(input string) string {
	input = Normalize(input)
	input = strings.ReplaceAll(input, "-", " ")

	b := make([]rune, 0, len(input))
	for _, c := range input {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			b = append(b, c)
			continue
		}
		b = append(b, ' ')
	}
	fields := strings.Fields(string(b))
	for i, f := range fields {
		if f == "UAVs" {
			fields[i] = "UAV"
		}
	}

	return strings.Join(fields, " ")
}

// splitCamelCase inserts a space at every camel boundary:
//   - before an upper letter that starts a capitalized word after an acronym ("HTTPServer" → "HTTP Server");
//   - before an upper letter preceded by a non-upper rune ("flightPlan" → "flight Plan");
//   - between a letter and a following non-letter ("abc1" → "abc 1").
func splitCamelCase(s string) string {
	r := []rune(splitAcronyms(s))
	out := make([]rune, 0, len(r)+8)
	for i, c := range r {
		if i > 0 {
			prev := r[i-1]
			split := false
			switch {
			case isASCIIUpper(prev) && isASCIIUpper(c) && i+1 < len(r) && isASCIILower(r[i+1]):
				split = true
			case !isASCIIUpper(prev) && isASCIIUpper(c):
				split = true
			case isASCIILetter(prev) && !isASCIILetter(c):
				split = true
			}
			if split && prev != ' ' && c != ' ' {
				out = append(out, ' ')
			}
		}
		out = append(out, c)
	}

	return strings.Join(strings.Fields(string(out)), " ")
}

// splitAcronyms separates the plural 's' of an inner acronym ("UAVsController" → "UAV s Controller").
func splitAcronyms(input string) string {
	var words []string
	for _, word := range strings.Fields(input) {
		r := []rune(word)
		var cur []rune
		for i, c := range r {
			if i > 0 && isASCIIUpper(r[i-1]) && c == 's' {
				end := i == len(r)-1
				if end || isASCIIUpper(r[i+1]) {
					words = append(words, string(cur), "s")
					cur = cur[:0]
					continue
				}
			}
			cur = append(cur, c)
		}
		if len(cur) > 0 {
			words = append(words, string(cur))
		}
	}

	return strings.Join(words, " ")
}

func stemText(text string) string {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = Stem(f)
	}

	return strings.Join(fields, " ")
}

func lengthFilter(text string, minLen int) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if len(f) >= minLen {
			kept = append(kept, f)
		}
	}

	return strings.Join(kept, " ")
}

func isASCIIUpper(c rune) bool  { return c >= 'A' && c <= 'Z' }
func isASCIILower(c rune) bool  { return c >= 'a' && c <= 'z' }
func isASCIILetter(c rune) bool { return isASCIIUpper(c) || isASCIILower(c) }
