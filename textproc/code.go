// SPDX-License-Identifier: MIT
// Package: textproc
//
// Purpose:
//   - Lexical view of source code: comments, identifiers and declared type names.
//   - Keywords of the language are dropped so they never reach the vocabulary.
//
// Notes:
//   - This is a scanner, not a parser. String and char literals are skipped
//     so their contents never leak into the identifier stream.

package textproc

import "strings"

// Language selects the keyword table used by ExtractCode.
type Language int

const (
	// LangJava is Java source.
	LangJava Language = iota
	// LangC is C (and C header) source.
	LangC
)

var javaKeywords = keywordSet(`abstract assert boolean break byte case catch char class const continue
default do double else enum extends final finally float for goto if implements import instanceof
int interface long native new package private protected public return short static strictfp super
switch synchronized this throw throws transient try void volatile while true false null var record
yield sealed permits`)

var cKeywords = keywordSet(`auto break case char const continue default do double else enum extern
float for goto if inline int long register restrict return short signed sizeof static struct switch
typedef union unsigned void volatile while define include ifdef ifndef endif undef pragma elif
NULL bool true false size_t uint8_t uint16_t uint32_t uint64_t int8_t int16_t int32_t int64_t`)

// typeIntroducers mark the next identifier as a declared type name.
var typeIntroducers = map[string]struct{}{
	"class": {}, "interface": {}, "enum": {}, "record": {}, "struct": {}, "union": {},
}

func keywordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// CodeParts is the lexical content of one source file, in order of appearance.
type CodeParts struct {
	Comments    []string // comment bodies with delimiters and leading '*' removed
	Identifiers []string // every non-keyword identifier occurrence
	Declared    []string // identifiers introduced by class/interface/enum/struct/...
}

// ExtractCode scans src and returns its comments and identifiers.
//
// Behavior highlights:
//   - "//" and "/* */" comments are collected; Javadoc-style leading stars are stripped.
//   - String and rune literals are skipped (escape aware).
//   - An unterminated block comment runs to the end of input.
//
// Complexity:
//   - Time O(n), Space O(n).
func ExtractCode(src string, lang Language) CodeParts {
	keywords := javaKeywords
	if lang == LangC {
		keywords = cKeywords
	}

	var parts CodeParts
	declNext := false
	n := len(src)
	for i := 0; i < n; {
		c := src[i]
		switch {
		case c == '/' && i+1 < n && src[i+1] == '/':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = n - i
			}
			if body := strings.TrimSpace(src[i+2 : i+end]); body != "" {
				parts.Comments = append(parts.Comments, body)
			}
			i += end
		case c == '/' && i+1 < n && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			var raw string
			if end < 0 {
				raw = src[i+2:]
				i = n
			} else {
				raw = src[i+2 : i+2+end]
				i += end + 4
			}
			if body := cleanBlockComment(raw); body != "" {
				parts.Comments = append(parts.Comments, body)
			}
		case c == '"' || c == '\'':
			i = skipLiteral(src, i)
		case isIdentStart(c):
			j := i + 1
			for j < n && isIdentPart(src[j]) {
				j++
			}
			word := src[i:j]
			if _, kw := keywords[word]; kw {
				_, declNext = typeIntroducers[word]
			} else {
				parts.Identifiers = append(parts.Identifiers, word)
				if declNext {
					parts.Declared = append(parts.Declared, word)
				}
				declNext = false
			}
			i = j
		default:
			i++
		}
	}

	return parts
}

// ProcessCode is the preprocessing strategy for code artifacts: processed
// comments followed by the processed identifiers.
func ProcessCode(src string, lang Language) string {
	parts := ExtractCode(src, lang)
	var sb strings.Builder
	for _, c := range parts.Comments {
		appendTerms(&sb, ProcessText(c))
	}
	for _, id := range parts.Identifiers {
		appendTerms(&sb, ProcessWord(id))
	}

	return sb.String()
}

func appendTerms(sb *strings.Builder, terms string) {
	if terms == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(terms)
}

func cleanBlockComment(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		l = strings.TrimSpace(strings.TrimLeft(l, "*"))
		if l != "" {
			out = append(out, l)
		}
	}

	return strings.Join(out, " ")
}

// skipLiteral returns the index just past the literal that opens at i.
func skipLiteral(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote, '\n':
			return j + 1
		}
	}

	return len(src)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
