// SPDX-License-Identifier: MIT

package artifact

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Biterm is an unordered pair of normalized terms with an occurrence weight.
// The pair is stored in canonical (lexicographic) order, so NewBiterm(a, b, w)
// and NewBiterm(b, a, w) are equal values with equal keys.
type Biterm struct {
	first  string
	second string
	Weight int
}

// NewBiterm builds a canonical biterm. Weights below 1 are raised to 1.
func NewBiterm(a, b string, weight int) Biterm {
	if b < a {
		a, b = b, a
	}
	if weight < 1 {
		weight = 1
	}

	return Biterm{first: a, second: b, Weight: weight}
}

// Terms returns the two terms in canonical order.
func (b Biterm) Terms() (string, string) { return b.first, b.second }

// Key is the vocabulary key: the first term followed by the capitalized
// second term ("flight" + "plan" → "flightPlan").
func (b Biterm) Key() string {
	if b.second == "" {
		return b.first
	}
	if b.first == "" {
		return b.second
	}
	r, size := utf8.DecodeRuneInString(b.second)

	return b.first + string(unicode.ToUpper(r)) + b.second[size:]
}

// String implements fmt.Stringer and returns Key.
func (b Biterm) String() string { return b.Key() }

// SplitKey recovers two lowercase terms from a biterm key on a best-effort basis:
//   - at the first upper-case letter after position 0 ("flightPlan" → flight, Plan);
//   - otherwise at the first space;
//   - otherwise at the midpoint for keys of three or more runes;
//   - otherwise the key is returned twice.
func SplitKey(key string) (string, string) {
	a, b := splitKey(key)
	return strings.ToLower(a), strings.ToLower(b)
}

func splitKey(key string) (string, string) {
	r := []rune(key)
	for i := 1; i < len(r); i++ {
		if unicode.IsUpper(r[i]) {
			return string(r[:i]), string(r[i:])
		}
	}
	if i := strings.IndexByte(key, ' '); i > 0 && i < len(key)-1 {
		return key[:i], strings.TrimSpace(key[i+1:])
	}
	if len(r) >= 3 {
		mid := len(r) / 2
		return string(r[:mid]), string(r[mid:])
	}

	return key, key
}

// Frequencies folds biterms into key → summed weight.
func Frequencies(bs []Biterm) map[string]int {
	out := make(map[string]int, len(bs))
	for _, b := range bs {
		out[b.Key()] += b.Weight
	}
	return out
}

// mergeBiterms sums weights per key and returns the result sorted by key.
func mergeBiterms(groups ...[]Biterm) []Biterm {
	byKey := make(map[string]Biterm)
	for _, g := range groups {
		for _, b := range g {
			k := b.Key()
			if cur, ok := byKey[k]; ok {
				cur.Weight += b.Weight
				byKey[k] = cur
				continue
			}
			byKey[k] = b
		}
	}
	out := make([]Biterm, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}
