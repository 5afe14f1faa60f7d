// SPDX-License-Identifier: MIT

package artifact

import (
	"strconv"
	"strings"
)

// ParsePrecomputed builds an artifact from a biterm file whose lines read
// "bitermKey:weight".
//
// Behavior highlights:
//   - Blank lines, lines without ':' or key, and lines whose weight is not
//     a positive integer are skipped.
//   - Keys are split with SplitKey and lowercased.
//   - The text body is rebuilt by repeating each canonical key weight
//     times, in file order, space-separated.
func ParsePrecomputed(id string, kind Kind, content string) Artifact {
	var (
		bs   []Biterm
		body strings.Builder
	)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		key, raw, ok := strings.Cut(line, ":")
		if line == "" || !ok {
			continue
		}
		weight, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || weight < 1 {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		t1, t2 := SplitKey(key)
		b := NewBiterm(t1, t2, weight)
		bs = append(bs, b)

		token := b.Key()
		for i := 0; i < weight; i++ {
			body.WriteString(token)
			body.WriteByte(' ')
		}
	}

	return WithFixedBiterms(id, kind, strings.TrimSpace(body.String()), bs)
}
