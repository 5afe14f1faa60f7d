// SPDX-License-Identifier: MIT

package evaluation

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/katalvlaran/triad/similarity"
)

// GoldStandard is the set of true (source, target) trace links.
type GoldStandard struct {
	links map[string]map[string]struct{}
	total int
}

// NewGoldStandard returns a gold standard holding the given links; scores
// are ignored and duplicates count once.
func NewGoldStandard(links ...similarity.Link) *GoldStandard {
	g := &GoldStandard{links: make(map[string]map[string]struct{})}
	for _, l := range links {
		g.add(l.Source, l.Target)
	}
	return g
}

func (g *GoldStandard) add(source, target string) {
	row, ok := g.links[source]
	if !ok {
		row = make(map[string]struct{})
		g.links[source] = row
	}
	if _, dup := row[target]; dup {
		return
	}
	row[target] = struct{}{}
	g.total++
}

// ParseGoldStandard reads one link per line, either "SRC,TGT" or
// whitespace-separated "SRC TGT". Blank lines, lines starting with '#' and
// lines with fewer than two fields are skipped; extra fields are ignored.
func ParseGoldStandard(r io.Reader) (*GoldStandard, error) {
	g := NewGoldStandard()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var parts []string
		if strings.Contains(line, ",") {
			parts = strings.Split(line, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
		} else {
			parts = strings.Fields(line)
		}
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		g.add(parts[0], parts[1])
	}
	if err := sc.Err(); err != nil {
		return nil, evalErrorf("ParseGoldStandard", err)
	}

	return g, nil
}

// LoadGoldStandard parses the gold-standard file at path on fs.
//
// Errors:
//   - ErrGoldIsDir when path is a directory.
//   - The wrapped filesystem error when path is missing or unreadable.
func LoadGoldStandard(fs afero.Fs, path string) (*GoldStandard, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("gold standard %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("gold standard %s: %w", path, ErrGoldIsDir)
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gold standard %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ParseGoldStandard(f)
}

// IsLink reports whether (source, target) is a true link.
func (g *GoldStandard) IsLink(source, target string) bool {
	_, ok := g.links[source][target]
	return ok
}

// RelevantLinks returns the sorted targets linked to source.
func (g *GoldStandard) RelevantLinks(source string) []string {
	row := g.links[source]
	out := make([]string, 0, len(row))
	for t := range row {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// TotalRelevantLinks returns the number of distinct true links.
func (g *GoldStandard) TotalRelevantLinks() int { return g.total }

// Links returns every true link with score 1, ordered by source then target.
func (g *GoldStandard) Links() []similarity.Link {
	sources := make([]string, 0, len(g.links))
	for s := range g.links {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	out := make([]similarity.Link, 0, g.total)
	for _, s := range sources {
		for _, t := range g.RelevantLinks(s) {
			out = append(out, similarity.Link{Source: s, Target: t, Score: 1})
		}
	}
	return out
}
