// SPDX-License-Identifier: MIT

package artifact

import "strings"

// Artifact is an immutable document of one tier: an identifier, a kind tag
// and the raw text body. Derived views (processed text, biterms) are
// recomputed on demand, so a changed text always yields fresh biterms.
//
// An artifact built from a precomputed biterm file carries a fixed biterm
// set; its text body is already in vocabulary form and is not preprocessed.
//
// Enrichment lines live in an appendix next to the original body. The
// extractor only ever sees the original body; the biterms that produced the
// appendix are added to its output as they are.
type Artifact struct {
	id          string
	kind        Kind
	text        string
	appendix    string   // enrichment lines, one per WithAppendedText call
	added       []Biterm // biterms behind appendix (extracted artifacts only)
	fixed       []Biterm // biterm set of a precomputed artifact
	precomputed bool     // set by WithFixedBiterms; distinguishes an empty fixed set from none
}

// New returns an artifact whose biterms are produced by an Extractor.
func New(id string, kind Kind, text string) Artifact {
	return Artifact{id: id, kind: kind, text: text}
}

// WithFixedBiterms returns an artifact that reports exactly bs as its biterms.
func WithFixedBiterms(id string, kind Kind, text string, bs []Biterm) Artifact {
	return Artifact{id: id, kind: kind, text: text, fixed: mergeBiterms(bs), precomputed: true}
}

// ID returns the artifact identifier.
func (a Artifact) ID() string { return a.id }

// Kind returns the kind tag.
func (a Artifact) Kind() Kind { return a.kind }

// Text returns the raw text body followed by the enrichment appendix, if
// any, on its own line.
func (a Artifact) Text() string {
	if a.appendix == "" {
		return a.text
	}
	return a.text + "\n" + a.appendix
}

// Precomputed reports whether the biterm set is fixed.
func (a Artifact) Precomputed() bool { return a.precomputed }

// ProcessedText returns the normalized terms of Text(), space-joined.
func (a Artifact) ProcessedText() string {
	if a.precomputed {
		return strings.Join(strings.Fields(a.Text()), " ")
	}
	return a.kind.Preprocess(a.Text())
}

// Biterms returns the weighted biterms of the artifact sorted by key. Fixed
// biterms are returned as a copy; otherwise ex extracts them from the
// original body (DefaultExtractor when ex is nil) and the appended biterms
// are merged in.
func (a Artifact) Biterms(ex Extractor) []Biterm {
	if a.precomputed {
		out := make([]Biterm, len(a.fixed))
		copy(out, a.fixed)
		return out
	}
	if ex == nil {
		ex = DefaultExtractor
	}

	return mergeBiterms(ex.Extract(a.kind, a.text), a.added)
}

// WithAppendedText returns a copy with extra added to the appendix and
// appended merged into its biterms, whatever the kind. The extractor never
// parses extra, so code artifacts gain the same biterms as prose ones.
func (a Artifact) WithAppendedText(extra string, appended []Biterm) Artifact {
	out := a
	if extra != "" {
		if a.appendix == "" {
			out.appendix = extra
		} else {
			out.appendix = a.appendix + "\n" + extra
		}
	}
	if a.precomputed {
		out.fixed = mergeBiterms(a.fixed, appended)
	} else {
		out.added = mergeBiterms(a.added, appended)
	}

	return out
}
