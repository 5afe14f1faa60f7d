// Package artifact models the documents of a traceability project.
//
// An Artifact is an immutable value: identifier, Kind tag and raw text. The
// Kind selects the preprocessing strategy (prose pipeline or code scan).
// Biterms, the weighted term pairs that form the vocabulary of the IR
// models, come from an injected Extractor, or from a precomputed biterm file
// (ParsePrecomputed). A Collection groups the artifacts of one tier and
// iterates them in sorted identifier order; a Loader fills collections from
// tier directories through afero.
package artifact
