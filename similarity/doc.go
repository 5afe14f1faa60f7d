// Package similarity holds the sparse score matrix that flows between the
// IR models, enrichment, transitivity and evaluation.
//
// A Matrix maps each source artifact to an ordered list of Links. AddLink
// appends (duplicates allowed), SetScore replaces, Score reads 0 for absent
// pairs. Average, MaxOver and FuseAverage combine matrices without touching
// their inputs, and WriteCSV emits the canonical dense serialization.
package similarity
