// Package pipeline wires the IR models, enrichment and transitivity into
// the TRIAD link-recovery flow for one project.
//
// A run is synchronous, single-threaded and deterministic: equal inputs
// give equal matrices. Callers that process several projects at once run
// one Pipeline.Run per goroutine; a Pipeline holds no per-run state.
package pipeline
