// Package enrichment implements neighbor-consensus text enrichment.
//
// For every artifact, the nearest neighbors on a bridge similarity matrix
// vote for biterms from their own vocabularies; a neighbor's vote is its
// score relative to the row maximum times ln(1+frequency). Biterms whose
// summed vote reaches MinAgreements are appended to a copy of the artifact
// text, repeated in proportion to the vote. The enriched tiers are then
// re-scored with the active IR model.
//
// Two modes exist:
//
//   - ThreeTier draws vocabulary from the intermediate tier and fuses the
//     two re-scored matrices by average.
//   - TwoTier draws each side's vocabulary from the opposite tier and fuses
//     by element-wise max.
//
// Input collections and matrices are never modified.
package enrichment
