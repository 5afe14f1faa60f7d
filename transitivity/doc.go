// Package transitivity implements the multi-hop transitivity closure over
// three artifact tiers.
//
// A source s reaches a target t through the intermediate tier along three
// path shapes:
//
//   - Outer:                 s → i → t
//   - Inner (source side):   s → s′ → i → t   (s′ ≠ s)
//   - Inner (intermediate):  s → i → i′ → t   (i′ ≠ i)
//
// Every hop keeps only the strongest neighbors of its row (see TopLinks); the
// hop budget tightens as paths get longer. A path's score is the product of
// its hop scores. The Policy decides how path scores change the base score.
//
// Complexity:
//
//   - Time:  O(|S|·|T|·T³) TopLinks evaluations, each O(row log row).
//   - Space: O(|S|·|T|) for the adjusted copy of the base matrix.
package transitivity
