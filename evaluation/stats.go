// SPDX-License-Identifier: MIT

package evaluation

import (
	"math"
	"sort"
)

// ExactWilcoxonMaxN is the largest sample size for which WilcoxonPValue
// enumerates the exact null distribution.
const ExactWilcoxonMaxN = 30

// WilcoxonPValue runs the two-sided Wilcoxon signed-rank test on the paired
// samples x and y.
//
// Implementation:
//   - Differences d = x − y are ranked by |d| with average ranks for ties;
//     zero differences are ranked too.
//   - W+ sums the ranks of positive differences, W− = n(n+1)/2 − W+, and the
//     statistic is max(W+, W−).
//   - n ≤ ExactWilcoxonMaxN: p = 2·P(S ≥ W) where S is the rank sum of a
//     uniformly random subset of {1..n}, counted by dynamic programming.
//   - n > ExactWilcoxonMaxN: normal approximation with continuity
//     correction on min(W+, W−).
//
// The p-value is capped at 1.
//
// Errors:
//   - ErrSampleSize when the samples are empty or of different lengths.
func WilcoxonPValue(x, y []float64) (float64, error) {
	if len(x) != len(y) || len(x) == 0 {
		return 0, evalErrorf("WilcoxonPValue", ErrSampleSize)
	}
	n := len(x)
	d := make([]float64, n)
	abs := make([]float64, n)
	for i := range x {
		d[i] = x[i] - y[i]
		abs[i] = math.Abs(d[i])
	}
	ranks := averageRanks(abs)

	wPlus := 0.0
	for i, v := range d {
		if v > 0 {
			wPlus += ranks[i]
		}
	}
	half := float64(n*(n+1)) / 2
	wMax := math.Max(wPlus, half-wPlus)

	var p float64
	if n <= ExactWilcoxonMaxN {
		p = exactSignedRankP(wMax, n)
	} else {
		wMin := half - wMax
		mean := float64(n*(n+1)) / 4
		variance := mean * float64(2*n+1) / 6
		z := (wMin - mean - 0.5) / math.Sqrt(variance)
		p = 2 * normalCDF(z)
	}

	return math.Min(p, 1), nil
}

// averageRanks returns 1-based ranks of v, ties sharing their mean rank.
func averageRanks(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	ranks := make([]float64, len(v))
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && v[idx[j]] == v[idx[i]] {
			j++
		}
		mean := float64(i+1+j) / 2 // mean of ranks i+1..j
		for k := i; k < j; k++ {
			ranks[idx[k]] = mean
		}
		i = j
	}
	return ranks
}

// exactSignedRankP returns 2·#{subsets of {1..n} with sum ≥ w} / 2ⁿ.
func exactSignedRankP(w float64, n int) float64 {
	maxSum := n * (n + 1) / 2
	counts := make([]float64, maxSum+1)
	counts[0] = 1
	for r := 1; r <= n; r++ {
		for s := maxSum; s >= r; s-- {
			counts[s] += counts[s-r]
		}
	}
	larger := 0.0
	for s := maxSum; s >= 0 && float64(s) >= w; s-- {
		larger += counts[s]
	}
	return 2 * larger / math.Ldexp(1, n)
}

func normalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// CliffsDelta returns (#{x > y} − #{x < y}) / (|x|·|y|) over all pairs,
// or 0 when either sample is empty.
func CliffsDelta(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	more, less := 0, 0
	for _, a := range x {
		for _, b := range y {
			switch {
			case a > b:
				more++
			case a < b:
				less++
			}
		}
	}
	return float64(more-less) / float64(len(x)*len(y))
}

// AllZero reports whether every value of v is 0.
func AllZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
