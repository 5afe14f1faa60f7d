// SPDX-License-Identifier: MIT

package evaluation

import (
	"math"

	"github.com/katalvlaran/triad/similarity"
)

// Default threshold sweep: 0.1, 0.2, …, 0.9.
const (
	DefaultThresholdStart = 0.1
	DefaultThresholdEnd   = 0.9
	DefaultThresholdStep  = 0.1
)

// ThresholdResult is the PRF of the links scoring strictly above Threshold.
type ThresholdResult struct {
	Threshold float64
	PRF
	Amount int // number of links retrieved
}

// TopKResult is the PRF of the k best links per source.
type TopKResult struct {
	K int
	PRF
	Amount int
}

// Thresholds returns start, start+step, … up to end inclusive. Values are
// rounded to 9 decimals so that 0.1+0.2 prints as 0.3.
//
// Errors:
//   - ErrBadThresholds when step ≤ 0 or end < start.
func Thresholds(start, end, step float64) ([]float64, error) {
	if !(step > 0) || end < start || math.IsNaN(start) || math.IsNaN(end) {
		return nil, evalErrorf("Thresholds", ErrBadThresholds)
	}
	n := int(math.Floor((end-start)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((start+float64(i)*step)*1e9) / 1e9
	}
	return out, nil
}

// ThresholdSweep evaluates m at every threshold.
func ThresholdSweep(m *similarity.Matrix, gold *GoldStandard, thresholds []float64) []ThresholdResult {
	out := make([]ThresholdResult, 0, len(thresholds))
	for _, th := range thresholds {
		links := m.LinksAbove(th)
		out = append(out, ThresholdResult{Threshold: th, PRF: ComputePRF(links, gold), Amount: len(links)})
	}
	return out
}

// EvaluateTopK evaluates the k best links of every source.
//
// Errors:
//   - similarity.ErrNegativeK when k < 0.
func EvaluateTopK(m *similarity.Matrix, gold *GoldStandard, k int) (TopKResult, error) {
	links, err := m.TopK(k)
	if err != nil {
		return TopKResult{}, evalErrorf("EvaluateTopK", err)
	}
	return TopKResult{K: k, PRF: ComputePRF(links, gold), Amount: len(links)}, nil
}
