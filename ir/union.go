// SPDX-License-Identifier: MIT

package ir

import (
	"github.com/katalvlaran/triad/artifact"
	"github.com/katalvlaran/triad/similarity"
)

// Union averages VSM, LSI and JSD. Used as the bridge between tiers, where
// robustness matters more than any single model's ranking.
type Union struct {
	models []Model
}

// NewUnion returns the VSM+LSI+JSD union. A nil opts uses DefaultOptions().
func NewUnion(opts *Options) *Union {
	return &Union{models: []Model{NewVSM(opts), NewLSI(opts), NewJSD()}}
}

// Name returns "IR-UNION".
func (*Union) Name() string { return NameUnion }

// Compute implements Model: (vsm + lsi + jsd) / 3 over the union of keys,
// absent scores counted as 0, pairs kept only when the mean is > 0.
func (u *Union) Compute(source, target *artifact.Collection) (*similarity.Matrix, error) {
	parts := make([]*similarity.Matrix, 0, len(u.models))
	for _, m := range u.models {
		sm, err := m.Compute(source, target)
		if err != nil {
			return nil, irErrorf("Union."+m.Name(), err)
		}
		parts = append(parts, sm)
	}

	return similarity.Average(parts...), nil
}
