// SPDX-License-Identifier: MIT

package transitivity

import (
	"github.com/katalvlaran/triad/similarity"
)

// Closure holds the four bridge matrices the paths run over.
type Closure struct {
	si   *similarity.Matrix // source → intermediate
	it   *similarity.Matrix // intermediate → target
	ss   *similarity.Matrix // source → source
	ii   *similarity.Matrix // intermediate → intermediate
	opts Options
}

// New returns a Closure over the S-I, I-T, S-S and I-I matrices. A nil
// matrix is treated as empty; a nil opts uses DefaultOptions(). The
// matrices are only read, never modified.
//
// Errors:
//   - ErrInvalidOptions or ErrUnknownPolicy when opts fails Validate.
func New(si, it, ss, ii *similarity.Matrix, opts *Options) (*Closure, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Closure{si: orEmpty(si), it: orEmpty(it), ss: orEmpty(ss), ii: orEmpty(ii), opts: o}, nil
}

func orEmpty(m *similarity.Matrix) *similarity.Matrix {
	if m == nil {
		return similarity.New()
	}
	return m
}

// Options returns the effective options.
func (c *Closure) Options() Options { return c.opts }

// Apply returns a deep copy of base adjusted by the configured policy.
//
// Behavior highlights:
//   - Multiplicative walks base sources × base targets. For every pair with
//     a positive bonus (Σ path products), the score becomes
//     min(max(cur, cur·(1+bonus)), MaxScore).
//   - Max walks the S-I sources × the I-T targets. For every pair with a
//     positive best path, the score becomes max(cur, best).
//
// Determinism: pairs are visited in sorted order and every adjusted pair
// ends up with exactly one link.
func (c *Closure) Apply(base *similarity.Matrix) *similarity.Matrix {
	out := base.Clone()

	switch c.opts.Policy {
	case Max:
		targets := c.it.Targets()
		for _, s := range c.si.Sources() {
			for _, t := range targets {
				if best := c.BestPath(s, t); best > 0 {
					cur := base.Score(s, t)
					if best > cur {
						cur = best
					}
					out.SetScore(s, t, cur)
				}
			}
		}

	default:
		targets := base.Targets()
		for _, s := range base.Sources() {
			for _, t := range targets {
				bonus := c.Bonus(s, t)
				if bonus <= 0 {
					continue
				}
				cur := base.Score(s, t)
				boosted := cur * (1 + bonus)
				if boosted < cur {
					boosted = cur
				}
				if boosted > MaxScore {
					boosted = MaxScore
				}
				out.SetScore(s, t, boosted)
			}
		}
	}

	return out
}

// Bonus returns the sum of the products of every admissible path from
// source to target.
func (c *Closure) Bonus(source, target string) float64 {
	sum := 0.0
	c.walk(source, target, func(p float64) { sum += p })
	return sum
}

// BestPath returns the largest product over the admissible paths from
// source to target, or 0 when none exists.
func (c *Closure) BestPath(source, target string) float64 {
	best := 0.0
	c.walk(source, target, func(p float64) {
		if p > best {
			best = p
		}
	})
	return best
}

// walk calls visit with the product of every admissible path s ⇝ t.
func (c *Closure) walk(source, target string, visit func(product float64)) {
	k0, m0 := c.opts.hop(0)
	k1, m1 := c.opts.hop(1)
	k2, m2 := c.opts.hop(2)

	// 1) Outer: s → i → t.
	outer := TopLinks(c.si, source, k0, m0)
	for _, si := range outer {
		for _, it := range TopLinks(c.it, si.Target, k1, m1) {
			if it.Target == target {
				visit(si.Score * it.Score)
			}
		}
	}

	// 2) Inner, source side: s → s′ → i → t.
	for _, ss := range TopLinks(c.ss, source, k0, m0) {
		if ss.Target == source {
			continue
		}
		for _, si := range TopLinks(c.si, ss.Target, k1, m1) {
			for _, it := range TopLinks(c.it, si.Target, k2, m2) {
				if it.Target == target {
					visit(ss.Score * si.Score * it.Score)
				}
			}
		}
	}

	// 3) Inner, intermediate side: s → i → i′ → t.
	for _, si := range outer {
		for _, ii := range TopLinks(c.ii, si.Target, k1, m1) {
			if ii.Target == si.Target {
				continue
			}
			for _, it := range TopLinks(c.it, ii.Target, k2, m2) {
				if it.Target == target {
					visit(si.Score * ii.Score * it.Score)
				}
			}
		}
	}
}
