// SPDX-License-Identifier: MIT

package transitivity

import (
	"fmt"
	"math"
	"strings"
)

// Policy selects how path scores are folded into the base score.
//
//   - Multiplicative: bonus = Σ path products; new = min(max(cur, cur·(1+bonus)), MaxScore).
//     Only pairs of the base matrix can grow; a zero base score stays zero.
//   - Max:            new = max(cur, best single path product). Discovers pairs
//     absent from the base matrix.
type Policy int

const (
	// Multiplicative boosts existing scores by the summed path bonus.
	Multiplicative Policy = iota

	// Max keeps the better of the base score and the best path.
	Max
)

// String returns "multiplicative" or "max".
func (p Policy) String() string {
	switch p {
	case Multiplicative:
		return "multiplicative"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a case-insensitive name to a Policy; "" is Multiplicative.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "multiplicative", "mult":
		return Multiplicative, nil
	case "max", "conservative":
		return Max, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Defaults for the hop schedule.
const (
	DefaultT = 3
	DefaultM = 0.5

	// MaxScore caps multiplicative boosts below certainty.
	MaxScore = 0.9999

	// hopStep raises the relative cut-off by this much per additional hop.
	hopStep = 0.1
)

// Options configures the hop schedule and the policy. Hop h (0-based) keeps
// the top T−h links scoring at least (M + h·0.1) of the row maximum.
type Options struct {
	T      int
	M      float64
	Policy Policy
}

// DefaultOptions returns T=3, M=0.5 and the Multiplicative policy.
func DefaultOptions() Options {
	return Options{T: DefaultT, M: DefaultM, Policy: Multiplicative}
}

// Validate reports ErrInvalidOptions when T < 1 or M is outside [0, 1].
func (o Options) Validate() error {
	if o.T < 1 {
		return fmt.Errorf("%w: T=%d < 1", ErrInvalidOptions, o.T)
	}
	if math.IsNaN(o.M) || o.M < 0 || o.M > 1 {
		return fmt.Errorf("%w: M=%v not in [0,1]", ErrInvalidOptions, o.M)
	}
	if o.Policy != Multiplicative && o.Policy != Max {
		return fmt.Errorf("%w: %v", ErrUnknownPolicy, o.Policy)
	}
	return nil
}

// hop returns the (k, m) budget of hop h.
func (o Options) hop(h int) (int, float64) {
	return o.T - h, o.M + float64(h)*hopStep
}
