// SPDX-License-Identifier: MIT

package similarity

import "errors"

// ErrNegativeK indicates a negative k passed to a top-k query.
var ErrNegativeK = errors.New("similarity: k must be non-negative")
