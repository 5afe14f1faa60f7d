// SPDX-License-Identifier: MIT

package app

import "errors"

// ErrNoGoldStandard marks a project evaluated without a gold standard path.
var ErrNoGoldStandard = errors.New("app: project has no gold standard")
