// SPDX-License-Identifier: MIT

package transitivity

import "errors"

// Sentinel errors for transitivity configuration.
var (
	// ErrInvalidOptions indicates a hop budget or cut-off outside its domain.
	ErrInvalidOptions = errors.New("transitivity: invalid options")

	// ErrUnknownPolicy indicates a policy name that maps to no Policy.
	ErrUnknownPolicy = errors.New("transitivity: unknown policy")
)
