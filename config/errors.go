// SPDX-License-Identifier: MIT

package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrConfigExists indicates that WriteDefault would overwrite a file.
	ErrConfigExists = errors.New("config: file already exists")
)
