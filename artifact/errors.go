// SPDX-License-Identifier: MIT

package artifact

import "errors"

// Sentinel errors for artifact construction and dataset loading.
var (
	// ErrUnknownKind indicates an artifact type name that maps to no Kind.
	ErrUnknownKind = errors.New("artifact: unknown kind")

	// ErrMissingDir indicates a dataset tier directory that does not exist.
	ErrMissingDir = errors.New("artifact: dataset directory not found")

	// ErrNotDir indicates a dataset tier path that is a regular file.
	ErrNotDir = errors.New("artifact: dataset path is not a directory")
)
