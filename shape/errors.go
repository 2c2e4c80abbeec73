// SPDX-License-Identifier: MIT
// Package shape: sentinel errors.
// Callers match them with errors.Is; higher packages re-export them.

package shape

import "errors"

var (
	// ErrInvalidDimensions indicates that a dimension type reported N() < 1.
	ErrInvalidDimensions = errors.New("shape: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	ErrOutOfRange = errors.New("shape: index out of range")
)
