// SPDX-License-Identifier: MIT

package sqlstore

import (
	"errors"

	"github.com/katalvlaran/fixmat/matrix"
)

var (
	// ErrNotFound indicates that no matrix is stored under the name.
	ErrNotFound = errors.New("sqlstore: matrix not found")

	// ErrEmptyName indicates an empty matrix name.
	ErrEmptyName = errors.New("sqlstore: empty name")

	// ErrKindMismatch indicates a stored element kind different from E.
	ErrKindMismatch = errors.New("sqlstore: element kind mismatch")

	// ErrDimensionMismatch indicates a stored shape different from R×C.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrCorrupt indicates missing or out-of-shape cells.
	ErrCorrupt = errors.New("sqlstore: corrupt cell data")
)
