// SPDX-License-Identifier: MIT

package mmstore

import (
	"errors"

	"github.com/katalvlaran/fixmat/matrix"
)

var (
	// ErrBadHeader indicates a missing magic, a truncated file or a size
	// that does not match the header.
	ErrBadHeader = errors.New("mmstore: bad header")

	// ErrKindMismatch indicates a file whose element kind differs from E.
	ErrKindMismatch = errors.New("mmstore: element kind mismatch")

	// ErrDimensionMismatch indicates a file whose shape differs from R×C.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrClosed indicates use of a store after Close.
	ErrClosed = errors.New("mmstore: closed")

	// ErrOutOfRange is the shared index sentinel.
	ErrOutOfRange = matrix.ErrOutOfRange
)
