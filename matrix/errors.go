// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No code path panics on user input.

package matrix

import (
	"errors"

	"github.com/katalvlaran/fixmat/shape"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Accessors wrap
// sentinels with their method tag and coordinates, e.g.
// "Matrix.At(3,0): shape: index out of range"; errors.Is still matches.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/arity -> promotion -> index -> NaN/Inf.

var (
	// ErrOutOfRange indicates that a row or column index is outside the shape.
	// It is the shape package sentinel, re-exported for callers of this package.
	ErrOutOfRange = shape.ErrOutOfRange

	// ErrInvalidDimensions indicates a dimension type reporting N() < 1.
	ErrInvalidDimensions = shape.ErrInvalidDimensions

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrArity indicates a literal list whose length differs from Rows*Cols.
	ErrArity = errors.New("matrix: element count does not match shape")

	// ErrDimensionMismatch indicates a runtime source whose declared shape
	// differs from the destination shape (FromAny only; static paths do not compile).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrPromotion indicates that the requested result element type is not the
	// promotion of the operand element types.
	ErrPromotion = errors.New("matrix: result type is not the promoted type")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
