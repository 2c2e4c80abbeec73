// SPDX-License-Identifier: MIT
// Package traits: sentinel errors.
// Every capability error is wrapped with the offending type name; match with errors.Is.

package traits

import "errors"

var (
	// ErrNoValueType reports a type without a Zero() E declaration of a numeric E.
	ErrNoValueType = errors.New("traits: no element value type")

	// ErrNoShape reports a type without a Dims() (R, C) declaration of valid dimensions.
	ErrNoShape = errors.New("traits: no shape")

	// ErrNoReader reports a type without At(row, col int) (E, error).
	ErrNoReader = errors.New("traits: no read accessor")

	// ErrNoWriter reports a type without Ref(row, col int) (*E, error).
	ErrNoWriter = errors.New("traits: no write accessor")

	// ErrNotPromotable reports an operand that is neither matrix-like nor a numeric scalar.
	ErrNotPromotable = errors.New("traits: operand is neither matrix-like nor numeric scalar")
)
