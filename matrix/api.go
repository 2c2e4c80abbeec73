// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points; each delegates to the
//     canonical implementation without duplicating loops.

package matrix

import (
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// NewZeros returns a zero-initialized R×C matrix; alias of New.
func NewZeros[E traits.Number, R, C shape.Dim](opts ...Option) (*Matrix[E, R, C], error) {
	return New[E, R, C](opts...)
}

// NewIdentity materializes the N×N identity into an owning matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[E traits.Number, N shape.Dim]() (*Matrix[E, N, N], error) {
	return Convert[E, E, N, N](Eye[E, N]())
}

// ZerosLike returns a zero matrix with the same type and shape as src.
func ZerosLike[E traits.Number, R, C shape.Dim](src traits.Reader[E, R, C]) (*Matrix[E, R, C], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}

	return New[E, R, C]()
}

// CloneMatrix copies any read matrix into a new owning matrix of the same type.
func CloneMatrix[E traits.Number, R, C shape.Dim](src traits.Reader[E, R, C], opts ...Option) (*Matrix[E, R, C], error) {
	return Convert[E, E, R, C](src, opts...)
}

// Sum is an alias for Add: element-wise a + b.
func Sum[E traits.Number, R, C shape.Dim](a, b traits.Reader[E, R, C]) (*Matrix[E, R, C], error) {
	return Add[E, R, C](a, b)
}
