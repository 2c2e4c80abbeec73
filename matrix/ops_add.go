// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise addition, the one arithmetic operator of the package.
//   - Add: same element type on both sides, result of that type.
//   - AddAs: mixed element types; the caller names the result type O and it
//     must equal traits.Promote[A, B] (checked before any work).
//
// Determinism & Performance:
//   - Fixed row-major order; *Matrix operands take the flat-slice fast path.
//   - One allocation for the result plus one staging buffer for rhs.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// Add returns a + b element-wise as a new matrix of the shared shape.
// Operands of different shape do not compile.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - any error returned by an operand's At (no partial result).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add[E traits.Number, R, C shape.Dim](a, b traits.Reader[E, R, C]) (*Matrix[E, R, C], error) {
	return AddAs[E, E, E, R, C](a, b)
}

// AddAs returns O(a) + O(b) element-wise for operands of element types A and B.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrPromotion when O is not the promotion of A and B.
//   - any error returned by an operand's At.
func AddAs[O, A, B traits.Number, R, C shape.Dim](a traits.Reader[A, R, C], b traits.Reader[B, R, C]) (*Matrix[O, R, C], error) {
	// Validate presence first, then the type relation.
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Add: lhs: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Add: rhs: %w", err)
	}
	if err := ValidatePromotion[O, A, B](); err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}

	out, err := New[O, R, C]()
	if err != nil {
		return nil, fmt.Errorf("Add: %w", err)
	}
	if err = readInto(a, out.data); err != nil {
		return nil, fmt.Errorf("Add: lhs: %w", err)
	}
	rhs := make([]O, len(out.data))
	if err = readInto(b, rhs); err != nil {
		return nil, fmt.Errorf("Add: rhs: %w", err)
	}
	for i := range out.data {
		out.data[i] += rhs[i]
	}

	return out, nil
}
