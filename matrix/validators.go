// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinels wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures src is neither a nil interface nor a typed nil pointer.
//
// Returns ErrNilMatrix on violation.
// Complexity: O(1).
func ValidateNotNil(src any) error {
	if src == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(src); v.Kind() == reflect.Pointer && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateArity ensures a literal list of n elements fills shape s exactly.
//
// Returns ErrArity (with both counts in the message) on violation.
func ValidateArity(s shape.Shape, n int) error {
	if n != s.Elements() {
		return validatorErrorf(fmt.Sprintf("ValidateArity(%s): got %d elements, want %d", s, n, s.Elements()), ErrArity)
	}

	return nil
}

// ValidateSameShape ensures two runtime shapes match pairwise.
func ValidateSameShape(a, b shape.Shape) error {
	if a.Rows != b.Rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols != b.Cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every value is finite. It returns ErrNaNInf with the
// row-major offset of the first offender.
//
// Complexity: O(len(vals)); integer kinds short-circuit to O(1).
func ValidateFinite[E traits.Number](vals []E) error {
	if !traits.KindOf[E]().IsFloat() {
		return nil
	}
	for i, v := range vals {
		if isNaNInf(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: offset %d", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidatePromotion ensures O is the element type produced by adding A and B.
func ValidatePromotion[O, A, B traits.Number]() error {
	want, err := traits.Promote[A, B]()
	if err != nil {
		return validatorErrorf("ValidatePromotion", err)
	}
	if got := traits.KindOf[O](); got != want {
		return validatorErrorf(fmt.Sprintf("ValidatePromotion: %s + %s is %s, not %s",
			traits.KindOf[A](), traits.KindOf[B](), want, got), ErrPromotion)
	}

	return nil
}

// isNaNInf reports whether v is NaN or ±Inf; integers never are.
func isNaNInf[E traits.Number](v E) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
