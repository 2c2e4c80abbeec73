// SPDX-License-Identifier: MIT

package traits

import (
	"fmt"
	"reflect"
)

// Promote returns the element kind produced by adding one element of A to one
// element of B. Each operand is either element-bearing (declares a value type;
// contributes that type) or a bare numeric scalar (contributes itself).
//
// Errors:
//   - ErrNotPromotable, naming the operand position, when an operand is neither.
func Promote[A, B any]() (Kind, error) {
	return PromoteTypes(reflect.TypeFor[A](), reflect.TypeFor[B]())
}

// MustPromote is Promote for package-level assertions; it panics on error.
func MustPromote[A, B any]() Kind {
	k, err := Promote[A, B]()
	if err != nil {
		panic(err)
	}

	return k
}

// PromoteTypes is Promote over reflect types.
func PromoteTypes(a, b reflect.Type) (Kind, error) {
	ka, err := operandKind(1, a)
	if err != nil {
		return Invalid, err
	}
	kb, err := operandKind(2, b)
	if err != nil {
		return Invalid, err
	}

	return PromoteKinds(ka, kb), nil
}

// operandKind classifies one operand; exactly one branch applies.
func operandKind(pos int, t reflect.Type) (Kind, error) {
	if tr := Of(t); tr.HasValueType {
		return tr.ElemKind(), nil
	}
	if k := KindOfType(t); k.Valid() {
		return k, nil
	}

	return Invalid, fmt.Errorf("traits: promote operand %d (%s): %w", pos, typeName(t), ErrNotPromotable)
}

// PromoteKinds combines two numeric kinds:
//   - equal kinds yield that kind;
//   - any float yields Float64 if either side is Float64, else Float32;
//   - integers: the wider kind wins; at equal width mixed signedness yields
//     the unsigned kind, and equal signedness yields the platform Int/Uint.
//
// Invalid on either side yields Invalid.
func PromoteKinds(a, b Kind) Kind {
	if !a.Valid() || !b.Valid() {
		return Invalid
	}
	if a == b {
		return a
	}
	if a.IsFloat() || b.IsFloat() {
		if a == Float64 || b == Float64 {
			return Float64
		}
		return Float32
	}

	sa, sb := a.Size(), b.Size()
	switch {
	case sa > sb:
		return a
	case sb > sa:
		return b
	case a.IsSigned() != b.IsSigned():
		if a.IsSigned() {
			return b
		}
		return a
	case a.IsSigned():
		return Int
	default:
		return Uint
	}
}
