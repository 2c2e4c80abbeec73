// SPDX-License-Identifier: MIT

package traits

import (
	"math/bits"
	"reflect"
)

// Number is the constraint for matrix elements: built-in integer and
// floating-point kinds, including named types over them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind is the runtime tag of a numeric element type.
type Kind uint8

// Supported kinds. Invalid marks a non-numeric type.
const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

var kindTypes = [...]reflect.Type{
	Int:     reflect.TypeFor[int](),
	Int8:    reflect.TypeFor[int8](),
	Int16:   reflect.TypeFor[int16](),
	Int32:   reflect.TypeFor[int32](),
	Int64:   reflect.TypeFor[int64](),
	Uint:    reflect.TypeFor[uint](),
	Uint8:   reflect.TypeFor[uint8](),
	Uint16:  reflect.TypeFor[uint16](),
	Uint32:  reflect.TypeFor[uint32](),
	Uint64:  reflect.TypeFor[uint64](),
	Float32: reflect.TypeFor[float32](),
	Float64: reflect.TypeFor[float64](),
}

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[Invalid]
}

// Valid reports whether k names a numeric kind.
func (k Kind) Valid() bool { return k > Invalid && k <= Float64 }

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// IsSigned reports whether k holds negative values (floats included).
func (k Kind) IsSigned() bool {
	switch k {
	case Int, Int8, Int16, Int32, Int64, Float32, Float64:
		return true
	}

	return false
}

// Size returns the width of k in bytes, 0 for Invalid.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Int, Uint:
		return bits.UintSize / 8
	}

	return 0
}

// Type returns the built-in reflect.Type for k, nil for Invalid.
func (k Kind) Type() reflect.Type {
	if !k.Valid() {
		return nil
	}

	return kindTypes[k]
}

// KindOfType maps a reflect.Type to its numeric Kind by underlying kind, so
// named types (type Meters float64) classify like their base type.
func KindOfType(t reflect.Type) Kind {
	if t == nil {
		return Invalid
	}
	switch t.Kind() {
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	}

	return Invalid
}

// KindOf returns the Kind of T.
func KindOf[T any]() Kind { return KindOfType(reflect.TypeFor[T]()) }

// IsScalar reports whether T is a built-in integer or floating-point type.
func IsScalar[T any]() bool { return KindOf[T]().Valid() }
