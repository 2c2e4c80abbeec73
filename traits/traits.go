// SPDX-License-Identifier: MIT

package traits

import (
	"reflect"
	"sync"

	"github.com/katalvlaran/fixmat/shape"
)

var (
	intType   = reflect.TypeFor[int]()
	errorType = reflect.TypeFor[error]()
	dimType   = reflect.TypeFor[shape.Dim]()
)

// cache memoizes Of; classification is a pure function of the type.
var cache sync.Map // reflect.Type -> Traits

// Traits is the capability classification of one type.
type Traits struct {
	Type reflect.Type // inspected type (nil for the nil type)

	HasValueType bool // Zero() E with E numeric
	HasShape     bool // Dims() (R, C) with valid dimensions
	HasReader    bool // At(int, int) (E, error)
	HasWriter    bool // Ref(int, int) (*E, error)

	Elem  reflect.Type // E when HasValueType
	Shape shape.Shape  // declared shape when HasShape
}

// IsReadMatrix is HasValueType && HasShape && HasReader.
func (t Traits) IsReadMatrix() bool { return t.HasValueType && t.HasShape && t.HasReader }

// IsReadWriteMatrix is IsReadMatrix && HasWriter.
func (t Traits) IsReadWriteMatrix() bool { return t.IsReadMatrix() && t.HasWriter }

// ElemKind returns the Kind of the declared element type (Invalid when absent).
func (t Traits) ElemKind() Kind {
	if !t.HasValueType {
		return Invalid
	}

	return KindOfType(t.Elem)
}

// Of classifies t by its method set. Total: every predicate defaults to false
// when the structural requirement is absent, including for nil.
//
// Complexity: O(#methods) on first sight of t, O(1) afterwards.
func Of(t reflect.Type) Traits {
	if t == nil {
		return Traits{}
	}
	if v, ok := cache.Load(t); ok {
		return v.(Traits)
	}
	tr := analyze(t)
	cache.Store(t, tr)

	return tr
}

// For is Of for a static type parameter.
func For[T any]() Traits { return Of(reflect.TypeFor[T]()) }

// analyze performs the uncached inspection.
func analyze(t reflect.Type) Traits {
	tr := Traits{Type: t}

	// Method.Type of a concrete type includes the receiver; of an interface it does not.
	recv := 1
	if t.Kind() == reflect.Interface {
		recv = 0
	}

	if ft, ok := method(t, methodZero); ok && ft.NumIn() == recv && ft.NumOut() == 1 {
		if KindOfType(ft.Out(0)).Valid() {
			tr.HasValueType = true
			tr.Elem = ft.Out(0)
		}
	}

	if ft, ok := method(t, methodDims); ok && ft.NumIn() == recv && ft.NumOut() == 2 {
		rows, okR := extent(ft.Out(0))
		cols, okC := extent(ft.Out(1))
		if okR && okC {
			tr.HasShape = true
			tr.Shape = shape.Shape{Rows: rows, Cols: cols}
		}
	}

	// Accessors are defined relative to the value type; without one they cannot match.
	if !tr.HasValueType {
		return tr
	}
	if ft, ok := method(t, methodAt); ok && isAccessor(ft, recv, tr.Elem) {
		tr.HasReader = true
	}
	if ft, ok := method(t, methodRef); ok && isAccessor(ft, recv, reflect.PointerTo(tr.Elem)) {
		tr.HasWriter = true
	}

	return tr
}

// method looks up an exported method and returns its func type.
func method(t reflect.Type, name string) (reflect.Type, bool) {
	m, ok := t.MethodByName(name)
	if !ok {
		return nil, false
	}

	return m.Type, true
}

// isAccessor matches func(int, int) (ret, error) after skipping recv inputs.
func isAccessor(ft reflect.Type, recv int, ret reflect.Type) bool {
	if ft.IsVariadic() || ft.NumIn() != recv+2 || ft.NumOut() != 2 {
		return false
	}
	if ft.In(recv) != intType || ft.In(recv+1) != intType {
		return false
	}

	return ft.Out(0) == ret && ft.Out(1) == errorType
}

// extent evaluates a dimension type. Only value types count: a nil pointer or
// interface cannot be asked for N().
func extent(t reflect.Type) (int, bool) {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface || !t.Implements(dimType) {
		return 0, false
	}
	n := reflect.Zero(t).Interface().(shape.Dim).N()

	return n, n >= 1
}

// HasValueType reports whether T declares a numeric element type.
func HasValueType[T any]() bool { return For[T]().HasValueType }

// HasShape reports whether T declares a valid shape.
func HasShape[T any]() bool { return For[T]().HasShape }

// HasReader reports whether T has a two-index read accessor returning its element type.
func HasReader[T any]() bool { return For[T]().HasReader }

// HasWriter reports whether T has a two-index accessor returning a pointer to its element type.
func HasWriter[T any]() bool { return For[T]().HasWriter }

// IsReadMatrix reports whether T is a read matrix.
func IsReadMatrix[T any]() bool { return For[T]().IsReadMatrix() }

// IsReadWriteMatrix reports whether T is a read-write matrix.
func IsReadWriteMatrix[T any]() bool { return For[T]().IsReadWriteMatrix() }

// IsSameShapeMatrix reports whether A and B are both read matrices of equal shape.
func IsSameShapeMatrix[A, B any]() bool {
	a, b := For[A](), For[B]()

	return a.IsReadMatrix() && b.IsReadMatrix() && a.Shape.Equal(b.Shape)
}
