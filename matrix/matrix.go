// SPDX-License-Identifier: MIT

// Package matrix - fixed-shape storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Ref/Set return errors instead of panicking.
//   - Keep the zero value usable: storage is allocated on the first write;
//     reads of unallocated storage see E's zero and never write.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Ref/Set: O(1); Clone/Assign/Fill: O(r*c).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxRef    = "Ref"    // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxFill   = "Fill"   // method tag used in error wrappers
	ctxAssign = "Assign" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an R×C container of E in row-major order (offset = i*C + j).
//   - data has length R*C once allocated; the zero value allocates on first write.
//   - allowNaNInf inverts the numeric policy so the zero value validates.
//
// A Matrix exclusively owns its storage; Ref is the only aliasing path and
// addresses exactly one element.
type Matrix[E traits.Number, R, C shape.Dim] struct {
	data        []E  // contiguous row-major storage
	allowNaNInf bool // numeric guard off when true
}

// Compile-time assertions for contract & fmt.Stringer conformance.
var (
	_ traits.ReadWriter[float64, shape.D3, shape.D3] = (*Matrix[float64, shape.D3, shape.D3])(nil)
	_ fmt.Stringer                                   = (*Matrix[float32, shape.D2, shape.D4])(nil)
)

// New creates an R×C matrix with every element equal to E's zero.
//
// Errors:
//   - ErrInvalidDimensions when R or C reports N() < 1.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[E traits.Number, R, C shape.Dim](opts ...Option) (*Matrix[E, R, C], error) {
	o := gatherOptions(opts...)
	m := &Matrix[E, R, C]{allowNaNInf: !o.validateNaNInf}
	if _, err := m.storage(); err != nil {
		return nil, err
	}

	return m, nil
}

// FromValues creates an R×C matrix from exactly R*C values in row-major order.
//
// Errors:
//   - ErrArity when len(vals) != R*C.
//   - ErrNaNInf for non-finite floats (default policy).
func FromValues[E traits.Number, R, C shape.Dim](vals ...E) (*Matrix[E, R, C], error) {
	m, err := New[E, R, C]()
	if err != nil {
		return nil, err
	}
	if err = m.Fill(vals...); err != nil {
		return nil, err
	}

	return m, nil
}

// storage returns the backing slice, allocating it on first use.
// Only write paths call it.
func (m *Matrix[E, R, C]) storage() ([]E, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.data == nil {
		s, err := shape.Of[R, C]()
		if err != nil {
			return nil, err
		}
		m.data = make([]E, s.Elements())
	}

	return m.data, nil
}

// contents returns the elements for reading. Unallocated storage yields a
// fresh zero slice; m itself is never written.
func (m *Matrix[E, R, C]) contents() ([]E, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.data != nil {
		return m.data, nil
	}
	s, err := shape.Of[R, C]()
	if err != nil {
		return nil, err
	}

	return make([]E, s.Elements()), nil
}

// Zero returns the zero value of E; it declares the element type.
func (m *Matrix[E, R, C]) Zero() E {
	var z E
	return z
}

// Dims returns the dimension types; it declares the shape.
func (m *Matrix[E, R, C]) Dims() (R, C) {
	var r R
	var c C
	return r, c
}

// Shape returns the runtime shape descriptor.
func (m *Matrix[E, R, C]) Shape() shape.Shape {
	return shape.Shape{Rows: shape.DimOf[R](), Cols: shape.DimOf[C]()}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[E, R, C]) Rows() int { return shape.DimOf[R]() }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[E, R, C]) Cols() int { return shape.DimOf[C]() }

// indexOf resolves (row, col) to an offset into the allocated storage.
// Write paths only; At resolves without allocating.
func (m *Matrix[E, R, C]) indexOf(row, col int) ([]E, int, error) {
	data, err := m.storage()
	if err != nil {
		return nil, 0, err
	}
	off, err := m.Shape().Index(row, col)
	if err != nil {
		return nil, 0, err
	}

	return data, off, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when row ∉ [0,R) or col ∉ [0,C).
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1).
func (m *Matrix[E, R, C]) At(row, col int) (E, error) {
	var z E
	if m == nil {
		return z, matrixErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	s, err := shape.Of[R, C]()
	if err != nil {
		return z, matrixErrorf(ctxAt, row, col, err)
	}
	off, err := s.Index(row, col)
	if err != nil {
		return z, matrixErrorf(ctxAt, row, col, err)
	}
	if m.data == nil {
		return z, nil
	}

	return m.data[off], nil
}

// Ref returns a pointer to the element at (row, col). Writes through the
// pointer bypass the numeric policy.
//
// Errors: as At.
func (m *Matrix[E, R, C]) Ref(row, col int) (*E, error) {
	data, off, err := m.indexOf(row, col)
	if err != nil {
		return nil, matrixErrorf(ctxRef, row, col, err)
	}

	return &data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange / ErrNilMatrix as At.
//   - ErrNaNInf when the policy is on and v is not finite.
func (m *Matrix[E, R, C]) Set(row, col int, v E) error {
	data, off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	if !m.allowNaNInf && isNaNInf(v) {
		return matrixErrorf(ctxSet, row, col, ErrNaNInf)
	}
	data[off] = v

	return nil
}

// Fill overwrites every element from exactly R*C values in row-major order.
// Validation happens before the first write; on error m is unchanged.
func (m *Matrix[E, R, C]) Fill(vals ...E) error {
	data, err := m.storage()
	if err != nil {
		return fmt.Errorf("Matrix.%s: %w", ctxFill, err)
	}
	if err = ValidateArity(m.Shape(), len(vals)); err != nil {
		return fmt.Errorf("Matrix.%s: %w", ctxFill, err)
	}
	if !m.allowNaNInf {
		if err = ValidateFinite(vals); err != nil {
			return fmt.Errorf("Matrix.%s: %w", ctxFill, err)
		}
	}
	copy(data, vals)

	return nil
}

// Assign copies src into m element-wise. The copy is staged first, so either
// every element is replaced or m is left untouched.
func (m *Matrix[E, R, C]) Assign(src traits.Reader[E, R, C]) error {
	data, err := m.storage()
	if err != nil {
		return fmt.Errorf("Matrix.%s: %w", ctxAssign, err)
	}
	stage := make([]E, len(data))
	if err = readInto(src, stage); err != nil {
		return fmt.Errorf("Matrix.%s: %w", ctxAssign, err)
	}
	if !m.allowNaNInf {
		if err = ValidateFinite(stage); err != nil {
			return fmt.Errorf("Matrix.%s: %w", ctxAssign, err)
		}
	}
	copy(data, stage)

	return nil
}

// Clone returns a deep copy with the same numeric policy.
// It returns nil for a nil receiver or when R or C is not a valid Dim.
// Complexity: O(r*c).
func (m *Matrix[E, R, C]) Clone() *Matrix[E, R, C] {
	data, err := m.contents()
	if err != nil {
		return nil
	}
	cp := make([]E, len(data))
	copy(cp, data)

	return &Matrix[E, R, C]{data: cp, allowNaNInf: m.allowNaNInf}
}

// Values returns a row-major copy of the elements. It returns nil for a nil
// receiver or when R or C is not a valid Dim.
func (m *Matrix[E, R, C]) Values() []E {
	data, err := m.contents()
	if err != nil {
		return nil
	}

	return append([]E(nil), data...)
}

// Do visits each element in row-major order; it stops when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[E, R, C]) Do(f func(row, col int, v E) bool) {
	data, err := m.contents()
	if err != nil {
		return
	}
	cols := m.Cols()
	for off, v := range data {
		if !f(off/cols, off%cols, v) {
			return
		}
	}
}

// Plus returns m + o element-wise; see Add.
func (m *Matrix[E, R, C]) Plus(o traits.Reader[E, R, C]) (*Matrix[E, R, C], error) {
	return Add[E, R, C](m, o)
}

// Equal reports whether o holds the same values at every coordinate.
// Read errors on o count as inequality.
func (m *Matrix[E, R, C]) Equal(o traits.Reader[E, R, C]) bool {
	data, err := m.contents()
	if err != nil || ValidateNotNil(o) != nil {
		return false
	}
	other := make([]E, len(data))
	if err = readInto(o, other); err != nil {
		return false
	}
	for i := range data {
		if data[i] != other[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
// Not for hot paths.
func (m *Matrix[E, R, C]) String() string {
	data, err := m.contents()
	if err != nil {
		return "<nil>"
	}
	var b strings.Builder
	writeRows(&b, m.Rows(), m.Cols(), func(off int) string { return fmt.Sprint(data[off]) })

	return b.String()
}

// writeRows is the shared row renderer for String and Format.
func writeRows(b *strings.Builder, rows, cols int, cell func(off int) string) {
	var i, j int
	for i = 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < cols; j++ {
			b.WriteString(cell(i*cols + j))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}
}
