// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

type (
	m3x3f = matrix.Matrix[float32, shape.D3, shape.D3]
	m4x4d = matrix.Matrix[float64, shape.D4, shape.D4]
	eye3f = matrix.Identity[float32, shape.D3, shape.D3]
)

// errBroken is returned by broken readers.
var errBroken = errors.New("broken reader")

// hide wraps a reader to hide its concrete type, forcing the At fallback path.
type hide[E traits.Number, R, C shape.Dim] struct{ traits.Reader[E, R, C] }

// failing is a 3x3 reader whose At fails at one coordinate.
type failing struct{ row, col int }

func (failing) Zero() float32 { return 0 }
func (failing) Dims() (shape.D3, shape.D3) { return shape.D3{}, shape.D3{} }
func (f failing) At(r, c int) (float32, error) {
	if r == f.row && c == f.col {
		return 0, errBroken
	}

	return float32(r*3 + c), nil
}

// mustLiteral3 builds the 1..9 row-major float32 fixture or fails the test.
func mustLiteral3(t *testing.T) *m3x3f {
	t.Helper()
	m, err := matrix.FromValues[float32, shape.D3, shape.D3](1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}

	return m
}

// mustAt reads (r, c) or fails the test.
func mustAt[E traits.Number, R, C shape.Dim](t *testing.T, m traits.Reader[E, R, C], r, c int) E {
	t.Helper()
	v, err := m.At(r, c)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", r, c, err)
	}

	return v
}
