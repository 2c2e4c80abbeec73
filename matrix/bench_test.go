// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
)

func BenchmarkAddDense(b *testing.B) {
	m, _ := matrix.New[float64, shape.D9, shape.D9]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = m.Plus(m)
	}
}

func BenchmarkAddFallback(b *testing.B) {
	m, _ := matrix.New[float64, shape.D9, shape.D9]()
	h := hide[float64, shape.D9, shape.D9]{m}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Add[float64, shape.D9, shape.D9](h, h)
	}
}

func BenchmarkAt(b *testing.B) {
	m, _ := matrix.New[float64, shape.D9, shape.D9]()
	for i := 0; i < b.N; i++ {
		_, _ = m.At(i%9, (i/9)%9)
	}
}
