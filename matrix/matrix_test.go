// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Matrix container.
package matrix_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

type dZero struct{}

func (dZero) N() int { return 0 }

// TestNewZeroed checks that every element of a new matrix equals zero.
func TestNewZeroed(t *testing.T) {
	m, err := matrix.New[float32, shape.D3, shape.D3]()
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Zero(t, mustAt[float32, shape.D3, shape.D3](t, m, r, c))
		}
	}

	wide, err := matrix.New[int16, shape.D1, shape.D9]()
	require.NoError(t, err)
	require.Equal(t, make([]int16, 9), wide.Values())
}

// TestZeroValueUsable verifies lazy allocation of the zero value.
func TestZeroValueUsable(t *testing.T) {
	var m m4x4d
	v, err := m.At(3, 3)
	require.NoError(t, err)
	require.Zero(t, v)

	require.NoError(t, m.Set(3, 3, 2.5))
	require.Equal(t, 2.5, mustAt[float64, shape.D4, shape.D4](t, &m, 3, 3))
	require.Len(t, m.Values(), 16)
}

// TestZeroValueConcurrentReads runs readers in parallel on an unallocated
// matrix; run with -race. Reads must not allocate storage.
func TestZeroValueConcurrentReads(t *testing.T) {
	var m matrix.Matrix[float64, shape.D3, shape.D3]
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				v, err := m.At(1, 1)
				if err != nil || v != 0 {
					errs <- fmt.Errorf("At(1,1) = %v, %v", v, err)
					return
				}
				_ = m.Values()
				_ = m.String()
				_ = m.Equal(&m)
				m.Do(func(_, _ int, _ float64) bool { return true })
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// still unallocated: reads saw zeros, Clone copies zeros
	cp := m.Clone()
	require.NotNil(t, cp)
	require.Equal(t, make([]float64, 9), cp.Values())
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n[0, 0, 0]\n", m.String())

	_, err := m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneValuesNil covers the nil results of Clone and Values.
func TestCloneValuesNil(t *testing.T) {
	var nilM *m3x3f
	require.Nil(t, nilM.Clone())
	require.Nil(t, nilM.Values())

	var bad matrix.Matrix[float64, shape.D2, dZero]
	require.Nil(t, bad.Clone())
	require.Nil(t, bad.Values())
}

// TestContainerCapabilities checks structural detection on the container.
// Methods have pointer receivers, so only *Matrix qualifies.
func TestContainerCapabilities(t *testing.T) {
	require.True(t, traits.IsReadMatrix[*m3x3f]())
	require.True(t, traits.IsReadWriteMatrix[*m3x3f]())
	require.False(t, traits.IsReadMatrix[m3x3f]())
	require.False(t, traits.IsReadWriteMatrix[m3x3f]())

	k, err := traits.Promote[*m3x3f, int]()
	require.NoError(t, err)
	require.Equal(t, traits.Float32, k)

	k, err = traits.Promote[*m4x4d, *m3x3f]()
	require.NoError(t, err)
	require.Equal(t, traits.Float64, k)
}

// TestNewInvalidDimensions ensures broken dimension types are rejected.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[float64, dZero, shape.D2]()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	var m matrix.Matrix[float64, shape.D2, dZero]
	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestShape verifies Rows, Cols and Shape.
func TestShape(t *testing.T) {
	m, err := matrix.New[float64, shape.D2, shape.D5]()
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 5, m.Cols())
	require.Equal(t, shape.Shape{Rows: 2, Cols: 5}, m.Shape())
}

// TestFromValuesRowMajor checks literal construction order.
func TestFromValuesRowMajor(t *testing.T) {
	m, err := matrix.FromValues[int, shape.D2, shape.D3](1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	require.Equal(t, 3, mustAt[int, shape.D2, shape.D3](t, m, 0, 2))
	require.Equal(t, 4, mustAt[int, shape.D2, shape.D3](t, m, 1, 0))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Values())
}

// TestFromValuesArity rejects too few and too many elements.
func TestFromValuesArity(t *testing.T) {
	_, err := matrix.FromValues[float32, shape.D3, shape.D3](1, 2, 3)
	require.ErrorIs(t, err, matrix.ErrArity)
	require.Contains(t, err.Error(), "got 3 elements, want 9")

	_, err = matrix.FromValues[float32, shape.D1, shape.D1](1, 2)
	require.ErrorIs(t, err, matrix.ErrArity)

	_, err = matrix.FromValues[float32, shape.D1, shape.D1]()
	require.ErrorIs(t, err, matrix.ErrArity)
}

// TestAtRefSetOutOfBounds ensures every accessor reports ErrOutOfRange.
func TestAtRefSetOutOfBounds(t *testing.T) {
	m := mustLiteral3(t)
	cases := []struct{ r, c int }{{3, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}}
	for _, tc := range cases {
		_, err := m.At(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.r, tc.c)

		p, err := m.Ref(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Ref(%d,%d)", tc.r, tc.c)
		require.Nil(t, p)

		err = m.Set(tc.r, tc.c, 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.r, tc.c)
	}

	_, err := m.At(3, 0)
	require.EqualError(t, err, "Matrix.At(3,0): shape: index out of range")
	// Nothing was written by the failed calls.
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, m.Values())
}

// TestRefMutatesOneElement checks the mutable reference contract.
func TestRefMutatesOneElement(t *testing.T) {
	m := mustLiteral3(t)
	p, err := m.Ref(1, 1)
	require.NoError(t, err)
	*p = 50

	require.Equal(t, []float32{1, 2, 3, 4, 50, 6, 7, 8, 9}, m.Values())
}

// TestSetPolicy covers the NaN/Inf guard.
func TestSetPolicy(t *testing.T) {
	m, err := matrix.New[float64, shape.D2, shape.D2]()
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.New[float64, shape.D2, shape.D2](matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(mustAt[float64, shape.D2, shape.D2](t, loose, 0, 0), 1))

	_, err = matrix.FromValues[float64, shape.D1, shape.D2](1, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFillAllOrNothing verifies Fill validates before writing.
func TestFillAllOrNothing(t *testing.T) {
	m, err := matrix.FromValues[float64, shape.D1, shape.D3](1, 2, 3)
	require.NoError(t, err)

	require.ErrorIs(t, m.Fill(9, math.NaN(), 9), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Fill(9, 9), matrix.ErrArity)
	require.Equal(t, []float64{1, 2, 3}, m.Values())

	require.NoError(t, m.Fill(7, 8, 9))
	require.Equal(t, []float64{7, 8, 9}, m.Values())
}

// TestAssign covers assignment from another read matrix.
func TestAssign(t *testing.T) {
	var m m3x3f
	require.NoError(t, m.Assign(eye3f{}))
	require.True(t, m.Equal(eye3f{}))

	// A failing source leaves the destination untouched.
	before := m.Values()
	err := m.Assign(failing{row: 2, col: 2})
	require.ErrorIs(t, err, errBroken)
	require.Equal(t, before, m.Values())

	require.ErrorIs(t, m.Assign(nil), matrix.ErrNilMatrix)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustLiteral3(t)
	cp := m.Clone()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 0, 100))
	require.Equal(t, float32(1), mustAt[float32, shape.D3, shape.D3](t, m, 0, 0))
	require.False(t, m.Equal(cp))
}

// TestNilReceiver ensures nil matrices report ErrNilMatrix instead of panicking.
func TestNilReceiver(t *testing.T) {
	var m *m3x3f
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Ref(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Nil(t, m.Clone())
	require.Nil(t, m.Values())
	require.Equal(t, "<nil>", m.String())
}

// TestDoEarlyStop checks row-major visiting and early exit.
func TestDoEarlyStop(t *testing.T) {
	m := mustLiteral3(t)
	var seen []float32
	m.Do(func(r, c int, v float32) bool {
		require.Equal(t, float32(r*3+c+1), v)
		seen = append(seen, v)
		return len(seen) < 4
	})
	require.Equal(t, []float32{1, 2, 3, 4}, seen)
}

// TestStringOutput checks that String formats rows as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.FromValues[int, shape.D2, shape.D2](1, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
