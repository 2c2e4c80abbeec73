// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
	"github.com/katalvlaran/fixmat/traits"
)

// counter is a 2x3 read matrix unknown to package matrix, with int16 elements.
type counter struct{}

func (counter) Zero() int16 { return 0 }
func (counter) Dims() (shape.D2, shape.D3) { return shape.D2{}, shape.D3{} }
func (counter) At(r, c int) (int16, error) { return int16(10*r + c), nil }

// notAMatrix has a reader but declares no shape.
type notAMatrix struct{}

func (notAMatrix) Zero() float64 { return 0 }
func (notAMatrix) At(_, _ int) (float64, error) { return 0, nil }

// nanSource yields NaN everywhere.
type nanSource struct{}

func (nanSource) Zero() float64 { return 0 }
func (nanSource) Dims() (shape.D1, shape.D2) { return shape.D1{}, shape.D2{} }
func (nanSource) At(_, _ int) (float64, error) { return math.NaN(), nil }

// TestConvertRoundTrip checks B.At(r,c) == A.At(r,c) for every coordinate.
func TestConvertRoundTrip(t *testing.T) {
	a := mustLiteral3(t)
	b, err := matrix.Convert[float32, float32, shape.D3, shape.D3](a)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t,
				mustAt[float32, shape.D3, shape.D3](t, a, r, c),
				mustAt[float32, shape.D3, shape.D3](t, b, r, c))
		}
	}

	// Independent storage.
	require.NoError(t, b.Set(0, 0, -1))
	require.Equal(t, float32(1), mustAt[float32, shape.D3, shape.D3](t, a, 0, 0))
}

// TestConvertElementType converts between element kinds.
func TestConvertElementType(t *testing.T) {
	src, err := matrix.FromValues[float64, shape.D1, shape.D3](1.9, -2.5, 3)
	require.NoError(t, err)
	ints, err := matrix.Convert[int, float64, shape.D1, shape.D3](src)
	require.NoError(t, err)
	require.Equal(t, []int{1, -2, 3}, ints.Values())

	fromView, err := matrix.Convert[float64, int16, shape.D2, shape.D3](counter{})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 10, 11, 12}, fromView.Values())
}

// TestConvertFailingSource yields no partial result.
func TestConvertFailingSource(t *testing.T) {
	out, err := matrix.Convert[float32, float32, shape.D3, shape.D3](failing{row: 0, col: 1})
	require.ErrorIs(t, err, errBroken)
	require.Nil(t, out)

	_, err = matrix.Convert[float64, float64, shape.D1, shape.D2](nanSource{})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose, err := matrix.Convert[float64, float64, shape.D1, shape.D2](nanSource{}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(mustAt[float64, shape.D1, shape.D2](t, loose, 0, 1)))
}

// TestFromAny covers the runtime structural path.
func TestFromAny(t *testing.T) {
	m, err := matrix.FromAny[float32, shape.D2, shape.D3](counter{})
	require.NoError(t, err)
	require.Equal(t, []float32{0, 1, 2, 10, 11, 12}, m.Values())

	// Same element type takes the static path.
	id, err := matrix.FromAny[float32, shape.D3, shape.D3](eye3f{})
	require.NoError(t, err)
	require.True(t, id.Equal(eye3f{}))
}

// TestFromAnyDiagnostics names the missing capability or the shape problem.
func TestFromAnyDiagnostics(t *testing.T) {
	_, err := matrix.FromAny[float32, shape.D2, shape.D3](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromAny[float32, shape.D2, shape.D3](42)
	require.ErrorIs(t, err, traits.ErrNoValueType)

	_, err = matrix.FromAny[float32, shape.D2, shape.D3](notAMatrix{})
	require.ErrorIs(t, err, traits.ErrNoShape)

	_, err = matrix.FromAny[float32, shape.D3, shape.D2](counter{})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromAny[float64, shape.D3, shape.D3](failing{row: 2, col: 0})
	require.ErrorIs(t, err, errBroken)
}

// TestFormat renders arbitrary readers.
func TestFormat(t *testing.T) {
	s, err := matrix.Format[int16, shape.D2, shape.D3](counter{})
	require.NoError(t, err)
	require.Equal(t, "[0, 1, 2]\n[10, 11, 12]\n", s)

	_, err = matrix.Format[float32, shape.D3, shape.D3](failing{row: 0, col: 0})
	require.ErrorIs(t, err, errBroken)
}

// TestFacades exercises the thin API aliases.
func TestFacades(t *testing.T) {
	z, err := matrix.NewZeros[float64, shape.D2, shape.D2]()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0}, z.Values())

	like, err := matrix.ZerosLike[float32, shape.D3, shape.D3](mustLiteral3(t))
	require.NoError(t, err)
	require.True(t, like.Equal(&m3x3f{}))

	cp, err := matrix.CloneMatrix[int16, shape.D2, shape.D3](counter{})
	require.NoError(t, err)
	require.Equal(t, []int16{0, 1, 2, 10, 11, 12}, cp.Values())

	_, err = matrix.ZerosLike[float32, shape.D3, shape.D3](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
