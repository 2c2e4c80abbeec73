// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/shape"
)

// TestOptionsLastWriterWins checks option ordering and nil tolerance.
func TestOptionsLastWriterWins(t *testing.T) {
	m, err := matrix.New[float64, shape.D1, shape.D1](
		matrix.WithNoValidateNaNInf(),
		nil,
		matrix.WithValidateNaNInf(),
	)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	m, err = matrix.New[float64, shape.D1, shape.D1](
		matrix.WithValidateNaNInf(),
		matrix.WithNoValidateNaNInf(),
	)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

// TestClonePreservesPolicy ensures Clone carries the numeric policy.
func TestClonePreservesPolicy(t *testing.T) {
	m, err := matrix.New[float64, shape.D1, shape.D1](matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Clone().Set(0, 0, math.Inf(1)))

	strict, err := matrix.New[float64, shape.D1, shape.D1]()
	require.NoError(t, err)
	require.ErrorIs(t, strict.Clone().Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}
