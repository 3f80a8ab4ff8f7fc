// SPDX-License-Identifier: MIT

package densemat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat"
	"github.com/stretchr/testify/require"
)

func TestTranspose_Rectangular(t *testing.T) {
	m, err := densemat.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	tr, err := densemat.Transpose[float64](m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	requireEquals(t, tr, []float64{1, 4, 2, 5, 3, 6})
}

func TestTranspose_Involution(t *testing.T) {
	m, err := densemat.NewRandom[float64](3, 7, densemat.WithSeed(31))
	require.NoError(t, err)

	tr, err := densemat.Transpose[float64](m)
	require.NoError(t, err)
	back, err := densemat.Transpose[float64](tr)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 7; j++ {
			mv, _ := m.At(i, j)
			bv, _ := back.At(i, j)
			require.Equal(t, mv, bv)
		}
	}
}

func TestScale_Basic(t *testing.T) {
	m, err := densemat.NewFromSlice(2, 2, []float64{1, -2, 0.5, 4})
	require.NoError(t, err)

	s, err := densemat.Scale[float64](m, -2)
	require.NoError(t, err)
	requireEquals(t, s, []float64{-2, 4, -1, -8})
}

func TestScale_NaNPropagates(t *testing.T) {
	m, err := densemat.NewFromSlice(1, 2, []float64{1, 2})
	require.NoError(t, err)

	s, err := densemat.Scale[float64](m, math.NaN())
	require.NoError(t, err)
	v, _ := s.At(0, 0)
	require.True(t, math.IsNaN(v))
}

func TestHadamard_Basic(t *testing.T) {
	a, err := densemat.NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := densemat.NewFromSlice(2, 2, []float64{2, 0, -1, 0.5})
	require.NoError(t, err)

	h, err := densemat.Hadamard[float64](a, b)
	require.NoError(t, err)
	requireEquals(t, h, []float64{2, 0, -3, 2})
}

func TestHadamard_ShapeMismatch(t *testing.T) {
	a, err := densemat.NewDense[float64](2, 2)
	require.NoError(t, err)
	b, err := densemat.NewDense[float64](2, 3)
	require.NoError(t, err)

	_, err = densemat.Hadamard[float64](a, b)
	require.ErrorIs(t, err, densemat.ErrDimensionMismatch)
}

func TestAllClose_WithinTolerance(t *testing.T) {
	a, err := densemat.NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := densemat.NewFromSlice(2, 2, []float64{1 + 1e-12, 2, 3, 4 - 1e-12})
	require.NoError(t, err)

	ok, err := densemat.AllClose[float64](a, b, 1e-9, densemat.DefaultEpsilon)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllClose_Violation(t *testing.T) {
	a, err := densemat.NewFromSlice(1, 2, []float64{1, 2})
	require.NoError(t, err)
	b, err := densemat.NewFromSlice(1, 2, []float64{1, 2.5})
	require.NoError(t, err)

	ok, err := densemat.AllClose[float64](a, b, 1e-9, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_NonFiniteTolerance(t *testing.T) {
	a, err := densemat.NewDense[float64](1, 1)
	require.NoError(t, err)

	_, err = densemat.AllClose[float64](a, a, math.NaN(), 0)
	require.ErrorIs(t, err, densemat.ErrNaNInf)
	_, err = densemat.AllClose[float64](a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, densemat.ErrNaNInf)
}

func TestAllClose_ShapeMismatch(t *testing.T) {
	a, err := densemat.NewDense[float64](2, 2)
	require.NoError(t, err)
	b, err := densemat.NewDense[float64](2, 3)
	require.NoError(t, err)

	_, err = densemat.AllClose[float64](a, b, 0, 0)
	require.ErrorIs(t, err, densemat.ErrDimensionMismatch)
}

// truncatedMatrix reports a 2×2 shape but can only read its first cell,
// forcing the interface fallback of AllClose onto its error path.
type truncatedMatrix struct{}

func (truncatedMatrix) Rows() int { return 2 }
func (truncatedMatrix) Cols() int { return 2 }

func (truncatedMatrix) At(i, j int) (float64, error) {
	if i == 0 && j == 0 {
		return 0.5, nil
	}

	return 0, densemat.ErrOutOfRange
}

func (truncatedMatrix) Set(int, int, float64) error { return densemat.ErrOutOfRange }

func (truncatedMatrix) Clone() densemat.Matrix[float64] { return truncatedMatrix{} }

func TestAllClose_FallbackPropagatesReadErrors(t *testing.T) {
	_, err := densemat.AllClose[float64](truncatedMatrix{}, truncatedMatrix{}, 0, 0)
	require.ErrorIs(t, err, densemat.ErrOutOfRange)
}

func TestIdentityLike(t *testing.T) {
	sq, err := densemat.NewDense[float64](3, 3)
	require.NoError(t, err)
	id, err := densemat.IdentityLike[float64](sq)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, _ := id.At(i, i)
		require.Equal(t, 1.0, v)
	}

	rect, err := densemat.NewDense[float64](2, 3)
	require.NoError(t, err)
	_, err = densemat.IdentityLike[float64](rect)
	require.ErrorIs(t, err, densemat.ErrNonSquare)

	_, err = densemat.IdentityLike[float64](nil)
	require.ErrorIs(t, err, densemat.ErrNilMatrix)
}

func TestZerosLike(t *testing.T) {
	m, err := densemat.NewRandom[float64](2, 5, densemat.WithSeed(1))
	require.NoError(t, err)
	z, err := densemat.ZerosLike[float64](m)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 5, z.Cols())
	requireEquals(t, z, make([]float64, 10))
}
