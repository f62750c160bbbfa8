// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvquantile/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestFromGonum views a gonum matrix and a gonum sub-slice without copying.
func TestFromGonum(t *testing.T) {
	g := mat.NewDense(3, 4, grid(3, 4))

	v, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.Equal(t, grid(3, 4), v.Values())

	sub := g.Slice(1, 3, 1, 3).(*mat.Dense)
	sv, err := matrix.FromGonum(sub)
	require.NoError(t, err)
	rs, _ := sv.Strides()
	require.Equal(t, 4, rs, "sub-slices keep the parent stride")
	require.Equal(t, []float64{5, 6, 9, 10}, sv.Values())

	g.Set(2, 2, -1)
	got, _ := sv.At(1, 1)
	require.Equal(t, -1.0, got)

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestToGonum shares storage in both directions.
func TestToGonum(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	g, err := m.ToGonum()
	require.NoError(t, err)
	require.Equal(t, 3.0, g.At(1, 0))
	require.Equal(t, 10.0, mat.Sum(g))

	g.Set(0, 1, 7)
	got, _ := m.At(0, 1)
	require.Equal(t, 7.0, got)

	var nilDense *matrix.Dense
	_, err = nilDense.ToGonum()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Contains(t, err.Error(), "ValidateNotNil")
}
