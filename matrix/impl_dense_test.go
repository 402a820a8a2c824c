// Package matrix_test contains unit tests for Matrix storage, 1-based
// access and rendering.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRowsColsDims verifies shape accessors.
func TestRowsColsDims(t *testing.T) {
	m, err := matrix.ZerosOf[int](3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	r, c := m.Dims()
	assert.Equal(t, [2]int{3, 4}, [2]int{r, c})
	assert.False(t, m.IsSquare())

	sq, err := matrix.ZerosOf[int](2, 2)
	require.NoError(t, err)
	assert.True(t, sq.IsSquare())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on 0 or past-bound indices.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.ZerosOf[float64](2, 3)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 1}, {1, 0}, {3, 1}, {1, 4}, {0, 0}, {-1, 2}} {
		_, err = m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At%v", rc)

		err = m.Set(rc[0], rc[1], 1)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "Set%v", rc)
	}

	_, err = m.At(3, 1)
	assert.EqualError(t, err, "Matrix.At(3,1): linalg: index out of bounds")

	// The shared sentinel matches across packages.
	require.ErrorIs(t, err, vector.ErrIndexOutOfBounds)
}

// TestSetGet validates Set() followed by At() at the corners.
func TestSetGet(t *testing.T) {
	m, err := matrix.ZerosOf[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 1.5))
	require.NoError(t, m.Set(2, 3, 7.89))

	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	v, err = m.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7.89, v)

	assert.Equal(t, []float64{1.5, 0, 0, 0, 0, 7.89}, m.Values())
}

// TestNilMatrix ensures nil receivers fail with ErrNilMatrix.
func TestNilMatrix(t *testing.T) {
	var m *matrix.Matrix[int]
	_, err := m.At(1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(1, 1, 0), matrix.ErrNilMatrix)
	assert.False(t, m.IsSquare())
	assert.Equal(t, 0, m.Rows())
	assert.Nil(t, m.Clone())
	assert.Equal(t, "<nil>", m.String())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustFromSlice(t, 2, 2, 1.0, 0.0, 0.0, 2.0)
	clone := m.Clone()
	require.NoError(t, clone.Set(1, 1, 3.0))

	orig, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig)

	cv, err := clone.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cv)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	assert.Equal(t, "1 2\n3 4", m.String())
	assert.Equal(t, "1 2 3 4", m.Format(matrix.WithRowSeparator("")))

	f := mustFromSlice(t, 1, 2, 0.5, 2.0)
	assert.Equal(t, "0.500, 2.000", f.Format(matrix.WithSeparator(", "), matrix.WithPrecision(3)))
}

// TestEqual covers shape and value differences.
func TestEqual(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	b := mustFromSlice(t, 1, 4, 1, 2, 3, 4)
	c := mustFromSlice(t, 2, 2, 1, 2, 3, 5)

	assert.True(t, matrix.Equal(a, a.Clone()))
	assert.False(t, matrix.Equal(a, b))
	assert.False(t, matrix.Equal(a, c))
	assert.False(t, matrix.Equal(a, nil))
	assert.True(t, matrix.Equal[int](nil, nil))
}
