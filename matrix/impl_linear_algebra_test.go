// Package matrix_test contains unit tests for matrix algebra kernels.
// Reference values are hand computed; random products are cross-checked
// against gonum's mat.Dense.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/number"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestAddSub verifies element-wise Add and Sub and the mismatch error.
func TestAddSub(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	b := mustFromSlice(t, 2, 2, 5, 6, 7, 8)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 8, 10, 12}, sum.Values())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 4, 4}, diff.Values())

	// operands untouched
	assert.Equal(t, []int{1, 2, 3, 4}, a.Values())

	wide := mustFromSlice(t, 1, 4, 1, 2, 3, 4)
	_, err = matrix.Add(a, wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddWithHeterogeneous adds an int matrix to a float matrix under an explicit rule.
func TestAddWithHeterogeneous(t *testing.T) {
	a := mustFromSlice(t, 1, 3, 1, 2, 3)
	b := mustFromSlice(t, 1, 3, 0.5, 0.25, 0.125)

	out, err := matrix.AddWith(a, b, func(x int, y float64) float64 { return float64(x) + y })
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.25, 3.125}, out.Values())

	sub, err := matrix.SubWith(b, a, func(x float64, y int) float64 { return x - float64(y) })
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, -1.75, -2.875}, sub.Values())
}

// TestMulHandComputed checks small products against hand-computed values.
func TestMulHandComputed(t *testing.T) {
	a := mustFromSlice(t, 2, 2, 1, 2, 3, 4)
	b := mustFromSlice(t, 2, 2, 5, 6, 7, 8)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{19, 22, 43, 50}, p.Values())

	// (2×3)·(3×2) = 2×2
	c := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	d := mustFromSlice(t, 3, 2, 7, 8, 9, 10, 11, 12)
	q, err := matrix.Mul(c, d)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Rows())
	assert.Equal(t, 2, q.Cols())
	assert.Equal(t, []int{58, 64, 139, 154}, q.Values())

	// Identity is neutral on both sides.
	id, err := matrix.IdentityOf[int](2)
	require.NoError(t, err)
	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, left))
	assert.True(t, matrix.Equal(a, right))
}

// TestMulMismatch ensures a.Cols != b.Rows is rejected.
func TestMulMismatch(t *testing.T) {
	a := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustFromSlice(t, 2, 2, 1, 2, 3, 4)

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul[int](nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulAgainstGonum cross-checks random float products with mat.Dense.
func TestMulAgainstGonum(t *testing.T) {
	shapes := [][3]int{{1, 1, 1}, {3, 4, 2}, {5, 5, 5}, {7, 3, 6}}
	for i, s := range shapes {
		a := randMatrix(t, s[0], s[1], int64(10+i))
		b := randMatrix(t, s[1], s[2], int64(20+i))

		got, err := matrix.Mul(a, b)
		require.NoError(t, err)

		var want mat.Dense
		want.Mul(mat.NewDense(s[0], s[1], a.Values()), mat.NewDense(s[1], s[2], b.Values()))
		assert.InDeltaSlice(t, want.RawMatrix().Data, got.Values(), 1e-12, "shape %v", s)
	}
}

// TestMulWithWitness multiplies a user field through MulWith.
func TestMulWithWitness(t *testing.T) {
	f, err := number.FieldOf[float32]()
	require.NoError(t, err)

	a := mustFromSlice[float32](t, 1, 2, 1, 2)
	b := mustFromSlice[float32](t, 2, 1, 3, 4)
	p, err := matrix.MulWith(a, b, f.Mul, f)
	require.NoError(t, err)
	assert.Equal(t, []float32{11}, p.Values())
}

// TestScaleLeftOperand ensures the scalar is the left operand of mul.
func TestScaleLeftOperand(t *testing.T) {
	m := mustFromSlice(t, 1, 2, "a", "b")
	out, err := matrix.ScaleWith("x", m, func(s, e string) string { return s + e })
	require.NoError(t, err)
	assert.Equal(t, []string{"xa", "xb"}, out.Values())

	n := mustFromSlice(t, 2, 2, 1.0, -2.0, 0.5, 4.0)
	s, err := matrix.Scale(2.0, n)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -4, 1, 8}, s.Values())

	_, err = matrix.Scale[float64](2, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPromoted covers accepted and rejected result kinds.
func TestPromoted(t *testing.T) {
	a := mustFromSlice[uint8](t, 1, 2, 200, 100)
	b := mustFromSlice[int8](t, 1, 2, -1, 50)

	sum, err := matrix.AddPromoted[int16](a, b)
	require.NoError(t, err)
	assert.Equal(t, []int16{199, 150}, sum.Values())

	_, err = matrix.AddPromoted[int8](a, b)
	require.ErrorIs(t, err, number.ErrPromotion)

	diff, err := matrix.SubPromoted[int16](a, b)
	require.NoError(t, err)
	assert.Equal(t, []int16{201, 50}, diff.Values())

	f := mustFromSlice[float32](t, 1, 1, 1.5)
	i := mustFromSlice[int32](t, 1, 1, 2)
	p, err := matrix.MulPromoted[float64](f, i)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, p.Values())

	_, err = matrix.MulPromoted[float32](f, i)
	require.ErrorIs(t, err, number.ErrPromotion)

	sc, err := matrix.ScalePromoted[float64](int64(3), f)
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5}, sc.Values())
}

// TestTranspose checks shape and cell mapping, and that T(T(m)) == m.
func TestTranspose(t *testing.T) {
	m := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Values())

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(m, back))

	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulVec checks m·x and its length validation.
func TestMulVec(t *testing.T) {
	m := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)
	x, err := vector.Of(1, 0, -1)
	require.NoError(t, err)

	y, err := matrix.MulVec(m, x)
	require.NoError(t, err)
	assert.Equal(t, []int{-2, -2}, y.Values())

	short, err := vector.Of(1, 2)
	require.NoError(t, err)
	_, err = matrix.MulVec(m, short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulVec(m, nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = matrix.MulVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRowCol extracts rows and columns as vectors.
func TestRowCol(t *testing.T) {
	m := mustFromSlice(t, 2, 3, 1, 2, 3, 4, 5, 6)

	r, err := matrix.Row(m, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, r.Values())

	c, err := matrix.Col(m, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, c.Values())

	_, err = matrix.Row(m, 3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = matrix.Col(m, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	// Row returns a copy.
	require.NoError(t, r.Set(1, 40))
	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}
