package matrix

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomMatrix returns an m×n matrix with deterministic values in [-1, 1).
func randomMatrix(rng *rand.Rand, m, n int) *Matrix {
	out := New(m, n)
	out.Apply(func(float32) float32 { return rng.Float32()*2 - 1 })
	return out
}

// toGonum converts a to a gonum dense matrix for reference computations.
func toGonum(a *Matrix) *mat.Dense {
	data := make([]float64, 0, a.Rows()*a.Cols())
	for _, v := range a.RawValues() {
		data = append(data, float64(v))
	}
	return mat.NewDense(a.Rows(), a.Cols(), data)
}

func TestNew(t *testing.T) {
	a := New(2, 3)
	m, n := a.Shape()
	assert.Equal(t, 2, m)
	assert.Equal(t, 3, n)
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, a.RawValues())

	assert.Panics(t, func() { New(-1, 2) })
}

func TestNewIdentity(t *testing.T) {
	id := NewIdentity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, float32(1), v)
			} else {
				assert.Equal(t, float32(0), v)
			}
		}
	}

	sq := NewSquare(4)
	assert.Equal(t, 4, sq.Rows())
	assert.Equal(t, 4, sq.Cols())
}

func TestFromFlat(t *testing.T) {
	a, err := FromFlat([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	v, err := a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(4), v)

	_, err = FromFlat([]float32{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFromRowsAndCols(t *testing.T) {
	rows := []Vector{Slice{1, 2, 3}, Slice{4, 5, 6}}
	byRows, err := FromRows(rows)
	require.NoError(t, err)

	cols := []Vector{Slice{1, 4}, Slice{2, 5}, Slice{3, 6}}
	byCols, err := FromCols(cols)
	require.NoError(t, err)

	assert.True(t, byRows.Equal(byCols), "rows:\n%s\ncols:\n%s", byRows, byCols)

	// Fixed-size arrays take part through a slice of the array.
	arr := [3]float32{7, 8, 9}
	withArray, err := FromRows([]Vector{Slice(arr[:]), byRows.RowView(0)})
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 8, 9, 1, 2, 3}, withArray.RawValues())
}

func TestFromRowsErrors(t *testing.T) {
	_, err := FromRows(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FromCols([]Vector{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FromRows([]Vector{Slice{1, 2}, Slice{1}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = FromCols([]Vector{Slice{1, 2}, Slice{1, 2, 3}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAtSetBounds(t *testing.T) {
	a := New(2, 2)
	require.NoError(t, a.Set(1, 1, 5))

	v, err := a.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(5), v)

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, a.Set(0, -1, 1), ErrOutOfRange)
}

func TestSetRow(t *testing.T) {
	a := New(2, 3)
	require.NoError(t, a.SetRow(1, Slice{1, 2, 3}))
	assert.Equal(t, []float32{0, 0, 0, 1, 2, 3}, a.RawValues())

	assert.ErrorIs(t, a.SetRow(0, Slice{1}), ErrDimensionMismatch)
	assert.ErrorIs(t, a.SetRow(2, Slice{1, 2, 3}), ErrOutOfRange)
}

func TestRowViewWritesThrough(t *testing.T) {
	a, err := FromFlat([]float32{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	row := a.RowView(1)
	row.Set(0, 30)
	row.Slice()[1] = 40

	assert.Equal(t, []float32{1, 2, 30, 40}, a.RawValues())

	// Copies do not alias.
	cp := a.Row(0)
	cp[0] = 100
	v, _ := a.At(0, 0)
	assert.Equal(t, float32(1), v)
}

func TestColAccessors(t *testing.T) {
	a, err := FromFlat([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, Slice{2, 4, 6}, a.Col(1))
	view := a.ColView(0)
	assert.Equal(t, 3, view.Len())
	assert.Equal(t, float32(5), view.At(2))

	assert.Panics(t, func() { a.ColView(2) })
	assert.Panics(t, func() { a.RowView(3) })
}

func TestTransposeTwiceIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, shape := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}, {10, 10}} {
		a := randomMatrix(rng, shape[0], shape[1])
		tt := a.Transpose()
		assert.Equal(t, shape[1], tt.Rows())
		assert.Equal(t, shape[0], tt.Cols())
		assert.True(t, tt.Transpose().Equal(a), "shape %v", shape)
	}
}

func TestMulShapeAndReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, dims := range [][3]int{{1, 1, 1}, {2, 3, 4}, {5, 1, 3}, {7, 6, 2}} {
		a := randomMatrix(rng, dims[0], dims[1])
		b := randomMatrix(rng, dims[1], dims[2])

		got, err := a.Mul(b)
		require.NoError(t, err)
		assert.Equal(t, dims[0], got.Rows())
		assert.Equal(t, dims[2], got.Cols())

		var want mat.Dense
		want.Mul(toGonum(a), toGonum(b))
		for i := 0; i < got.Rows(); i++ {
			for j := 0; j < got.Cols(); j++ {
				v, _ := got.At(i, j)
				assert.InDelta(t, want.At(i, j), float64(v), 1e-5)
			}
		}
	}
}

func TestMulTransposeProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	a := randomMatrix(rng, 4, 6)
	b := randomMatrix(rng, 6, 3)

	ab, err := a.Mul(b)
	require.NoError(t, err)
	btat, err := b.Transpose().Mul(a.Transpose())
	require.NoError(t, err)

	lhs := ab.Transpose().RawValues()
	rhs := btat.RawValues()
	require.Len(t, rhs, len(lhs))
	for i := range lhs {
		assert.InDelta(t, lhs[i], rhs[i], 1e-5)
	}
}

func TestMulDimensionMismatch(t *testing.T) {
	_, err := New(2, 3).Mul(New(2, 3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = New(2, 3).MulVec(Slice{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMulVecMatchesSingleColumnMul(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, dims := range [][2]int{{1, 1}, {3, 5}, {10, 784}, {6, 2}} {
		a := randomMatrix(rng, dims[0], dims[1])
		v := randomMatrix(rng, dims[1], 1)

		byVec, err := a.MulVec(v.ColView(0))
		require.NoError(t, err)
		byMat, err := a.Mul(v)
		require.NoError(t, err)

		assert.Equal(t, []float32(byMat.Col(0)), []float32(byVec), "dims %v", dims)
	}
}

func TestAddSubScale(t *testing.T) {
	a, _ := FromFlat([]float32{1, 2, 3, 4}, 2, 2)
	b, _ := FromFlat([]float32{4, 3, 2, 1}, 2, 2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 5, 5, 5}, sum.RawValues())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{-3, -1, 1, 3}, diff.RawValues())

	assert.Equal(t, []float32{2, 4, 6, 8}, a.Scale(2).RawValues())

	// Operands are untouched.
	assert.Equal(t, []float32{1, 2, 3, 4}, a.RawValues())

	_, err = a.Add(New(2, 3))
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = a.Sub(New(3, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestEqualIsExact(t *testing.T) {
	a, _ := FromFlat([]float32{1, 2}, 1, 2)
	b, _ := FromFlat([]float32{1, 2 + 1e-6}, 1, 2)

	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(New(2, 1)))
}

func TestMapAndApply(t *testing.T) {
	a, _ := FromFlat([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	sq := a.Map(func(x float32) float32 { return x * x })
	assert.Equal(t, 2, sq.Rows())
	assert.Equal(t, 3, sq.Cols())
	assert.Equal(t, []float32{1, 4, 9, 16, 25, 36}, sq.RawValues())

	a.Apply(func(x float32) float32 { return -x })
	assert.Equal(t, []float32{-1, -2, -3, -4, -5, -6}, a.RawValues())
}

func TestString(t *testing.T) {
	a, _ := FromFlat([]float32{1, 2.5, 3, 4}, 2, 2)
	assert.Equal(t, "[1, 2.5]\n[3, 4]\n", a.String())
}
