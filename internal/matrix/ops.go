package matrix

import "fmt"

// Transpose returns the n×m matrix with out(j, i) = a(i, j).
func (a *Matrix) Transpose() *Matrix {
	out := New(a.n, a.m)
	for i := 0; i < a.m; i++ {
		for j := 0; j < a.n; j++ {
			out.values[j*a.m+i] = a.values[i*a.n+j]
		}
	}
	return out
}

// Mul returns the matrix product a·b of shape (a.Rows(), b.Cols()).
//
// Element (i, j) is Dot(a.Row(i), b.Col(j)), so Mul and MulVec agree
// exactly on single-column right-hand sides.
func (a *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if a.n != b.m {
		return nil, fmt.Errorf("mul %dx%d by %dx%d: %w", a.m, a.n, b.m, b.n, ErrDimensionMismatch)
	}

	out := New(a.m, b.n)
	for i := 0; i < a.m; i++ {
		row := a.RowView(i)
		for j := 0; j < b.n; j++ {
			// Lengths already checked above.
			v, _ := Dot(row, b.ColView(j))
			out.values[i*b.n+j] = v
		}
	}
	return out, nil
}

// MulVec treats v as a column vector of length a.Cols() and returns a·v,
// whose element i is the dot product of row i with v.
func (a *Matrix) MulVec(v Vector) (Slice, error) {
	if v.Len() != a.n {
		return nil, fmt.Errorf("mul %dx%d by vector of length %d: %w", a.m, a.n, v.Len(), ErrDimensionMismatch)
	}

	out := make(Slice, a.m)
	for i := range out {
		out[i], _ = Dot(a.RowView(i), v)
	}
	return out, nil
}

// Add returns the elementwise sum a+b.
func (a *Matrix) Add(b *Matrix) (*Matrix, error) {
	return a.zip(b, "add", func(x, y float32) float32 { return x + y })
}

// Sub returns the elementwise difference a-b.
func (a *Matrix) Sub(b *Matrix) (*Matrix, error) {
	return a.zip(b, "sub", func(x, y float32) float32 { return x - y })
}

func (a *Matrix) zip(b *Matrix, op string, fn func(x, y float32) float32) (*Matrix, error) {
	if a.m != b.m || a.n != b.n {
		return nil, fmt.Errorf("%s %dx%d and %dx%d: %w", op, a.m, a.n, b.m, b.n, ErrDimensionMismatch)
	}
	out := New(a.m, a.n)
	for i := range out.values {
		out.values[i] = fn(a.values[i], b.values[i])
	}
	return out, nil
}

// Scale returns a new matrix with every element multiplied by s.
func (a *Matrix) Scale(s float32) *Matrix {
	return a.Map(func(x float32) float32 { return x * s })
}
