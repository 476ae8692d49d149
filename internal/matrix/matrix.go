// Package matrix implements a dense, row-major float32 matrix and the
// Vector capability the network code is written against.
//
// Arithmetic never mutates its operands: Mul, MulVec, Add, Sub, Scale,
// Transpose and Map all return new values. The only mutators are Set,
// SetRow, Apply and writes through a RowView.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is an m×n matrix stored row-major: element (i, j) lives at
// values[i*n+j] and len(values) == m*n always holds.
type Matrix struct {
	values []float32
	m, n   int
}

// New returns an m×n matrix of zeros.
// It panics if m or n is negative.
func New(m, n int) *Matrix {
	if m < 0 || n < 0 {
		panic(fmt.Sprintf("matrix: negative dimensions %dx%d", m, n))
	}
	return &Matrix{values: make([]float32, m*n), m: m, n: n}
}

// NewSquare returns an n×n matrix of zeros.
func NewSquare(n int) *Matrix {
	return New(n, n)
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) *Matrix {
	out := New(n, n)
	for i := 0; i < n; i++ {
		out.values[i*n+i] = 1
	}
	return out
}

// FromFlat builds an m×n matrix from row-major values.
// The values are copied.
func FromFlat(values []float32, m, n int) (*Matrix, error) {
	if m < 0 || n < 0 || len(values) != m*n {
		return nil, fmt.Errorf("from flat: %d values for %dx%d: %w", len(values), m, n, ErrDimensionMismatch)
	}
	out := New(m, n)
	copy(out.values, values)
	return out, nil
}

// FromRows builds a matrix whose i-th row is rows[i].
func FromRows(rows []Vector) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("from rows: %w", ErrEmpty)
	}

	n := rows[0].Len()
	out := New(len(rows), n)
	for i, row := range rows {
		if row.Len() != n {
			return nil, fmt.Errorf("from rows: row %d has length %d, want %d: %w", i, row.Len(), n, ErrDimensionMismatch)
		}
		for j := 0; j < n; j++ {
			out.values[i*n+j] = row.At(j)
		}
	}
	return out, nil
}

// FromCols builds a matrix whose j-th column is cols[j].
func FromCols(cols []Vector) (*Matrix, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("from cols: %w", ErrEmpty)
	}

	m := cols[0].Len()
	n := len(cols)
	out := New(m, n)
	for j, col := range cols {
		if col.Len() != m {
			return nil, fmt.Errorf("from cols: column %d has length %d, want %d: %w", j, col.Len(), m, ErrDimensionMismatch)
		}
		for i := 0; i < m; i++ {
			out.values[i*n+j] = col.At(i)
		}
	}
	return out, nil
}

// Rows returns the row count m.
func (a *Matrix) Rows() int { return a.m }

// Cols returns the column count n.
func (a *Matrix) Cols() int { return a.n }

// Shape returns (m, n).
func (a *Matrix) Shape() (int, int) { return a.m, a.n }

func (a *Matrix) checkIndex(i, j int) error {
	if i < 0 || i >= a.m || j < 0 || j >= a.n {
		return fmt.Errorf("index (%d,%d) in %dx%d: %w", i, j, a.m, a.n, ErrOutOfRange)
	}
	return nil
}

// At returns element (i, j).
func (a *Matrix) At(i, j int) (float32, error) {
	if err := a.checkIndex(i, j); err != nil {
		return 0, err
	}
	return a.values[i*a.n+j], nil
}

// Set writes v at (i, j).
func (a *Matrix) Set(i, j int, v float32) error {
	if err := a.checkIndex(i, j); err != nil {
		return err
	}
	a.values[i*a.n+j] = v
	return nil
}

// SetRow overwrites row i with the elements of v.
func (a *Matrix) SetRow(i int, v Vector) error {
	if i < 0 || i >= a.m {
		return fmt.Errorf("set row %d in %dx%d: %w", i, a.m, a.n, ErrOutOfRange)
	}
	if v.Len() != a.n {
		return fmt.Errorf("set row: length %d, want %d: %w", v.Len(), a.n, ErrDimensionMismatch)
	}
	row := a.values[i*a.n : (i+1)*a.n]
	for j := range row {
		row[j] = v.At(j)
	}
	return nil
}

// Row returns a copy of row i. It panics if i is out of range.
func (a *Matrix) Row(i int) Slice {
	out := make(Slice, a.n)
	copy(out, a.values[i*a.n:(i+1)*a.n])
	return out
}

// RowView returns a zero-copy, writable view of row i.
// It panics if i is out of range.
func (a *Matrix) RowView(i int) RowView {
	if i < 0 || i >= a.m {
		panic(fmt.Sprintf("matrix: row %d out of range [0,%d)", i, a.m))
	}
	return RowView{data: a.values[i*a.n : (i+1)*a.n : (i+1)*a.n]}
}

// Col returns a copy of column j. It panics if j is out of range.
func (a *Matrix) Col(j int) Slice {
	return Collect(a.ColView(j))
}

// ColView returns a zero-copy view of column j.
// It panics if j is out of range.
func (a *Matrix) ColView(j int) ColView {
	if j < 0 || j >= a.n {
		panic(fmt.Sprintf("matrix: column %d out of range [0,%d)", j, a.n))
	}
	return ColView{m: a, col: j}
}

// RawValues returns a copy of the row-major backing values.
func (a *Matrix) RawValues() []float32 {
	out := make([]float32, len(a.values))
	copy(out, a.values)
	return out
}

// Clone returns a deep copy.
func (a *Matrix) Clone() *Matrix {
	return &Matrix{values: a.RawValues(), m: a.m, n: a.n}
}

// Apply replaces every element x with fn(x), in place.
func (a *Matrix) Apply(fn func(float32) float32) {
	for i, x := range a.values {
		a.values[i] = fn(x)
	}
}

// Map returns a new matrix of the same shape holding fn(x) for every element.
func (a *Matrix) Map(fn func(float32) float32) *Matrix {
	out := a.Clone()
	out.Apply(fn)
	return out
}

// Equal reports whether a and b have the same shape and bit-for-bit equal
// elements. No tolerance is applied.
func (a *Matrix) Equal(b *Matrix) bool {
	if a.m != b.m || a.n != b.n {
		return false
	}
	for i, x := range a.values {
		if x != b.values[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (a *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < a.m; i++ {
		sb.WriteByte('[')
		for j := 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", a.values[i*a.n+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
