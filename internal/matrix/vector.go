package matrix

import (
	"fmt"
	"iter"
)

// Vector is a read-only view of numeric values.
//
// Matrix operations accept any Vector, so slices, fixed arrays (via arr[:]),
// and zero-copy matrix rows or columns can be mixed freely without copying
// into a common storage type first.
type Vector interface {
	// Len returns the number of elements.
	Len() int
	// At returns element i. It panics if i is out of range.
	At(i int) float32
}

// Slice adapts a []float32 to the Vector interface.
type Slice []float32

// Len returns the number of elements.
func (s Slice) Len() int { return len(s) }

// At returns element i.
func (s Slice) At(i int) float32 { return s[i] }

// Values returns an iterator over the elements of v in order.
func Values(v Vector) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// Collect copies the elements of v into a new slice.
func Collect(v Vector) []float32 {
	if s, ok := v.(Slice); ok {
		out := make([]float32, len(s))
		copy(out, s)
		return out
	}

	out := make([]float32, 0, v.Len())
	for x := range Values(v) {
		out = append(out, x)
	}
	return out
}

// Scale returns a new vector holding every element of v multiplied by s.
func Scale(v Vector, s float32) Slice {
	out := make(Slice, v.Len())
	for i := range out {
		out[i] = v.At(i) * s
	}
	return out
}

// Dot returns the dot product of u and v.
//
// Products are accumulated in index order in float32, so results are
// bit-identical across every operation built on Dot.
func Dot(u, v Vector) (float32, error) {
	if u.Len() != v.Len() {
		return 0, fmt.Errorf("dot of length %d and %d: %w", u.Len(), v.Len(), ErrDimensionMismatch)
	}

	var sum float32
	for i := 0; i < u.Len(); i++ {
		sum += u.At(i) * v.At(i)
	}
	return sum, nil
}

// RowView is a writable, zero-copy view of one matrix row.
// Writes through Set are visible in the matrix immediately.
type RowView struct {
	data []float32
}

// Len returns the row length (the matrix column count).
func (r RowView) Len() int { return len(r.data) }

// At returns element j of the row.
func (r RowView) At(j int) float32 { return r.data[j] }

// Set writes element j of the row into the underlying matrix.
func (r RowView) Set(j int, v float32) { r.data[j] = v }

// Slice exposes the row storage. Mutating it mutates the matrix.
func (r RowView) Slice() []float32 { return r.data }

// ColView is a read-only, zero-copy view of one matrix column.
type ColView struct {
	m   *Matrix
	col int
}

// Len returns the column length (the matrix row count).
func (c ColView) Len() int { return c.m.m }

// At returns element i of the column.
func (c ColView) At(i int) float32 { return c.m.values[i*c.m.n+c.col] }
