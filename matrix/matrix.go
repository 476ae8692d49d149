// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"iter"

	"github.com/born-ml/sketchnet/internal/matrix"
)

// Matrix is a dense row-major float32 matrix.
type Matrix = matrix.Matrix

// Vector is a read-only float32 sequence.
type Vector = matrix.Vector

// Slice is a float32 slice satisfying Vector.
type Slice = matrix.Slice

// RowView is a non-copying mutable view of one matrix row.
type RowView = matrix.RowView

// ColView is a non-copying read-only view of one matrix column.
type ColView = matrix.ColView

// Errors.
var (
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrEmpty             = matrix.ErrEmpty
	ErrOutOfRange        = matrix.ErrOutOfRange
)

// New creates an m×n zero matrix.
func New(m, n int) *Matrix { return matrix.New(m, n) }

// NewSquare creates an n×n zero matrix.
func NewSquare(n int) *Matrix { return matrix.NewSquare(n) }

// NewIdentity creates the n×n identity matrix.
func NewIdentity(n int) *Matrix { return matrix.NewIdentity(n) }

// FromFlat wraps row-major values as an m×n matrix.
func FromFlat(values []float32, m, n int) (*Matrix, error) { return matrix.FromFlat(values, m, n) }

// FromRows builds a matrix whose rows are the given vectors.
func FromRows(rows []Vector) (*Matrix, error) { return matrix.FromRows(rows) }

// FromCols builds a matrix whose columns are the given vectors.
func FromCols(cols []Vector) (*Matrix, error) { return matrix.FromCols(cols) }

// Dot returns the inner product of two equal-length vectors.
func Dot(u, v Vector) (float32, error) { return matrix.Dot(u, v) }

// Scale returns v multiplied by s.
func Scale(v Vector, s float32) Slice { return matrix.Scale(v, s) }

// Values iterates over the elements of v.
func Values(v Vector) iter.Seq[float32] { return matrix.Values(v) }

// Collect copies v into a new slice.
func Collect(v Vector) []float32 { return matrix.Collect(v) }
