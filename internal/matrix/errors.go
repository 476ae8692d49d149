package matrix

import "errors"

// Sentinel errors returned by matrix and vector operations.
// Callers match them with errors.Is; operations wrap them with context.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmpty is returned when a matrix is built from an empty set of vectors.
	ErrEmpty = errors.New("matrix: empty input")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
