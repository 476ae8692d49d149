package nn

import (
	"errors"

	"github.com/born-ml/sketchnet/internal/matrix"
)

var (
	// ErrInvalidStructure is returned for a layer-size sequence with fewer
	// than two entries or a non-positive size.
	ErrInvalidStructure = errors.New("nn: invalid network structure")

	// ErrInvalidLabel is returned when a sample label is not a valid index
	// into the output layer.
	ErrInvalidLabel = errors.New("nn: label out of range")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported so
	// callers of this package can match input-length errors directly.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)
