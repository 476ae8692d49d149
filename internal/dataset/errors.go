package dataset

import "errors"

var (
	// ErrEmpty is returned when a set has no samples.
	ErrEmpty = errors.New("dataset: empty")

	// ErrCountMismatch is returned when image and label counts differ.
	ErrCountMismatch = errors.New("dataset: image and label counts differ")

	// ErrImageSize is returned when images in one set differ in length.
	ErrImageSize = errors.New("dataset: inconsistent image size")

	// ErrLabelRange is returned for a label outside [0, classes).
	ErrLabelRange = errors.New("dataset: label out of range")

	// ErrFormat is returned for files that are not IDX tensors of the
	// expected kind.
	ErrFormat = errors.New("dataset: bad IDX file")
)
