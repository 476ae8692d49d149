package canvas

import "errors"

var (
	// ErrOutOfBounds is returned by draw operations given a coordinate
	// outside [0,width]×[0,height]. The pixel buffer is left untouched;
	// the caller decides whether to drop or clamp the stroke.
	ErrOutOfBounds = errors.New("canvas: point out of bounds")

	// ErrInvalidBrushSize is returned for a brush radius that is not a
	// positive finite number.
	ErrInvalidBrushSize = errors.New("canvas: brush size must be positive and finite")

	// ErrInvalidSize is returned for a raster with a non-positive dimension.
	ErrInvalidSize = errors.New("canvas: width and height must be > 0")
)
