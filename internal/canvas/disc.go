package canvas

import (
	"fmt"
	"iter"

	"github.com/chewxy/math32"
)

// discPixel is one pixel covered by a brush disc and the squared distance
// from its centre to the disc centre.
type discPixel struct {
	X, Y int
	D2   float32
}

// disc enumerates every integer pixel whose centre lies strictly within
// radius of center, each exactly once. The radius must be positive and
// finite.
//
// Columns are visited outward from the centre column (right first, then
// left) and each column is scanned outward from the centre row (down
// first, then up). floor(center) is the nearest pixel centre on both axes,
// so a column with nothing at the centre row is empty, and once a column
// is empty so is every column beyond it; both scans stop there.
func disc(center Point, radius float32) (iter.Seq[discPixel], error) {
	if !validSize(radius) {
		return nil, fmt.Errorf("radius %v: %w", radius, ErrInvalidBrushSize)
	}

	r2 := radius * radius
	cx := int(math32.Floor(center.X))
	cy := int(math32.Floor(center.Y))

	d2 := func(px, py int) float32 {
		dx := center.X - 0.5 - float32(px)
		dy := center.Y - 0.5 - float32(py)
		return dx*dx + dy*dy
	}

	// column yields the covered pixels of column px. It reports whether the
	// column was non-empty and whether the consumer wants more.
	column := func(px int, yield func(discPixel) bool) (nonEmpty, more bool) {
		for py := cy; ; py++ {
			d := d2(px, py)
			if d >= r2 {
				break
			}
			nonEmpty = true
			if !yield(discPixel{X: px, Y: py, D2: d}) {
				return true, false
			}
		}
		if !nonEmpty {
			return false, true
		}
		for py := cy - 1; ; py-- {
			d := d2(px, py)
			if d >= r2 {
				break
			}
			if !yield(discPixel{X: px, Y: py, D2: d}) {
				return true, false
			}
		}
		return true, true
	}

	return func(yield func(discPixel) bool) {
		for px := cx; ; px++ {
			nonEmpty, more := column(px, yield)
			if !more {
				return
			}
			if !nonEmpty {
				break
			}
		}
		for px := cx - 1; ; px-- {
			nonEmpty, more := column(px, yield)
			if !nonEmpty || !more {
				return
			}
		}
	}, nil
}
