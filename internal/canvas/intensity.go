package canvas

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Intensities converts the buffer to per-pixel ink coverage in [0, 255]:
// 0 where a pixel is as light as the blank colour, 255 where it is as dark
// as the paint colour, measured on CIE L* lightness. This is the byte
// raster the classifier consumes. If blank and paint share a lightness
// every pixel reads 0.
func (c *Canvas) Intensities() []byte {
	out := make([]byte, len(c.pixels))

	blankL := lightness(c.blank)
	span := blankL - lightness(c.paint)
	if span == 0 {
		return out
	}

	for i, px := range c.pixels {
		ink := (blankL - lightness(px)) / span
		switch {
		case ink <= 0:
			out[i] = 0
		case ink >= 1:
			out[i] = 255
		default:
			out[i] = uint8(ink*255 + 0.5)
		}
	}
	return out
}

// lightness returns CIE L* of col; fully transparent colours read as black.
func lightness(col color.RGBA) float64 {
	c, ok := colorful.MakeColor(col)
	if !ok {
		return 0
	}
	l, _, _ := c.Lab()
	return l
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string into an opaque colour.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("canvas: parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
