package canvas

import (
	"image/color"

	"github.com/chewxy/math32"
)

// DrawPoint stamps the brush once, centred on p.
//
// For every covered pixel at squared distance d2 from p the coverage is
//
//	(0.1 + Intensity) * 1/(Smoothness * d2/Size²) * (1 - d2/Size²)
//
// scaled by 255 and converted to an 8-bit alpha with toAlpha, then the
// paint colour is composited over the pixel. Pixels off the raster are
// skipped. A pixel centre that coincides exactly with p (d2 == 0) makes the
// falloff +Inf and is painted at full alpha, as is every pixel when
// Smoothness is zero.
func (c *Canvas) DrawPoint(p Point) error {
	if err := c.checkBounds(p); err != nil {
		return err
	}
	return c.stamp(p)
}

// stamp paints the brush at p without the bounds check, so line steps
// that overshoot the border by less than one step still clip cleanly.
func (c *Canvas) stamp(p Point) error {
	pixels, err := disc(p, c.brush.Size)
	if err != nil {
		return err
	}

	r2inv := 1 / (c.brush.Size * c.brush.Size)
	for px := range pixels {
		if px.X < 0 || px.X >= c.width || px.Y < 0 || px.Y >= c.height {
			continue
		}
		idx := px.Y*c.width + px.X
		c.pixels[idx] = over(c.pixels[idx], c.paint, toAlpha(c.brush.falloff(px.D2, r2inv)*255))
	}
	return nil
}

// falloff evaluates the brush kernel for squared distance d2.
func (b Brush) falloff(d2, r2inv float32) float32 {
	return (0.1 + b.Intensity) *
		(1 / (b.Smoothness * d2 * r2inv)) *
		(1 - d2*r2inv)
}

// toAlpha converts a float to an 8-bit alpha the way a saturating numeric
// cast does: the fraction is truncated, values at or above 255 (including
// +Inf) give 255, and negative values and NaN give 0. Go leaves
// out-of-range float-to-integer conversion implementation-defined, so the
// rule is spelled out here.
func toAlpha(f float32) uint8 {
	switch {
	case math32.IsNaN(f) || f <= 0:
		return 0
	case f >= 255:
		return 255
	default:
		return uint8(f)
	}
}

// over composites paint at coverage alpha a over dst with the premultiplied
// Porter-Duff over operator: out = src + dst*(1-a), where src is paint
// premultiplied by a. Channel sums saturate at 255.
func over(dst, paint color.RGBA, a uint8) color.RGBA {
	inv := 255 - a
	return color.RGBA{
		R: addSat(mul255(paint.R, a), mul255(dst.R, inv)),
		G: addSat(mul255(paint.G, a), mul255(dst.G, inv)),
		B: addSat(mul255(paint.B, a), mul255(dst.B, inv)),
		A: addSat(a, mul255(dst.A, inv)),
	}
}

// mul255 returns round(x*y/255).
func mul255(x, y uint8) uint8 {
	return uint8((uint32(x)*uint32(y) + 127) / 255)
}

func addSat(x, y uint8) uint8 {
	if s := uint16(x) + uint16(y); s < 255 {
		return uint8(s)
	}
	return 255
}
