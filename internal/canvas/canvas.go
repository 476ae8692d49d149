// Package canvas rasterizes brush strokes onto a small fixed-size pixel
// buffer.
//
// Coordinates are continuous: pixel (px, py) covers [px,px+1)×[py,py+1) and
// its centre sits at (px+0.5, py+0.5). A brush is a radially symmetric
// falloff kernel; every pixel whose centre lies strictly inside the brush
// radius receives the paint colour at a coverage alpha computed from its
// squared distance to the brush centre.
package canvas

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Point is a position in continuous canvas space.
type Point struct {
	X, Y float32
}

// Brush holds the falloff parameters.
type Brush struct {
	// Size is the brush radius in pixels. Must be > 0.
	Size float32
	// Smoothness divides the falloff; typical range [0, 100]. Zero gives a
	// hard brush that paints every covered pixel at full alpha.
	Smoothness float32
	// Intensity scales the falloff; typical range [0.5, 5].
	Intensity float32
}

// Config describes a canvas.
type Config struct {
	Width, Height int
	Blank, Paint  color.RGBA
	Brush         Brush
}

// DefaultConfig returns a 28×28 white canvas painted in black.
func DefaultConfig() Config {
	return Config{
		Width:  28,
		Height: 28,
		Blank:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Paint:  color.RGBA{A: 255},
		Brush: Brush{
			Size:       1.5,
			Smoothness: 50,
			Intensity:  5,
		},
	}
}

// Canvas owns a width×height buffer of premultiplied RGBA pixels stored
// row-major. It is not safe for concurrent use; see Shared.
type Canvas struct {
	pixels        []color.RGBA
	width, height int
	brush         Brush
	blank, paint  color.RGBA
}

// New creates a canvas filled with the blank colour.
func New(cfg Config) (*Canvas, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrInvalidSize)
	}
	if !validSize(cfg.Brush.Size) {
		return nil, fmt.Errorf("brush size %v: %w", cfg.Brush.Size, ErrInvalidBrushSize)
	}

	c := &Canvas{
		pixels: make([]color.RGBA, cfg.Width*cfg.Height),
		width:  cfg.Width,
		height: cfg.Height,
		brush:  cfg.Brush,
		blank:  cfg.Blank,
		paint:  cfg.Paint,
	}
	c.Clear()
	return c, nil
}

// Size returns the raster width and height.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear resets every pixel to the blank colour.
func (c *Canvas) Clear() {
	c.Fill(c.blank)
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Pixels returns a copy of the buffer in row-major order.
func (c *Canvas) Pixels() []color.RGBA {
	out := make([]color.RGBA, len(c.pixels))
	copy(out, c.pixels)
	return out
}

// At returns the pixel at (x, y). It panics if the pixel is off the raster.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.pixels[y*c.width+x]
}

// Brush returns the current brush parameters.
func (c *Canvas) Brush() Brush {
	return c.brush
}

// SetBrushSize sets the brush radius used by the next draw.
func (c *Canvas) SetBrushSize(size float32) error {
	if !validSize(size) {
		return fmt.Errorf("brush size %v: %w", size, ErrInvalidBrushSize)
	}
	c.brush.Size = size
	return nil
}

// SetBrushSmoothness sets the falloff smoothness used by the next draw.
func (c *Canvas) SetBrushSmoothness(smoothness float32) {
	c.brush.Smoothness = smoothness
}

// SetBrushIntensity sets the falloff intensity used by the next draw.
func (c *Canvas) SetBrushIntensity(intensity float32) {
	c.brush.Intensity = intensity
}

// validSize reports whether size is a usable brush radius: positive and
// finite. NaN fails the comparison.
func validSize(size float32) bool {
	return size > 0 && !math32.IsInf(size, 1)
}

// contains reports whether p lies in [0,width]×[0,height]. The far edges
// are inclusive so a stroke may end exactly on the border.
func (c *Canvas) contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= float32(c.width) && p.Y <= float32(c.height)
}

func (c *Canvas) checkBounds(p Point) error {
	if !c.contains(p) {
		return fmt.Errorf("(%v, %v) outside %dx%d: %w", p.X, p.Y, c.width, c.height, ErrOutOfBounds)
	}
	return nil
}
