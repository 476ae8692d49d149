// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package canvas

import (
	"image/color"

	"github.com/born-ml/sketchnet/internal/canvas"
)

// Canvas is an RGBA raster with a configurable round brush.
type Canvas = canvas.Canvas

// Config holds raster size, colours and initial brush.
type Config = canvas.Config

// Point is a position in pixel coordinates.
type Point = canvas.Point

// Brush holds size, smoothness and intensity.
type Brush = canvas.Brush

// Shared is a Canvas behind a reader/writer lock.
type Shared = canvas.Shared

// Stroke turns pointer positions into connected brush strokes.
type Stroke = canvas.Stroke

// Drawer is anything a Stroke can draw on.
type Drawer = canvas.Drawer

// Errors.
var (
	ErrOutOfBounds      = canvas.ErrOutOfBounds
	ErrInvalidBrushSize = canvas.ErrInvalidBrushSize
	ErrInvalidSize      = canvas.ErrInvalidSize
)

// DefaultConfig returns a 28×28 white raster with a black brush.
func DefaultConfig() Config { return canvas.DefaultConfig() }

// New creates a blank canvas.
func New(cfg Config) (*Canvas, error) { return canvas.New(cfg) }

// NewShared wraps c for concurrent use.
func NewShared(c *Canvas) *Shared { return canvas.NewShared(c) }

// NewStroke starts stroke tracking on d.
func NewStroke(d Drawer) *Stroke { return canvas.NewStroke(d) }

// ParseColor parses a hex colour such as "#1e90ff".
func ParseColor(hex string) (color.RGBA, error) { return canvas.ParseColor(hex) }
