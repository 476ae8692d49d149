// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package canvas provides a soft-brush raster for hand-drawn digits.
//
// # Basic Usage
//
//	c, err := canvas.New(canvas.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	stroke := canvas.NewStroke(c)
//	for _, p := range pointerPositions {
//	    if err := stroke.MoveTo(p); err != nil {
//	        stroke.Release()
//	    }
//	}
//	input := c.Intensities() // ready for nn.Normalize
//
// Coordinates are in pixel units with (0, 0) at the top-left corner of the
// raster. Points outside [0, width]×[0, height] are rejected with
// ErrOutOfBounds.
//
// Wrap a Canvas in Shared to draw from one goroutine while others sample
// it without blocking.
package canvas
