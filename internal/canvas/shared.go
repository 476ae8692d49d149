package canvas

import (
	"image/color"
	"sync"
)

// Shared guards a Canvas with a reader/writer lock so a single pointer
// handler can draw while other goroutines sample the buffer.
//
// Writes block for the lock. The Try readers never block: when a write is
// in progress they return ok == false and the caller should keep what it
// showed last frame.
type Shared struct {
	mu sync.RWMutex
	c  *Canvas
}

// NewShared wraps c. The caller must not touch c directly afterwards.
func NewShared(c *Canvas) *Shared {
	return &Shared{c: c}
}

// Update runs fn with exclusive access to the canvas.
func (s *Shared) Update(fn func(c *Canvas) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.c)
}

// DrawPoint is Canvas.DrawPoint under the write lock.
func (s *Shared) DrawPoint(p Point) error {
	return s.Update(func(c *Canvas) error { return c.DrawPoint(p) })
}

// DrawLine is Canvas.DrawLine under the write lock.
func (s *Shared) DrawLine(start, end Point) error {
	return s.Update(func(c *Canvas) error { return c.DrawLine(start, end) })
}

// Clear is Canvas.Clear under the write lock.
func (s *Shared) Clear() {
	s.mu.Lock()
	s.c.Clear()
	s.mu.Unlock()
}

// SetBrush replaces all brush parameters at once.
func (s *Shared) SetBrush(b Brush) error {
	return s.Update(func(c *Canvas) error {
		if err := c.SetBrushSize(b.Size); err != nil {
			return err
		}
		c.SetBrushSmoothness(b.Smoothness)
		c.SetBrushIntensity(b.Intensity)
		return nil
	})
}

// Pixels returns a snapshot of the buffer, waiting for any writer.
func (s *Shared) Pixels() []color.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Pixels()
}

// TryPixels returns a snapshot of the buffer unless a writer holds the lock.
func (s *Shared) TryPixels() ([]color.RGBA, bool) {
	if !s.mu.TryRLock() {
		return nil, false
	}
	defer s.mu.RUnlock()
	return s.c.Pixels(), true
}

// Intensities returns the ink raster, waiting for any writer.
func (s *Shared) Intensities() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Intensities()
}

// TryIntensities returns the ink raster unless a writer holds the lock.
func (s *Shared) TryIntensities() ([]byte, bool) {
	if !s.mu.TryRLock() {
		return nil, false
	}
	defer s.mu.RUnlock()
	return s.c.Intensities(), true
}
