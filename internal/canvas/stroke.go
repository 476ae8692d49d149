package canvas

// Drawer accepts the two pointer-drawn primitives.
// Both *Canvas and *Shared implement it.
type Drawer interface {
	DrawPoint(p Point) error
	DrawLine(start, end Point) error
}

// Stroke turns a stream of pointer positions into draw calls: the first
// position of a stroke stamps a point, every later one draws a segment from
// the previous position.
type Stroke struct {
	d    Drawer
	prev Point
	down bool
}

// NewStroke returns a stroke that draws onto d.
func NewStroke(d Drawer) *Stroke {
	return &Stroke{d: d}
}

// MoveTo extends the stroke to p. On error the stroke is broken, so the
// next MoveTo starts a new one instead of joining across the bad point.
func (s *Stroke) MoveTo(p Point) error {
	var err error
	if s.down {
		err = s.d.DrawLine(s.prev, p)
	} else {
		err = s.d.DrawPoint(p)
	}
	if err != nil {
		s.down = false
		return err
	}
	s.prev, s.down = p, true
	return nil
}

// Release ends the stroke (pointer released or left the canvas).
func (s *Stroke) Release() {
	s.down = false
}

// Active reports whether a stroke is in progress.
func (s *Stroke) Active() bool {
	return s.down
}
