package canvas

import "github.com/chewxy/math32"

// minLineLength is the length below which a segment is drawn as a point.
const minLineLength = 0.001

// DrawLine strokes the segment from start to end.
//
// Both endpoints are checked against [0,width]×[0,height] before anything
// is painted. A segment shorter than minLineLength is a single stamp at
// start. Otherwise the brush is stamped at start+d, start+2d, ... where d is
// the unit direction, stopping at the first stamp whose horizontal
// displacement from start reaches the segment's horizontal extent. Stamps
// are one pixel apart along the segment regardless of brush size, so thin
// brushes can leave gaps. An exactly vertical segment has no horizontal
// extent and is measured on the vertical axis instead.
func (c *Canvas) DrawLine(start, end Point) error {
	if err := c.checkBounds(start); err != nil {
		return err
	}
	if err := c.checkBounds(end); err != nil {
		return err
	}

	for _, p := range lineSteps(start, end) {
		if err := c.stamp(p); err != nil {
			return err
		}
	}
	return nil
}

// lineSteps returns the stamp positions DrawLine uses for a segment.
func lineSteps(start, end Point) []Point {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math32.Sqrt(dx*dx + dy*dy)
	if length < minLineLength {
		return []Point{start}
	}

	grad := Point{X: dx / length, Y: dy / length}

	// Displacement is measured on x, falling back to y when the segment
	// is exactly vertical.
	axis := func(p Point) float32 { return p.X }
	extent := math32.Abs(length * grad.X)
	if grad.X == 0 {
		axis = func(p Point) float32 { return p.Y }
		extent = math32.Abs(length * grad.Y)
	}

	steps := make([]Point, 0, int(length)+2)
	pos := Point{X: start.X + grad.X, Y: start.Y + grad.Y}
	for {
		steps = append(steps, pos)
		if math32.Abs(axis(pos)-axis(start)) >= extent {
			return steps
		}
		// Near-vertical segments move x by less than one ulp per step, so
		// the displacement test alone may never fire.
		if float32(len(steps)) >= length+1 {
			return steps
		}
		pos.X += grad.X
		pos.Y += grad.Y
	}
}
