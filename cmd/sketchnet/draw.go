package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/sketchnet/internal/canvas"
	"github.com/born-ml/sketchnet/internal/nn"
)

// strokeDelay paces replayed pointer events so guesses change visibly.
const strokeDelay = 20 * time.Millisecond

// parseStrokes reads "x,y x,y;x,y ..." into one point list per stroke.
func parseStrokes(s string) ([][]canvas.Point, error) {
	var out [][]canvas.Point
	for _, stroke := range strings.Split(s, ";") {
		var pts []canvas.Point
		for _, field := range strings.Fields(stroke) {
			xs, ys, ok := strings.Cut(field, ",")
			if !ok {
				return nil, fmt.Errorf("point %q: want x,y", field)
			}
			x, err := strconv.ParseFloat(xs, 32)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", field, err)
			}
			y, err := strconv.ParseFloat(ys, 32)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", field, err)
			}
			pts = append(pts, canvas.Point{X: float32(x), Y: float32(y)})
		}
		if len(pts) > 0 {
			out = append(out, pts)
		}
	}
	return out, nil
}

func parseSizes(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// replay feeds strokes through a canvas.Stroke the way a pointer handler
// would: each point is one move event and strokes end with a release.
// Out-of-bounds points break the line and are otherwise ignored.
func replay(ctx context.Context, shared *canvas.Shared, strokes [][]canvas.Point) error {
	s := canvas.NewStroke(shared)
	for _, pts := range strokes {
		for _, p := range pts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(strokeDelay):
			}
			if err := s.MoveTo(p); err != nil {
				fmt.Printf("   skip %v: %v\n", p, err)
			}
		}
		s.Release()
	}
	return nil
}

// interpolateStrokes subdivides each segment so a replay sends pointer
// events at roughly one per pixel.
func interpolateStrokes(strokes [][]canvas.Point) [][]canvas.Point {
	out := make([][]canvas.Point, len(strokes))
	for i, pts := range strokes {
		for j, p := range pts {
			if j > 0 {
				prev := pts[j-1]
				dx, dy := p.X-prev.X, p.Y-prev.Y
				n := int(max(abs(dx), abs(dy)))
				for k := 1; k < n; k++ {
					f := float32(k) / float32(n)
					out[i] = append(out[i], canvas.Point{X: prev.X + f*dx, Y: prev.Y + f*dy})
				}
			}
			out[i] = append(out[i], p)
		}
	}
	return out
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

const shades = " .:-=+*#%@"

func render(w io.Writer, ink []byte, width int) {
	var b strings.Builder
	for i, v := range ink {
		b.WriteByte(shades[int(v)*(len(shades)-1)/255])
		if (i+1)%width == 0 {
			b.WriteByte('\n')
		}
	}
	fmt.Fprint(w, b.String())
}

func printOutputs(w io.Writer, out []float32) {
	best := nn.Argmax(out)
	for i, v := range out {
		mark := " "
		if i == best {
			mark = "*"
		}
		fmt.Fprintf(w, " %s %d %5.3f %s\n", mark, i, v, strings.Repeat("#", int(v*40)))
	}
}

func mean(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	var sum float32
	for _, x := range v {
		sum += x
	}
	return sum / float32(len(v))
}

func printCPU(w io.Writer) {
	fmt.Fprintf(w, "CPU: %s (%d physical / %d logical cores)", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3) {
		fmt.Fprint(w, ", AVX2+FMA")
	}
	fmt.Fprintln(w)
}
