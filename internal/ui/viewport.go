package ui

import (
	"math"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/layout"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// fitMargin leaves a little room around the fitted bounds.
const fitMargin = 1.05

// Viewport maps world coordinates to terminal cells. World +Y points up the
// screen.
type Viewport struct {
	Center      geom.Vec2
	UnitsPerCol float64
	Cols, Rows  int
}

// FitViewport returns a viewport showing all of bounds in a cols x rows area.
func FitViewport(bounds geom.Box, cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)
	size := bounds.Size()
	upc := max(size.X/float64(cols), size.Y/(float64(rows)*cellAspect))
	if upc <= 0 {
		upc = 1
	}
	return Viewport{Center: bounds.Center, UnitsPerCol: upc * fitMargin, Cols: cols, Rows: rows}
}

// Project returns the cell containing p.
func (v Viewport) Project(p geom.Vec2) (x, y int) {
	dx := (p.X - v.Center.X) / v.UnitsPerCol
	dy := (p.Y - v.Center.Y) / (v.UnitsPerCol * cellAspect)
	x = int(math.Floor(float64(v.Cols)/2 + dx))
	y = int(math.Floor(float64(v.Rows)/2 - dy))
	return x, y
}

// InView reports whether the cell lies inside the viewport.
func (v Viewport) InView(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Cols && y < v.Rows
}

// LayoutBounds returns the box enclosing every room and point of l.
func LayoutBounds(l layout.Layout) geom.Box {
	corners := make([]geom.Vec2, 0, 2*len(l.Rooms)+len(l.Points))
	for _, r := range l.Rooms {
		b := geom.BoxFromSize(r.Center, r.Size)
		corners = append(corners, b.Min(), b.Max())
	}
	corners = append(corners, l.Points...)
	if len(corners) == 0 {
		return geom.Box{Half: geom.V(1, 1)}
	}
	lo, hi := geom.Bounds(corners)
	return geom.Box{Center: lo.Add(hi).Scale(0.5), Half: hi.Sub(lo).Scale(0.5)}
}

// Line visits every cell on the Bresenham line from (x0, y0) to (x1, y1),
// both ends included.
func Line(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
