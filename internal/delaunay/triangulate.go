package delaunay

import (
	"math"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

// superTriangleScale multiplies the bounding box extent when placing the
// super-triangle vertices.
const superTriangleScale = 10

// Circumcircle returns the circumcenter and squared radius of a, b, c. When
// the points are collinear ok is false and the circle is treated as infinite.
func Circumcircle(a, b, c geom.Vec2) (center geom.Vec2, r2 float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if geom.NearlyZero(d) {
		return geom.Vec2{X: math.MaxFloat64, Y: math.MaxFloat64}, math.MaxFloat64, false
	}

	a2, b2, c2 := a.LenSq(), b.LenSq(), c.LenSq()
	center = geom.Vec2{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
	return center, geom.DistSq(center, a), true
}

// InCircumcircle reports whether p lies strictly inside the circumcircle of
// a, b, c. A collinear triple never contains any point.
func InCircumcircle(p, a, b, c geom.Vec2) bool {
	center, r2, ok := Circumcircle(a, b, c)
	if !ok {
		return false
	}
	return geom.DistSq(p, center) < r2
}

// Triangulate returns the Delaunay triangulation of points. Fewer than three
// points yield no triangles. Coincident points are not guarded against; the
// duplicate simply fails to split any triangle it lies on the boundary of.
func Triangulate(points []geom.Vec2) []Triangle {
	n := len(points)
	if n < 3 {
		return nil
	}

	lo, hi := geom.Bounds(points)
	delta := math.Max(hi.X-lo.X, hi.Y-lo.Y) * superTriangleScale
	if delta <= 0 {
		delta = superTriangleScale
	}
	mid := lo.Add(hi).Scale(0.5)

	pts := make([]geom.Vec2, n, n+3)
	copy(pts, points)
	pts = append(pts,
		geom.Vec2{X: mid.X - 2*delta, Y: mid.Y - delta},
		geom.Vec2{X: mid.X, Y: mid.Y + 2*delta},
		geom.Vec2{X: mid.X + 2*delta, Y: mid.Y - delta},
	)

	tris := []Triangle{{I: n, J: n + 1, K: n + 2}}

	for idx := 0; idx < n; idx++ {
		p := pts[idx]

		kept := make([]Triangle, 0, len(tris)+2)
		var hole []Edge
		counts := make(map[Edge]int)
		for _, t := range tris {
			if !InCircumcircle(p, pts[t.I], pts[t.J], pts[t.K]) {
				kept = append(kept, t)
				continue
			}
			for _, e := range t.Edges() {
				if counts[e] == 0 {
					hole = append(hole, e)
				}
				counts[e]++
			}
		}

		// Edges shared by two bad triangles are interior to the hole.
		for _, e := range hole {
			if counts[e] == 1 {
				kept = append(kept, Triangle{I: e.A, J: e.B, K: idx})
			}
		}
		tris = kept
	}

	out := tris[:0]
	for _, t := range tris {
		if !t.HasVertexAtOrAbove(n) {
			out = append(out, t)
		}
	}
	return out
}
