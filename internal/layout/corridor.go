package layout

import (
	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
)

// ownerMatchDistSq is the squared distance within which a point is taken to
// be a main room's center.
const ownerMatchDistSq = 1.0

// Segment is one straight corridor piece.
type Segment struct {
	A geom.Vec2 `json:"a"`
	B geom.Vec2 `json:"b"`
}

// Len returns the segment length.
func (s Segment) Len() float64 {
	return geom.Dist(s.A, s.B)
}

// Corridor is the routed path for one spanning tree edge: one straight
// segment, or two when it bends around an elbow.
type Corridor struct {
	Edge     delaunay.Edge `json:"edge"`
	Segments []Segment     `json:"segments"`
}

// Elbow reports whether the corridor bends.
func (c Corridor) Elbow() bool {
	return len(c.Segments) > 1
}

// RouteOptions controls corridor routing.
type RouteOptions struct {
	// Inset shrinks room boxes before computing exit points.
	Inset float64
	// AlignEpsilon is the tolerance under which two centers count as sharing
	// an axis.
	AlignEpsilon float64
	// Exact draws every corridor as a straight line between exit points.
	Exact bool
}

// FindRoomByCenter returns the main room whose center is closest to c, if it
// lies within a negligible distance.
func FindRoomByCenter(mains []geom.Box, c geom.Vec2) (geom.Box, bool) {
	best := -1
	bestD2 := 0.0
	for i, b := range mains {
		d2 := geom.DistSq(b.Center, c)
		if best < 0 || d2 < bestD2 {
			best, bestD2 = i, d2
		}
	}
	if best < 0 || bestD2 >= ownerMatchDistSq {
		return geom.Box{}, false
	}
	return mains[best], true
}

// ExitPointFromRoom returns where the ray from start toward target leaves the
// room box shrunk by inset. Without a room, or when the clip fails, start is
// returned.
func ExitPointFromRoom(start, target geom.Vec2, room geom.Box, hasRoom bool, inset float64) geom.Vec2 {
	if !hasRoom {
		return start
	}
	p, _ := geom.ExitPoint(start, target, room.Inflate(-inset))
	return p
}

// RouteCorridors turns each spanning tree edge into corridor segments.
// points are the main room centers the edges index into; mains are the live
// main room boxes used to resolve exit points.
func RouteCorridors(points []geom.Vec2, mst []delaunay.Edge, mains []geom.Box, opts RouteOptions) []Corridor {
	out := make([]Corridor, 0, len(mst))
	for _, e := range mst {
		if e.A < 0 || e.B < 0 || e.A >= len(points) || e.B >= len(points) {
			continue
		}
		a, b := points[e.A], points[e.B]
		ar, aok := FindRoomByCenter(mains, a)
		br, bok := FindRoomByCenter(mains, b)

		c := Corridor{Edge: e}
		aligned := geom.NearlyEqual(a.Y, b.Y, opts.AlignEpsilon) || geom.NearlyEqual(a.X, b.X, opts.AlignEpsilon)
		if opts.Exact || aligned {
			c.Segments = []Segment{{
				A: ExitPointFromRoom(a, b, ar, aok, opts.Inset),
				B: ExitPointFromRoom(b, a, br, bok, opts.Inset),
			}}
		} else {
			corner := geom.V(a.X, b.Y)
			c.Segments = []Segment{
				{A: ExitPointFromRoom(a, corner, ar, aok, opts.Inset), B: corner},
				{A: corner, B: ExitPointFromRoom(b, corner, br, bok, opts.Inset)},
			}
		}
		out = append(out, c)
	}
	return out
}

// Segments flattens corridors into their segments, in order.
func Segments(corridors []Corridor) []Segment {
	var out []Segment
	for _, c := range corridors {
		out = append(out, c.Segments...)
	}
	return out
}
