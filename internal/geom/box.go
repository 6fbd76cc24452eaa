package geom

import "math"

// Box is an axis-aligned rectangle described by its center and half extents.
type Box struct {
	Center Vec2 `json:"center"`
	Half   Vec2 `json:"half"`
}

// BoxFromSize builds a box centered at center with the given full size.
func BoxFromSize(center, size Vec2) Box {
	return Box{Center: center, Half: size.Scale(0.5)}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Size returns the full extents.
func (b Box) Size() Vec2 {
	return b.Half.Scale(2)
}

// Area returns the box area.
func (b Box) Area() float64 {
	return 4 * b.Half.X * b.Half.Y
}

// Inflate grows each half extent by d. Negative values shrink the box; half
// extents never go below zero.
func (b Box) Inflate(d float64) Box {
	return Box{
		Center: b.Center,
		Half:   Vec2{math.Max(0, b.Half.X+d), math.Max(0, b.Half.Y+d)},
	}
}

// Contains reports whether p lies inside or on the boundary of b, within tol.
func (b Box) Contains(p Vec2, tol float64) bool {
	d := p.Sub(b.Center).Abs()
	return d.X <= b.Half.X+tol && d.Y <= b.Half.Y+tol
}

// Bounds accumulates the bounding box of a point set.
func Bounds(points []Vec2) (min, max Vec2) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}
