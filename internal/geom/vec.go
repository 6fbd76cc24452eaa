// Package geom provides the 2D primitives used by layout generation:
// vectors, axis-aligned boxes and segment clipping.
package geom

import "math"

const (
	// SmallNumber is the tolerance below which a value is treated as zero.
	SmallNumber = 1e-8
	// KindaSmallNumber is the tolerance for lengths considered degenerate.
	KindaSmallNumber = 1e-4
)

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec3 is a 3D vector, used only for emitted transforms.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// SafeNormal returns v scaled to unit length, or the zero vector when v is
// too short to normalize.
func (v Vec2) SafeNormal() Vec2 {
	l2 := v.LenSq()
	if l2 <= SmallNumber {
		return Vec2{}
	}
	return v.Scale(1 / math.Sqrt(l2))
}

// DistSq returns the squared distance between two points.
func DistSq(a, b Vec2) float64 {
	return a.Sub(b).LenSq()
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Lerp interpolates between a and b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// NearlyZero reports whether |v| is within SmallNumber of zero.
func NearlyZero(v float64) bool {
	return math.Abs(v) <= SmallNumber
}

// NearlyEqual reports whether a and b differ by at most eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
