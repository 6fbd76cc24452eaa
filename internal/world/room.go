// Package world provides an in-memory room store and a manually driven
// scheduler that together satisfy the layout generator's World contract.
package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

// DefaultThickness is the vertical extent given to spawned rooms.
const DefaultThickness = 2000.0

// Handle identifies a spawned room. The zero Handle is never valid.
type Handle uuid.UUID

// NilHandle is returned when a spawn is rejected.
var NilHandle Handle

// NewHandle returns a fresh random handle.
func NewHandle() Handle {
	return Handle(uuid.New())
}

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool {
	return h == NilHandle
}

// String returns the canonical UUID text.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Room represents a rectangular room in the world.
type Room struct {
	Handle    Handle
	Center    geom.Vec2 // Position on the ground plane
	Size      geom.Vec2 // Full footprint
	Thickness float64
	Main      bool
}

// Bounds returns the room footprint as a box.
func (r Room) Bounds() geom.Box {
	return geom.BoxFromSize(r.Center, r.Size)
}

// Area returns the footprint area, treating each side as at least one unit.
func (r Room) Area() float64 {
	w, h := r.Size.X, r.Size.Y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w * h
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(p geom.Vec2) bool {
	return r.Bounds().Contains(p, 0)
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	d := r.Center.Sub(other.Center).Abs()
	a, b := r.Size.Scale(0.5), other.Size.Scale(0.5)
	return d.X < a.X+b.X && d.Y < a.Y+b.Y
}
