package layout

import (
	"math"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// RoomRef is a working copy of a room used while relaxing and culling. The
// solver moves Center freely; nothing reaches the world until ApplyRefs.
type RoomRef struct {
	Handle world.Handle
	Center geom.Vec2
	Half   geom.Vec2
}

// Box returns the ref footprint.
func (r RoomRef) Box() geom.Box {
	return geom.Box{Center: r.Center, Half: r.Half}
}

// Area returns the footprint area with each side floored at one unit.
func (r RoomRef) Area() float64 {
	return math.Max(1, 2*r.Half.X) * math.Max(1, 2*r.Half.Y)
}

// BuildRoomRefs snapshots the live rooms among handles, skipping any whose
// handle is no longer valid.
func BuildRoomRefs(w RoomReader, handles []world.Handle) []RoomRef {
	refs := make([]RoomRef, 0, len(handles))
	for _, h := range handles {
		if !w.IsValid(h) {
			continue
		}
		b, ok := w.RoomBounds(h)
		if !ok {
			continue
		}
		refs = append(refs, RoomRef{Handle: h, Center: b.Center, Half: b.Half})
	}
	return refs
}

// ApplyRefs writes every ref position back to its room.
func ApplyRefs(w Positioner, refs []RoomRef) {
	for _, r := range refs {
		if !w.IsValid(r.Handle) {
			continue
		}
		w.SetRoomPosition(r.Handle, r.Center)
	}
}

// liveHandles filters handles down to the ones still valid in w.
func liveHandles(w RoomReader, handles []world.Handle) []world.Handle {
	out := handles[:0:0]
	for _, h := range handles {
		if w.IsValid(h) {
			out = append(out, h)
		}
	}
	return out
}
