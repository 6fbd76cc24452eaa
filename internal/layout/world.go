// Package layout generates room-and-corridor layouts: random placement,
// overlap relaxation, main room selection, Delaunay triangulation, minimum
// spanning tree and corridor routing.
package layout

import (
	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// RoomReader exposes the live geometry of rooms.
type RoomReader interface {
	IsValid(h world.Handle) bool
	// RoomBounds returns the footprint; Center is the bounds origin and Half
	// the bounds extent.
	RoomBounds(h world.Handle) (geom.Box, bool)
}

// Positioner can read and move rooms.
type Positioner interface {
	RoomReader
	SetRoomPosition(h world.Handle, p geom.Vec2)
}

// World is everything the generator needs from its host: room lifecycle,
// geometry and a fire-once scheduler.
type World interface {
	Positioner
	world.Scheduler

	// SpawnRoom returns world.NilHandle when the host rejects the spawn.
	SpawnRoom(position, size geom.Vec2) world.Handle
	DestroyRoom(h world.Handle)
	SetRoomMainFlag(h world.Handle, main bool)
}

// CorridorSink receives the final corridor instance transforms.
type CorridorSink interface {
	Emit(transforms []Transform)
}

// SinkFunc adapts a function to CorridorSink.
type SinkFunc func(transforms []Transform)

// Emit implements CorridorSink.
func (f SinkFunc) Emit(transforms []Transform) {
	f(transforms)
}
