package world

import (
	"time"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

// SpawnFilter decides whether a spawn request is accepted.
type SpawnFilter func(position, size geom.Vec2) bool

// Option configures a Memory world.
type Option func(*Memory)

// WithScheduler replaces the default manual scheduler.
func WithScheduler(s Scheduler) Option {
	return func(m *Memory) {
		m.scheduler = s
	}
}

// WithSpawnFilter rejects spawns for which f returns false.
func WithSpawnFilter(f SpawnFilter) Option {
	return func(m *Memory) {
		m.filter = f
	}
}

// Memory is a World that keeps rooms in a map keyed by handle. It is not
// safe for concurrent use; one generator drives one Memory.
type Memory struct {
	rooms     map[Handle]*Room
	order     []Handle
	scheduler Scheduler
	filter    SpawnFilter
}

// NewMemory creates an empty world. Without WithScheduler it uses a
// ManualScheduler, reachable through Scheduler().
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		rooms: make(map[Handle]*Room),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scheduler == nil {
		m.scheduler = NewManualScheduler()
	}
	return m
}

// Scheduler returns the scheduler deferred callbacks are registered with.
func (m *Memory) Scheduler() Scheduler {
	return m.scheduler
}

// SpawnRoom creates a room centered at position. It returns NilHandle when
// the spawn filter rejects the request or the size is not positive.
func (m *Memory) SpawnRoom(position, size geom.Vec2) Handle {
	if size.X <= 0 || size.Y <= 0 {
		return NilHandle
	}
	if m.filter != nil && !m.filter(position, size) {
		return NilHandle
	}

	h := NewHandle()
	m.rooms[h] = &Room{
		Handle:    h,
		Center:    position,
		Size:      size,
		Thickness: DefaultThickness,
	}
	m.order = append(m.order, h)
	return h
}

// DestroyRoom removes a room. Destroying an unknown handle is a no-op.
func (m *Memory) DestroyRoom(h Handle) {
	if _, ok := m.rooms[h]; !ok {
		return
	}
	delete(m.rooms, h)
	for i, o := range m.order {
		if o == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// IsValid reports whether h refers to a live room.
func (m *Memory) IsValid(h Handle) bool {
	_, ok := m.rooms[h]
	return ok
}

// SetRoomPosition moves a room's center.
func (m *Memory) SetRoomPosition(h Handle, p geom.Vec2) {
	if r, ok := m.rooms[h]; ok {
		r.Center = p
	}
}

// RoomBounds returns the room footprint: the box center is the bounds origin
// and its half size the bounds extent.
func (m *Memory) RoomBounds(h Handle) (geom.Box, bool) {
	r, ok := m.rooms[h]
	if !ok {
		return geom.Box{}, false
	}
	return r.Bounds(), true
}

// SetRoomMainFlag marks or clears a room as main.
func (m *Memory) SetRoomMainFlag(h Handle, main bool) {
	if r, ok := m.rooms[h]; ok {
		r.Main = main
	}
}

// Room returns a copy of the room for h.
func (m *Memory) Room(h Handle) (Room, bool) {
	r, ok := m.rooms[h]
	if !ok {
		return Room{}, false
	}
	return *r, true
}

// Rooms returns copies of all live rooms in spawn order.
func (m *Memory) Rooms() []Room {
	out := make([]Room, 0, len(m.order))
	for _, h := range m.order {
		out = append(out, *m.rooms[h])
	}
	return out
}

// Len returns the number of live rooms.
func (m *Memory) Len() int {
	return len(m.rooms)
}

// ScheduleOnce registers fn to run once after delay.
func (m *Memory) ScheduleOnce(delay time.Duration, fn func()) TimerToken {
	return m.scheduler.ScheduleOnce(delay, fn)
}

// CancelScheduled revokes a pending callback.
func (m *Memory) CancelScheduled(tok TimerToken) {
	m.scheduler.CancelScheduled(tok)
}
