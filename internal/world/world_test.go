package world

import (
	"testing"
	"time"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

func TestMemorySpawnAndDestroy(t *testing.T) {
	w := NewMemory()

	a := w.SpawnRoom(geom.V(0, 0), geom.V(100, 50))
	b := w.SpawnRoom(geom.V(200, 0), geom.V(80, 80))
	if a.IsNil() || b.IsNil() {
		t.Fatal("SpawnRoom() returned a nil handle for a valid request")
	}
	if a == b {
		t.Fatal("SpawnRoom() returned duplicate handles")
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.Len())
	}

	box, ok := w.RoomBounds(a)
	if !ok {
		t.Fatal("RoomBounds() ok = false for live room")
	}
	if box.Center != geom.V(0, 0) || box.Half != geom.V(50, 25) {
		t.Errorf("RoomBounds() = %+v, want center (0,0) half (50,25)", box)
	}

	w.DestroyRoom(a)
	if w.IsValid(a) {
		t.Error("IsValid() = true after DestroyRoom")
	}
	if _, ok := w.RoomBounds(a); ok {
		t.Error("RoomBounds() ok = true after DestroyRoom")
	}
	w.DestroyRoom(a) // no-op

	rooms := w.Rooms()
	if len(rooms) != 1 || rooms[0].Handle != b {
		t.Errorf("Rooms() = %v, want only b", rooms)
	}
}

func TestMemorySpawnRejected(t *testing.T) {
	w := NewMemory(WithSpawnFilter(func(p, _ geom.Vec2) bool { return p.X >= 0 }))

	if h := w.SpawnRoom(geom.V(-5, 0), geom.V(10, 10)); !h.IsNil() {
		t.Errorf("SpawnRoom() rejected by filter = %v, want nil handle", h)
	}
	if h := w.SpawnRoom(geom.V(5, 0), geom.V(0, 10)); !h.IsNil() {
		t.Errorf("SpawnRoom() with zero width = %v, want nil handle", h)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.Len())
	}
}

func TestMemoryPositionAndMainFlag(t *testing.T) {
	w := NewMemory()
	h := w.SpawnRoom(geom.V(0, 0), geom.V(10, 10))

	w.SetRoomPosition(h, geom.V(7, -3))
	w.SetRoomMainFlag(h, true)

	r, ok := w.Room(h)
	if !ok {
		t.Fatal("Room() ok = false")
	}
	if r.Center != geom.V(7, -3) {
		t.Errorf("Center = %v, want (7,-3)", r.Center)
	}
	if !r.Main {
		t.Error("Main = false, want true")
	}
	if r.Thickness != DefaultThickness {
		t.Errorf("Thickness = %v, want %v", r.Thickness, DefaultThickness)
	}
}

func TestRoomIntersects(t *testing.T) {
	a := Room{Center: geom.V(0, 0), Size: geom.V(10, 10)}
	tests := []struct {
		other Room
		want  bool
	}{
		{Room{Center: geom.V(5, 5), Size: geom.V(10, 10)}, true},
		{Room{Center: geom.V(10, 0), Size: geom.V(10, 10)}, false}, // touching
		{Room{Center: geom.V(30, 0), Size: geom.V(10, 10)}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.other); got != tt.want {
			t.Errorf("Intersects(%v) = %v, want %v", tt.other.Center, got, tt.want)
		}
	}
}

func TestRoomAreaFloor(t *testing.T) {
	r := Room{Size: geom.V(0.5, 20)}
	if got := r.Area(); got != 20 {
		t.Errorf("Area() = %v, want 20", got)
	}
}

func TestManualSchedulerFiresOnce(t *testing.T) {
	s := NewManualScheduler()
	calls := 0
	s.ScheduleOnce(2*time.Second, func() { calls++ })

	if fired := s.Advance(time.Second); fired != 0 {
		t.Errorf("Advance(1s) fired %d, want 0", fired)
	}
	if fired := s.Advance(time.Second); fired != 1 {
		t.Errorf("Advance(2s) fired %d, want 1", fired)
	}
	s.Advance(10 * time.Second)
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestManualSchedulerCancel(t *testing.T) {
	s := NewManualScheduler()
	ran := false
	tok := s.ScheduleOnce(time.Second, func() { ran = true })

	s.CancelScheduled(tok)
	s.CancelScheduled(tok) // already cancelled
	s.Advance(5 * time.Second)

	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestManualSchedulerOrderAndFlush(t *testing.T) {
	s := NewManualScheduler()
	var order []int
	s.ScheduleOnce(3*time.Second, func() { order = append(order, 3) })
	s.ScheduleOnce(1*time.Second, func() { order = append(order, 1) })
	s.ScheduleOnce(2*time.Second, func() {
		order = append(order, 2)
		s.ScheduleOnce(0, func() { order = append(order, 20) })
	})

	if fired := s.Flush(); fired != 4 {
		t.Errorf("Flush() fired %d, want 4", fired)
	}
	want := []int{1, 2, 20, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
	if s.Now() != 3*time.Second {
		t.Errorf("Now() = %v, want 3s", s.Now())
	}
}

func TestMemoryDelegatesScheduling(t *testing.T) {
	clock := NewManualScheduler()
	w := NewMemory(WithScheduler(clock))
	ran := false
	w.ScheduleOnce(time.Second, func() { ran = true })

	if clock.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", clock.Pending())
	}
	clock.Advance(time.Second)
	if !ran {
		t.Error("callback did not run after Advance")
	}
}
