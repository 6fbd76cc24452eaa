package layout

import (
	"testing"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

func TestTooClose(t *testing.T) {
	a := geom.Box{Center: geom.V(0, 0), Half: geom.V(50, 50)}
	tests := []struct {
		name string
		b    geom.Box
		gap  float64
		want bool
	}{
		{"overlapping", geom.Box{Center: geom.V(60, 0), Half: geom.V(50, 50)}, 0, true},
		{"inside gap", geom.Box{Center: geom.V(130, 0), Half: geom.V(50, 50)}, 20, true},
		{"outside gap", geom.Box{Center: geom.V(141, 0), Half: geom.V(50, 50)}, 20, false},
		{"diagonal clear", geom.Box{Center: geom.V(130, 300), Half: geom.V(50, 50)}, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TooClose(a, tt.b, tt.gap); got != tt.want {
				t.Errorf("TooClose() = %v, want %v", got, tt.want)
			}
			if got := TooClose(tt.b, a, tt.gap); got != tt.want {
				t.Errorf("TooClose() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectMainLargestFirst(t *testing.T) {
	small := ref(0, 0, 20, 20)
	large := ref(1000, 0, 80, 80)
	medium := ref(-1000, 0, 50, 50)
	nearLarge := ref(1100, 0, 70, 70)

	got := SelectMain([]RoomRef{small, large, medium, nearLarge}, 2, 20)
	if len(got) != 2 {
		t.Fatalf("SelectMain() picked %d, want 2", len(got))
	}
	if got[0].Handle != large.Handle || got[1].Handle != medium.Handle {
		t.Errorf("SelectMain() = [%v %v], want large then medium", got[0].Center, got[1].Center)
	}
}

func TestSelectMainTieKeepsInputOrder(t *testing.T) {
	refs := []RoomRef{
		ref(0, 0, 50, 50),
		ref(1000, 0, 50, 50),
		ref(2000, 0, 50, 50),
		ref(3000, 0, 50, 50),
	}
	got := SelectMain(refs, 3, 10)
	if len(got) != 3 {
		t.Fatalf("SelectMain() picked %d, want 3", len(got))
	}
	for i := range got {
		if got[i].Handle != refs[i].Handle {
			t.Errorf("pick %d = %v, want %v", i, got[i].Center, refs[i].Center)
		}
	}
}

func TestSelectMainExhaustsCandidates(t *testing.T) {
	refs := []RoomRef{ref(0, 0, 50, 50), ref(10, 0, 40, 40)}
	if got := SelectMain(refs, 5, 10); len(got) != 1 {
		t.Errorf("SelectMain() picked %d, want 1", len(got))
	}
	if got := SelectMain(refs, 0, 10); len(got) != 0 {
		t.Errorf("SelectMain(0) picked %d, want 0", len(got))
	}
}

func TestRelaxMainRoomsPushesApart(t *testing.T) {
	w := world.NewMemory()
	a := w.SpawnRoom(geom.V(0, 0), geom.V(100, 100))
	b := w.SpawnRoom(geom.V(90, 0), geom.V(100, 100))

	passes := RelaxMainRooms(w, []world.Handle{a, b}, 20, 40, 10)

	ba, _ := w.RoomBounds(a)
	bb, _ := w.RoomBounds(b)
	if TooClose(ba, bb, 20) {
		t.Errorf("rooms still too close after %d passes: %v %v", passes, ba.Center, bb.Center)
	}
	if ba.Center.Y != 0 || bb.Center.Y != 0 {
		t.Errorf("push left the center line: %v %v", ba.Center, bb.Center)
	}
	if passes < 1 || passes > 10 {
		t.Errorf("passes = %d, want 1..10", passes)
	}
}

func TestRelaxMainRoomsSkipsDestroyed(t *testing.T) {
	w := world.NewMemory()
	a := w.SpawnRoom(geom.V(0, 0), geom.V(100, 100))
	b := w.SpawnRoom(geom.V(10, 0), geom.V(100, 100))
	w.DestroyRoom(b)

	if passes := RelaxMainRooms(w, []world.Handle{a, b}, 20, 40, 10); passes != 1 {
		t.Errorf("passes = %d, want 1", passes)
	}
	if box, _ := w.RoomBounds(a); box.Center != geom.V(0, 0) {
		t.Errorf("live room moved to %v", box.Center)
	}
}
