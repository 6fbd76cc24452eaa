package layout

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

func TestPrune(t *testing.T) {
	main := ref(5000, 5000, 50, 50)
	onPath := ref(500, 0, 50, 50)
	grazed := ref(500, 190, 50, 50)
	far := ref(500, 1000, 50, 50)

	mains := mapset.New[world.Handle]()
	mains.Put(main.Handle)
	segments := []Segment{{A: geom.V(0, 0), B: geom.V(1000, 0)}}

	kept, removed := Prune([]RoomRef{main, onPath, grazed, far}, mains, segments, 150)

	if len(kept) != 3 {
		t.Fatalf("kept %d rooms, want 3", len(kept))
	}
	want := []world.Handle{main.Handle, onPath.Handle, grazed.Handle}
	for i, h := range want {
		if kept[i].Handle != h {
			t.Errorf("kept[%d] = %v, want %v", i, kept[i].Center, h)
		}
	}
	if len(removed) != 1 || removed[0] != far.Handle {
		t.Errorf("removed = %v, want only the far room", removed)
	}
}

func TestPruneIdempotent(t *testing.T) {
	refs := []RoomRef{
		ref(0, 0, 100, 100),
		ref(400, 50, 60, 60),
		ref(400, 600, 60, 60),
		ref(-700, 0, 80, 40),
		ref(800, 0, 100, 100),
	}
	mains := mapset.New[world.Handle]()
	mains.Put(refs[0].Handle)
	mains.Put(refs[4].Handle)
	segments := []Segment{{A: geom.V(90, 0), B: geom.V(710, 0)}}

	once, _ := Prune(refs, mains, segments, 150)
	twice, removed := Prune(once, mains, segments, 150)

	if len(removed) != 0 {
		t.Errorf("second Prune() removed %d rooms, want 0", len(removed))
	}
	if len(once) != len(twice) {
		t.Fatalf("kept %d then %d rooms", len(once), len(twice))
	}
	for i := range once {
		if once[i].Handle != twice[i].Handle {
			t.Errorf("kept[%d] changed between runs", i)
		}
	}
}

func TestPruneWithoutCorridorsKeepsMains(t *testing.T) {
	a, b := ref(0, 0, 10, 10), ref(100, 0, 10, 10)
	mains := mapset.New[world.Handle]()
	mains.Put(a.Handle)

	kept, removed := Prune([]RoomRef{a, b}, mains, nil, 150)
	if len(kept) != 1 || kept[0].Handle != a.Handle {
		t.Errorf("kept = %v, want only the main room", kept)
	}
	if len(removed) != 1 {
		t.Errorf("removed %d, want 1", len(removed))
	}
}
