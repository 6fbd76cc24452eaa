package layout

import (
	"math"
	"testing"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

func TestCorridorTransforms(t *testing.T) {
	opts := TransformOptions{Width: 250, Height: 150, BaseZ: 260, UnitBase: 100}
	segments := []Segment{
		{A: geom.V(0, 0), B: geom.V(200, 0)},
		{A: geom.V(5, 5), B: geom.V(5, 5)},
		{A: geom.V(0, 0), B: geom.V(0, 100)},
	}

	got := CorridorTransforms(segments, opts)
	if len(got) != 2 {
		t.Fatalf("CorridorTransforms() returned %d, want 2 (zero-length skipped)", len(got))
	}

	h := got[0]
	if h.Position != (geom.Vec3{X: 100, Y: 0, Z: 335}) {
		t.Errorf("Position = %+v, want (100, 0, 335)", h.Position)
	}
	if h.YawDegrees != 0 {
		t.Errorf("YawDegrees = %v, want 0", h.YawDegrees)
	}
	if h.Scale != (geom.Vec3{X: 2, Y: 2.5, Z: 1.5}) {
		t.Errorf("Scale = %+v, want (2, 2.5, 1.5)", h.Scale)
	}

	v := got[1]
	if math.Abs(v.YawDegrees-90) > 1e-9 {
		t.Errorf("YawDegrees = %v, want 90", v.YawDegrees)
	}
	if v.Scale.X != 1 {
		t.Errorf("Scale.X = %v, want 1", v.Scale.X)
	}
}

func TestCorridorTransformsDefaultBase(t *testing.T) {
	got := CorridorTransforms([]Segment{{A: geom.V(0, 0), B: geom.V(-300, 0)}}, TransformOptions{Width: 100, Height: 100})
	if len(got) != 1 {
		t.Fatalf("CorridorTransforms() returned %d, want 1", len(got))
	}
	if got[0].Scale.X != 3 {
		t.Errorf("Scale.X = %v, want 3", got[0].Scale.X)
	}
	if math.Abs(got[0].YawDegrees-180) > 1e-9 {
		t.Errorf("YawDegrees = %v, want 180", got[0].YawDegrees)
	}
}
