package layout

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

func TestSampleBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	min, max := geom.V(250, 100), geom.V(950, 400)
	got := Sample(500, 1600, min, max, rng)

	if len(got) != 500 {
		t.Fatalf("Sample() returned %d placements, want 500", len(got))
	}
	for i, p := range got {
		if d := p.Position.Len(); d > 1600+1e-9 {
			t.Errorf("placement %d at distance %v, want <= 1600", i, d)
		}
		if p.Size.X < min.X || p.Size.X > max.X || p.Size.Y < min.Y || p.Size.Y > max.Y {
			t.Errorf("placement %d size %v outside [%v, %v]", i, p.Size, min, max)
		}
	}
}

func TestSampleReproducible(t *testing.T) {
	a := Sample(10, 500, geom.V(10, 10), geom.V(20, 20), rand.New(rand.NewSource(42)))
	b := Sample(10, 500, geom.V(10, 10), geom.V(20, 20), rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSampleEmpty(t *testing.T) {
	if got := Sample(0, 100, geom.V(1, 1), geom.V(2, 2), rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Errorf("Sample(0) = %v, want empty", got)
	}
}

func TestSampleFixedSize(t *testing.T) {
	got := Sample(3, 100, geom.V(40, 60), geom.V(40, 60), rand.New(rand.NewSource(7)))
	for _, p := range got {
		if p.Size != geom.V(40, 60) {
			t.Errorf("Size = %v, want (40,60)", p.Size)
		}
	}
}
