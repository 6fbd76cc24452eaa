package geom

import (
	"math"
	"testing"
)

func TestExitPointInsetBox(t *testing.T) {
	room := Box{Center: V(0, 0), Half: V(50, 50)}.Inflate(-10)

	got, ok := ExitPoint(V(0, 0), V(1000, 0), room)
	if !ok {
		t.Fatal("ExitPoint() clip failed, want success")
	}
	if math.Abs(got.X-40) > 1e-9 || math.Abs(got.Y) > 1e-9 {
		t.Errorf("ExitPoint() = %v, want (40,0)", got)
	}
}

func TestExitPointDegenerateRay(t *testing.T) {
	room := Box{Center: V(5, 5), Half: V(10, 10)}
	start := V(5, 5)

	got, ok := ExitPoint(start, start, room)
	if !ok {
		t.Fatal("ExitPoint() zero-length ray inside box should clip")
	}
	if got != start {
		t.Errorf("ExitPoint() = %v, want %v", got, start)
	}
}

func TestExitPointOutsideFallsBack(t *testing.T) {
	room := Box{Center: V(0, 0), Half: V(10, 10)}
	start := V(100, 100)

	got, ok := ExitPoint(start, V(200, 100), room)
	if ok {
		t.Error("ExitPoint() from outside the box should fail")
	}
	if got != start {
		t.Errorf("ExitPoint() fallback = %v, want %v", got, start)
	}
}

func TestSegmentIntersectsBox(t *testing.T) {
	box := Box{Center: V(0, 0), Half: V(10, 10)}

	tests := []struct {
		name   string
		p0, p1 Vec2
		want   bool
	}{
		{"crosses", V(-20, 0), V(20, 0), true},
		{"inside", V(-1, -1), V(1, 1), true},
		{"grazes edge", V(-20, 10), V(20, 10), true},
		{"misses above", V(-20, 11), V(20, 11), false},
		{"stops short", V(-30, 0), V(-11, 0), false},
		{"diagonal miss", V(15, -30), V(30, -15), false},
	}

	for _, tt := range tests {
		if got := SegmentIntersectsBox(tt.p0, tt.p1, box); got != tt.want {
			t.Errorf("%s: SegmentIntersectsBox(%v, %v) = %v, want %v", tt.name, tt.p0, tt.p1, got, tt.want)
		}
	}
}

func TestClipSegmentParameters(t *testing.T) {
	box := Box{Center: V(0, 0), Half: V(10, 10)}

	u0, u1, ok := ClipSegment(V(-20, 0), V(20, 0), box)
	if !ok {
		t.Fatal("ClipSegment() failed, want success")
	}
	if math.Abs(u0-0.25) > 1e-12 || math.Abs(u1-0.75) > 1e-12 {
		t.Errorf("ClipSegment() = (%v, %v), want (0.25, 0.75)", u0, u1)
	}
}

func TestBoxInflateNeverNegative(t *testing.T) {
	b := Box{Center: V(1, 2), Half: V(3, 8)}.Inflate(-5)
	if b.Half.X != 0 || b.Half.Y != 3 {
		t.Errorf("Inflate(-5).Half = %v, want (0,3)", b.Half)
	}
}

func TestSafeNormal(t *testing.T) {
	if got := (Vec2{}).SafeNormal(); got != (Vec2{}) {
		t.Errorf("SafeNormal(zero) = %v, want zero", got)
	}
	got := V(3, 4).SafeNormal()
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Errorf("SafeNormal(3,4) = %v, want (0.6,0.8)", got)
	}
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]Vec2{V(1, 5), V(-2, 3), V(4, -1)})
	if min != V(-2, -1) || max != V(4, 5) {
		t.Errorf("Bounds() = %v, %v, want (-2,-1), (4,5)", min, max)
	}
}
