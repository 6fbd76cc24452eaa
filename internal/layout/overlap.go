package layout

import (
	"math"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Overlaps reports whether a and b intersect on both axes once their extents
// are shrunk by padding. A negative padding demands clearance.
func Overlaps(a, b RoomRef, padding float64) bool {
	d := a.Center.Sub(b.Center).Abs()
	return d.X < a.Half.X+b.Half.X-padding && d.Y < a.Half.Y+b.Half.Y-padding
}

// MTV returns the push that separates b from a along the axis of least
// penetration. Ties choose X. The sign follows the center delta from a to b,
// with a zero delta treated as positive.
func MTV(a, b RoomRef) geom.Vec2 {
	d := b.Center.Sub(a.Center)
	ox := a.Half.X + b.Half.X - math.Abs(d.X)
	oy := a.Half.Y + b.Half.Y - math.Abs(d.Y)
	if ox <= oy {
		return geom.V(ox*sign(d.X), 0)
	}
	return geom.V(0, oy*sign(d.Y))
}

// Penetration is the depth of the MTV.
func Penetration(a, b RoomRef) float64 {
	m := MTV(a, b)
	return math.Max(math.Abs(m.X), math.Abs(m.Y))
}

func sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// RelaxOnce runs one Gauss-Seidel pass over all pairs, pushing each
// overlapping pair apart by half of its clamped MTV. It returns the number of
// overlapping pairs met during the pass.
func RelaxOnce(refs []RoomRef, padding, clamp float64) int {
	overlaps := 0
	for i := range refs {
		for j := i + 1; j < len(refs); j++ {
			if !Overlaps(refs[i], refs[j], padding) {
				continue
			}
			overlaps++
			m := MTV(refs[i], refs[j])
			m.X = geom.Clamp(m.X, -clamp, clamp)
			m.Y = geom.Clamp(m.Y, -clamp, clamp)
			half := m.Scale(0.5)
			refs[i].Center = refs[i].Center.Sub(half)
			refs[j].Center = refs[j].Center.Add(half)
		}
	}
	return overlaps
}

// Relax repeats RelaxOnce up to maxIterations times, stopping after the first
// pass that finds no overlaps. It returns the passes run and the overlap count
// reported by the last one.
func Relax(refs []RoomRef, padding, clamp float64, maxIterations int) (passes, overlaps int) {
	for passes < maxIterations {
		overlaps = RelaxOnce(refs, padding, clamp)
		passes++
		if overlaps == 0 {
			break
		}
	}
	return passes, overlaps
}

// CountOverlaps returns the number of overlapping pairs without moving
// anything.
func CountOverlaps(refs []RoomRef, padding float64) int {
	n := 0
	for i := range refs {
		for j := i + 1; j < len(refs); j++ {
			if Overlaps(refs[i], refs[j], padding) {
				n++
			}
		}
	}
	return n
}

// CullResidualOverlaps removes up to maxCulls rooms. Each round finds the
// first overlapping pair whose penetration exceeds threshold and drops its
// smaller room (the earlier one on equal area), then rescans. It returns the
// surviving refs and the handles removed, in removal order.
func CullResidualOverlaps(refs []RoomRef, padding, threshold float64, maxCulls int) ([]RoomRef, []world.Handle) {
	kept := append([]RoomRef(nil), refs...)
	var culled []world.Handle
	for len(culled) < maxCulls {
		i, j, found := firstDeepOverlap(kept, padding, threshold)
		if !found {
			break
		}
		kill := j
		if kept[i].Area() <= kept[j].Area() {
			kill = i
		}
		culled = append(culled, kept[kill].Handle)
		kept = append(kept[:kill], kept[kill+1:]...)
	}
	return kept, culled
}

func firstDeepOverlap(refs []RoomRef, padding, threshold float64) (int, int, bool) {
	for i := range refs {
		for j := i + 1; j < len(refs); j++ {
			if Overlaps(refs[i], refs[j], padding) && Penetration(refs[i], refs[j]) > threshold {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
