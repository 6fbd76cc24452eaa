package layout

import (
	"math"
	"math/rand"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

// Placement is a sampled room position and footprint.
type Placement struct {
	Position geom.Vec2
	Size     geom.Vec2
}

// RandomPointInDisk draws a point with uniform areal density inside a disk of
// the given radius centered at the origin.
func RandomPointInDisk(radius float64, rng *rand.Rand) geom.Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	r := radius * math.Sqrt(rng.Float64())
	return geom.V(r*math.Cos(angle), r*math.Sin(angle))
}

// Sample draws count placements around the origin. Each size component is
// uniform in its [min, max] range.
func Sample(count int, radius float64, sizeMin, sizeMax geom.Vec2, rng *rand.Rand) []Placement {
	if count <= 0 {
		return nil
	}
	out := make([]Placement, 0, count)
	for i := 0; i < count; i++ {
		p := RandomPointInDisk(radius, rng)
		sx := uniform(sizeMin.X, sizeMax.X, rng)
		sy := uniform(sizeMin.Y, sizeMax.Y, rng)
		out = append(out, Placement{Position: p, Size: geom.V(sx, sy)})
	}
	return out
}

func uniform(lo, hi float64, rng *rand.Rand) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Float64()*(hi-lo)
}
