package layout

import (
	"math"

	"github.com/samdwyer/dungeonlayout/internal/geom"
)

// Transform places one corridor instance: a unit box stretched along the
// segment and rotated about Z.
type Transform struct {
	Position   geom.Vec3 `json:"position"`
	YawDegrees float64   `json:"yawDegrees"`
	Scale      geom.Vec3 `json:"scale"`
}

// TransformOptions sizes corridor instances.
type TransformOptions struct {
	Width  float64
	Height float64
	// BaseZ is the floor height of corridors.
	BaseZ float64
	// UnitBase is the edge length of the instanced mesh.
	UnitBase float64
}

// CorridorTransforms returns one transform per segment, skipping segments
// too short to orient.
func CorridorTransforms(segments []Segment, opts TransformOptions) []Transform {
	base := opts.UnitBase
	if base <= 0 {
		base = 100
	}
	out := make([]Transform, 0, len(segments))
	for _, s := range segments {
		ab := s.B.Sub(s.A)
		length := ab.Len()
		if length <= geom.KindaSmallNumber {
			continue
		}
		mid := geom.Lerp(s.A, s.B, 0.5)
		out = append(out, Transform{
			Position:   geom.Vec3{X: mid.X, Y: mid.Y, Z: opts.BaseZ + opts.Height/2},
			YawDegrees: math.Atan2(ab.Y, ab.X) * 180 / math.Pi,
			Scale:      geom.Vec3{X: length / base, Y: opts.Width / base, Z: opts.Height / base},
		})
	}
	return out
}
