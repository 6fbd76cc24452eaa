package layout

import (
	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Phase identifies a completed pipeline stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSampled
	PhaseRelaxed
	PhaseCulled
	PhaseMainSelected
	PhaseTriangulated
	PhaseSpanned
	PhaseRouted
	PhasePruned
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSampled:
		return "sampled"
	case PhaseRelaxed:
		return "relaxed"
	case PhaseCulled:
		return "culled"
	case PhaseMainSelected:
		return "main_selected"
	case PhaseTriangulated:
		return "triangulated"
	case PhaseSpanned:
		return "spanned"
	case PhaseRouted:
		return "routed"
	case PhasePruned:
		return "pruned"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the generator state after a phase.
type Snapshot struct {
	Phase     Phase
	Rooms     []RoomRef
	Mains     []world.Handle
	Points    []geom.Vec2
	Triangles []delaunay.Triangle
	MST       []delaunay.Edge
	Corridors []Corridor
}

// Observer is notified after each phase. It receives copies and cannot
// influence the result.
type Observer interface {
	Observe(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s Snapshot)

// Observe implements Observer.
func (f ObserverFunc) Observe(s Snapshot) {
	f(s)
}
