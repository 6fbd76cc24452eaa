package layout

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Prune keeps every main room and every other room whose box, grown by
// keepDistance, is touched by a corridor segment. It returns the kept refs in
// input order and the handles of the rest.
func Prune(rooms []RoomRef, mains mapset.Set[world.Handle], segments []Segment, keepDistance float64) ([]RoomRef, []world.Handle) {
	kept := make([]RoomRef, 0, len(rooms))
	var removed []world.Handle
	for _, r := range rooms {
		if mains.Has(r.Handle) || nearCorridor(r, segments, keepDistance) {
			kept = append(kept, r)
			continue
		}
		removed = append(removed, r.Handle)
	}
	return kept, removed
}

func nearCorridor(r RoomRef, segments []Segment, keepDistance float64) bool {
	box := r.Box().Inflate(keepDistance)
	for _, s := range segments {
		if geom.SegmentIntersectsBox(s.A, s.B, box) {
			return true
		}
	}
	return false
}
