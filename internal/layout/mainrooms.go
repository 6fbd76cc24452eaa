package layout

import (
	"sort"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// TooClose reports whether a and b, each grown by gap on every side,
// overlap.
func TooClose(a, b geom.Box, gap float64) bool {
	d := a.Center.Sub(b.Center).Abs()
	return d.X < a.Half.X+b.Half.X+2*gap && d.Y < a.Half.Y+b.Half.Y+2*gap
}

// SelectMain picks up to targetCount rooms, largest first, skipping any room
// too close to one already picked. Equal areas keep their input order.
func SelectMain(rooms []RoomRef, targetCount int, minGap float64) []RoomRef {
	if targetCount <= 0 || len(rooms) == 0 {
		return nil
	}
	sorted := append([]RoomRef(nil), rooms...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Area() > sorted[j].Area()
	})

	picked := make([]RoomRef, 0, targetCount)
	for _, c := range sorted {
		ok := true
		for _, p := range picked {
			if TooClose(c.Box(), p.Box(), minGap) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		picked = append(picked, c)
		if len(picked) >= targetCount {
			break
		}
	}
	return picked
}

// RelaxMainRooms pushes too-close main rooms apart by step along their
// center line, moving the live rooms directly. It stops after a pass with no
// moves or after passes passes, and returns the number of passes run.
func RelaxMainRooms(w Positioner, mains []world.Handle, minGap, step float64, passes int) int {
	run := 0
	for run < passes {
		run++
		moved := false
		for i := range mains {
			for j := i + 1; j < len(mains); j++ {
				a, okA := liveBounds(w, mains[i])
				b, okB := liveBounds(w, mains[j])
				if !okA || !okB || !TooClose(a, b, minGap) {
					continue
				}
				push := b.Center.Sub(a.Center).SafeNormal().Scale(step)
				w.SetRoomPosition(mains[i], a.Center.Sub(push))
				w.SetRoomPosition(mains[j], b.Center.Add(push))
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return run
}

func liveBounds(w RoomReader, h world.Handle) (geom.Box, bool) {
	if !w.IsValid(h) {
		return geom.Box{}, false
	}
	return w.RoomBounds(h)
}
