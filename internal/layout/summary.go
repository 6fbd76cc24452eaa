package layout

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// RoomInfo describes one live room in a Layout.
type RoomInfo struct {
	ID     string    `json:"id"`
	Center geom.Vec2 `json:"center"`
	Size   geom.Vec2 `json:"size"`
	Main   bool      `json:"main"`
}

// Layout is a serializable summary of a finished generation.
type Layout struct {
	Seed        int64               `json:"seed"`
	Phase       string              `json:"phase"`
	Rooms       []RoomInfo          `json:"rooms"`
	Points      []geom.Vec2         `json:"points"`
	MainCenters []geom.Vec3         `json:"mainCenters"`
	Triangles   []delaunay.Triangle `json:"triangles"`
	MST         []delaunay.Edge     `json:"mst"`
	Corridors   []Corridor          `json:"corridors"`
	Transforms  []Transform         `json:"transforms"`
	Stats       Stats               `json:"stats"`
}

// MainRoomCount returns how many rooms are flagged main.
func (l Layout) MainRoomCount() int {
	n := 0
	for _, r := range l.Rooms {
		if r.Main {
			n++
		}
	}
	return n
}

// Layout captures the current state of the generator.
func (g *Generator) Layout() Layout {
	mains := mapset.New[world.Handle]()
	for _, h := range g.mains {
		mains.Put(h)
	}
	refs := BuildRoomRefs(g.world, g.rooms)
	rooms := make([]RoomInfo, 0, len(refs))
	for _, r := range refs {
		rooms = append(rooms, RoomInfo{
			ID:     r.Handle.String(),
			Center: r.Center,
			Size:   r.Half.Scale(2),
			Main:   mains.Has(r.Handle),
		})
	}
	return Layout{
		Seed:        g.Seed(),
		Phase:       g.phase.String(),
		Rooms:       rooms,
		Points:      g.Points(),
		MainCenters: g.MainCenters(),
		Triangles:   g.Triangles(),
		MST:         g.MST(),
		Corridors:   g.Corridors(),
		Transforms:  g.Transforms(),
		Stats:       g.stats,
	}
}
