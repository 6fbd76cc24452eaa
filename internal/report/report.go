// Package report prints a finished layout as colored text.
package report

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/layout"
)

var (
	styleTitle  = color.Style{color.FgCyan, color.OpBold}
	styleMain   = color.Style{color.FgYellow}
	styleSubtle = color.Style{color.FgGray}
	styleWarn   = color.Style{color.FgRed, color.OpBold}
)

// Write prints l to w.
func Write(w io.Writer, l layout.Layout) error {
	p := &printer{w: w}
	s := l.Stats

	p.line(styleTitle.Sprintf("layout seed %d (%s)", l.Seed, l.Phase))
	p.line(fmt.Sprintf("rooms %d  main %d  spawned %d  culled %d  pruned %d",
		len(l.Rooms), l.MainRoomCount(), s.Spawned, s.Culled, s.Pruned))
	if s.Rejected > 0 {
		p.line(styleWarn.Sprintf("%d spawns rejected by the host", s.Rejected))
	}
	if s.ResidualOverlaps > 0 {
		p.line(styleWarn.Sprintf("%d overlapping pairs left after relaxing", s.ResidualOverlaps))
	}

	for i, pt := range l.Points {
		p.line(styleMain.Sprintf("  #%d  %s", i, formatVec(pt)))
	}

	segments := 0
	for _, c := range l.Corridors {
		segments += len(c.Segments)
	}
	p.line(fmt.Sprintf("mst %d edges  corridors %d  segments %d",
		len(l.MST), len(l.Corridors), segments))
	for _, e := range l.MST {
		if e.A >= len(l.Points) || e.B >= len(l.Points) {
			continue
		}
		length := geom.Dist(l.Points[e.A], l.Points[e.B])
		p.line(styleSubtle.Sprintf("  #%d - #%d  %.0f", e.A, e.B, length))
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func formatVec(v geom.Vec2) string {
	return fmt.Sprintf("(%.0f, %.0f)", v.X, v.Y)
}
