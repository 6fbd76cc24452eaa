package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/layout"
	"github.com/samdwyer/dungeonlayout/internal/presets"
)

// Glyph is a kind of cell drawn by the renderer.
type Glyph int

const (
	GlyphEmpty Glyph = iota
	GlyphFloor
	GlyphWall
	GlyphMainWall
	GlyphCorridor
	GlyphTree
)

// Rune returns the character drawn for the glyph.
func (g Glyph) Rune() rune {
	switch g {
	case GlyphFloor:
		return '.'
	case GlyphWall:
		return '#'
	case GlyphMainWall:
		return '█'
	case GlyphCorridor:
		return '+'
	case GlyphTree:
		return '·'
	default:
		return ' '
	}
}

// Renderer draws layouts to a screen.
type Renderer struct {
	screen *Screen
	colors presets.Colors

	// ShowTree overlays the spanning tree edges between main room centers.
	ShowTree bool
}

// NewRenderer creates a renderer using the given palette.
func NewRenderer(screen *Screen, colors presets.Colors) *Renderer {
	return &Renderer{screen: screen, colors: colors}
}

// SetColors replaces the palette.
func (r *Renderer) SetColors(colors presets.Colors) {
	r.colors = colors
}

// Render draws l scaled to the screen, keeping the last row for status.
func (r *Renderer) Render(l layout.Layout, status string) {
	width, height := r.screen.Size()
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.colors.Background))
	if height < 2 || width < 1 {
		r.screen.Show()
		return
	}
	vp := FitViewport(LayoutBounds(l), width, height-1)

	for _, room := range l.Rooms {
		if !room.Main {
			r.drawRoom(vp, room)
		}
	}
	for _, room := range l.Rooms {
		if room.Main {
			r.drawRoom(vp, room)
		}
	}
	if r.ShowTree {
		r.drawTree(vp, l.Points, l.MST)
	}
	for _, c := range l.Corridors {
		for _, s := range c.Segments {
			r.drawSegment(vp, s.A, s.B, GlyphCorridor, r.style(r.colors.Corridor))
		}
	}
	for i, p := range l.Points {
		r.drawLabel(vp, p, strconv.Itoa(i))
	}
	r.RenderMessage(status, height-1)
	r.screen.Show()
}

func (r *Renderer) drawRoom(vp Viewport, room layout.RoomInfo) {
	b := geom.BoxFromSize(room.Center, room.Size)
	x0, y1 := vp.Project(b.Min())
	x1, y0 := vp.Project(b.Max())
	wall, color := GlyphWall, r.colors.Room
	if room.Main {
		wall, color = GlyphMainWall, r.colors.MainRoom
	}
	style := r.style(color)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !vp.InView(x, y) {
				continue
			}
			g := GlyphFloor
			if x == x0 || x == x1 || y == y0 || y == y1 {
				g = wall
			}
			r.screen.SetContent(x, y, g.Rune(), style)
		}
	}
}

func (r *Renderer) drawTree(vp Viewport, points []geom.Vec2, mst []delaunay.Edge) {
	style := r.style(r.colors.Label).Dim(true)
	for _, e := range mst {
		if e.A >= len(points) || e.B >= len(points) {
			continue
		}
		r.drawSegment(vp, points[e.A], points[e.B], GlyphTree, style)
	}
}

func (r *Renderer) drawSegment(vp Viewport, a, b geom.Vec2, g Glyph, style tcell.Style) {
	x0, y0 := vp.Project(a)
	x1, y1 := vp.Project(b)
	Line(x0, y0, x1, y1, func(x, y int) {
		if vp.InView(x, y) {
			r.screen.SetContent(x, y, g.Rune(), style)
		}
	})
}

func (r *Renderer) drawLabel(vp Viewport, p geom.Vec2, text string) {
	x, y := vp.Project(p)
	if vp.InView(x, y) {
		r.screen.DrawText(x, y, text, r.style(r.colors.Label).Bold(true))
	}
}

func (r *Renderer) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(r.colors.Background)
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, r.style(r.colors.Label))
}
