package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/layout"
)

func TestWrite(t *testing.T) {
	l := layout.Layout{
		Seed:   42,
		Phase:  "pruned",
		Rooms:  []layout.RoomInfo{{Main: true}, {Main: true}, {}},
		Points: []geom.Vec2{geom.V(0, 0), geom.V(300, 400)},
		MST:    []delaunay.Edge{delaunay.NewEdge(0, 1)},
		Stats:  layout.Stats{Spawned: 3, Rejected: 1},
	}

	var buf bytes.Buffer
	if err := Write(&buf, l); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"layout seed 42 (pruned)",
		"rooms 3  main 2",
		"1 spawns rejected",
		"#1  (300, 400)",
		"#0 - #1  500",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "overlapping") {
		t.Errorf("output warns about overlaps that are not there:\n%s", out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteReportsError(t *testing.T) {
	if err := Write(failWriter{}, layout.Layout{}); err == nil {
		t.Error("Write to a failing writer returned nil")
	}
}
