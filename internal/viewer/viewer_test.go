package viewer

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/layout"
	"github.com/samdwyer/dungeonlayout/internal/presets"
	"github.com/samdwyer/dungeonlayout/internal/ui"
)

type chanPoster chan tcell.Event

func (c chanPoster) PostEvent(ev tcell.Event) error {
	c <- ev
	return nil
}

func TestEventSchedulerDispatch(t *testing.T) {
	events := make(chanPoster, 1)
	s := NewEventScheduler(events)

	ran := 0
	s.ScheduleOnce(time.Millisecond, func() { ran++ })

	var ev tcell.Event
	select {
	case ev = <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("timer never posted")
	}
	interrupt, ok := ev.(*tcell.EventInterrupt)
	if !ok {
		t.Fatalf("posted %T, want *tcell.EventInterrupt", ev)
	}
	if !s.Dispatch(interrupt) {
		t.Fatal("Dispatch did not recognize its own event")
	}
	if ran != 1 || s.Pending() != 0 {
		t.Errorf("ran = %d, Pending() = %d, want 1 and 0", ran, s.Pending())
	}

	s.Dispatch(interrupt)
	if ran != 1 {
		t.Errorf("callback ran %d times, want once", ran)
	}
}

func TestEventSchedulerCancel(t *testing.T) {
	events := make(chanPoster, 1)
	s := NewEventScheduler(events)

	ran := false
	tok := s.ScheduleOnce(time.Hour, func() { ran = true })
	s.CancelScheduled(tok)
	s.CancelScheduled(tok)

	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after cancel, want 0", s.Pending())
	}
	s.Dispatch(tcell.NewEventInterrupt(timerFired{token: tok}))
	if ran {
		t.Error("cancelled callback ran")
	}
	if s.Dispatch(tcell.NewEventInterrupt("other")) {
		t.Error("Dispatch claimed a foreign interrupt")
	}
}

func testConfig() layout.Config {
	cfg := layout.DefaultConfig()
	cfg.Seed = 99
	cfg.RoomCount = 10
	cfg.RoomSizeMin = geom.V(100, 100)
	cfg.RoomSizeMax = geom.V(200, 200)
	cfg.MainCount = 3
	cfg.MinMainGap = 20
	cfg.EnableCulling = false
	return cfg
}

func newSimViewer(t *testing.T, cfg layout.Config) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom: %v", err)
	}
	sim.SetSize(80, 25)
	return New(screen, cfg, presets.Colors{}), sim
}

func TestViewerToggleExactAndQuit(t *testing.T) {
	v, sim := newSimViewer(t, testConfig())
	sim.InjectKey(tcell.KeyRune, 'e', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 't', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !v.Generator().Config().CorridorFollowMSTExact {
		t.Error("exact corridor routing not toggled on")
	}
	if v.world.Len() != 0 {
		t.Errorf("world holds %d rooms after quit, want 0", v.world.Len())
	}
	if v.State() != StateIdle {
		t.Errorf("State() = %v after quit, want %v", v.State(), StateIdle)
	}
}

func TestViewerQuitCancelsPendingCull(t *testing.T) {
	cfg := testConfig()
	cfg.EnableCulling = true
	cfg.CullingDelaySeconds = 3600
	v, sim := newSimViewer(t, cfg)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v.sched.Pending() != 0 {
		t.Errorf("Pending() = %d after quit, want 0", v.sched.Pending())
	}
}

func TestViewerStopsOnContextCancel(t *testing.T) {
	v, _ := newSimViewer(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := v.Run(ctx); err != context.Canceled {
		t.Errorf("Run() = %v, want %v", err, context.Canceled)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateCulling, "culling"},
		{StateReady, "ready"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
