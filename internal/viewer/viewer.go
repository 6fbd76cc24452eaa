package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonlayout/internal/layout"
	"github.com/samdwyer/dungeonlayout/internal/presets"
	"github.com/samdwyer/dungeonlayout/internal/telemetry"
	"github.com/samdwyer/dungeonlayout/internal/ui"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

const helpText = "r new seed  e exact corridors  t tree  q quit"

// contextDone is posted when the Run context is cancelled.
type contextDone struct{}

// Viewer shows a generator's layout and regenerates it on request.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	sched    *EventScheduler
	world    *world.Memory
	gen      *layout.Generator
	tracer   trace.Tracer
	running  bool
}

// New creates a viewer drawing to screen. The deferred cull runs on the
// viewer's event loop.
func New(screen *ui.Screen, cfg layout.Config, colors presets.Colors) *Viewer {
	tracer := telemetry.Tracer("viewer")
	sched := NewEventScheduler(screen)
	w := world.NewMemory(world.WithScheduler(sched))
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, colors),
		sched:    sched,
		world:    w,
		gen:      layout.NewGenerator(w, cfg, layout.WithTracer(tracer)),
		tracer:   tracer,
	}
}

// Generator returns the generator driven by the viewer.
func (v *Viewer) Generator() *layout.Generator {
	return v.gen
}

// State reports what the viewer is waiting on.
func (v *Viewer) State() State {
	switch {
	case v.gen.CullPending():
		return StateCulling
	case v.gen.Phase() == layout.PhaseIdle:
		return StateIdle
	default:
		return StateReady
	}
}

// Run generates the configured layout and handles input until the user quits
// or ctx is cancelled. The screen is closed on return.
func (v *Viewer) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(contextDone{}))
		case <-done:
		}
	}()

	v.running = true
	v.generate(ctx, v.gen.Config().Seed)

	for v.running {
		v.renderer.Render(v.gen.Layout(), v.status())

		ev := v.screen.PollEvent()
		if ev == nil {
			break
		}
		v.handleEvent(ctx, ev)
	}

	v.gen.End()
	v.sched.Stop()
	v.screen.Close()
	return ctx.Err()
}

func (v *Viewer) generate(ctx context.Context, seed int64) {
	ctx, span := v.tracer.Start(ctx, "viewer.generate")
	defer span.End()

	cfg := v.gen.Config()
	cfg.Seed = layout.ResolveSeed(seed)
	v.gen.SetConfig(cfg)
	v.gen.Begin(ctx)

	span.SetAttributes(
		attribute.Int64("layout.seed", cfg.Seed),
		attribute.Bool("layout.cull_pending", v.gen.CullPending()),
	)
}

func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(contextDone); ok {
			v.running = false
			return
		}
		v.sched.Dispatch(ev)
	}
}

func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.generate(ctx, 0)
		case 'e', 'E':
			v.toggleExact(ctx)
		case 't', 'T':
			v.renderer.ShowTree = !v.renderer.ShowTree
		}
	}
}

// toggleExact flips straight corridor routing. A finished layout is
// rerouted in place; a pending cull picks up the new setting when it runs.
func (v *Viewer) toggleExact(ctx context.Context) {
	cfg := v.gen.Config()
	cfg.CorridorFollowMSTExact = !cfg.CorridorFollowMSTExact
	v.gen.SetConfig(cfg)
	if v.State() == StateReady {
		v.gen.SelectMainRooms(ctx)
	}
}

func (v *Viewer) status() string {
	cfg := v.gen.Config()
	s := v.gen.Stats()
	return fmt.Sprintf("seed %d  %s  rooms %d  culled %d  mains %d  corridors %d  exact %t  |  %s",
		cfg.Seed, v.State(), v.world.Len(), s.Culled, len(v.gen.MainRooms()), len(v.gen.Corridors()),
		cfg.CorridorFollowMSTExact, helpText)
}
