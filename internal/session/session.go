// Package session runs one complete layout generation without a host
// engine: an in-memory world, a manual clock for the deferred cull and a
// generator bound to both.
package session

import (
	"context"
	"fmt"

	"github.com/samdwyer/dungeonlayout/internal/layout"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Session owns a world and the generator working in it.
type Session struct {
	world *world.Memory
	clock *world.ManualScheduler
	gen   *layout.Generator
}

// New creates a session for cfg. Generator options such as a sink or
// observer are passed through.
func New(cfg layout.Config, opts ...layout.Option) *Session {
	clock := world.NewManualScheduler()
	w := world.NewMemory(world.WithScheduler(clock))
	return &Session{
		world: w,
		clock: clock,
		gen:   layout.NewGenerator(w, cfg, opts...),
	}
}

// Run generates a layout, advancing the virtual clock past the culling
// delay so the deferred pass runs before it returns.
func (s *Session) Run(ctx context.Context) (layout.Layout, error) {
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, fmt.Errorf("run session: %w", err)
	}

	s.gen.Begin(ctx)
	if s.gen.CullPending() {
		if err := ctx.Err(); err != nil {
			s.gen.End()
			return layout.Layout{}, fmt.Errorf("run session: %w", err)
		}
		s.clock.Advance(s.gen.Config().CullingDelay())
	}
	return s.gen.Layout(), nil
}

// Generator returns the session generator.
func (s *Session) Generator() *layout.Generator {
	return s.gen
}

// World returns the session world.
func (s *Session) World() *world.Memory {
	return s.world
}

// Close discards the layout and any pending work.
func (s *Session) Close() {
	s.gen.End()
}
