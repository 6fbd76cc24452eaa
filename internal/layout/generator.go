package layout

import (
	"context"
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonlayout/internal/delaunay"
	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/graph"
	"github.com/samdwyer/dungeonlayout/internal/telemetry"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Stats counts what happened during the last generation.
type Stats struct {
	Spawned          int `json:"spawned"`
	Rejected         int `json:"rejected"`
	RelaxPasses      int `json:"relaxPasses"`
	ResidualOverlaps int `json:"residualOverlaps"`
	Culled           int `json:"culled"`
	MainRelaxPasses  int `json:"mainRelaxPasses"`
	Pruned           int `json:"pruned"`
}

// Option configures a Generator.
type Option func(*Generator)

// WithSink sets the receiver of corridor transforms.
func WithSink(s CorridorSink) Option {
	return func(g *Generator) {
		g.sink = s
	}
}

// WithObserver attaches a phase observer.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// WithTracer overrides the tracer used for phase spans.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) {
		g.tracer = t
	}
}

// Generator runs the layout pipeline against a World. Begin samples and
// relaxes rooms, then either schedules FinalCull or goes straight to
// SelectMainRooms. Everything runs on the caller's goroutine, including the
// scheduled callback.
type Generator struct {
	world    World
	cfg      Config
	sink     CorridorSink
	observer Observer
	tracer   trace.Tracer

	culledCounter  metric.Int64Counter
	prunedCounter  metric.Int64Counter
	generatedCount metric.Int64Counter

	// generation increments on Begin and End so a stale scheduled callback
	// can tell it no longer applies.
	generation uint64
	cullToken  world.TimerToken

	phase      Phase
	rooms      []world.Handle
	mains      []world.Handle
	points     []geom.Vec2
	triangles  []delaunay.Triangle
	edges      []delaunay.Edge
	mst        []delaunay.Edge
	corridors  []Corridor
	transforms []Transform
	stats      Stats
}

// NewGenerator returns a generator bound to w.
func NewGenerator(w World, cfg Config, opts ...Option) *Generator {
	m := telemetry.Meter("layout")
	g := &Generator{
		world:          w,
		cfg:            cfg,
		tracer:         telemetry.Tracer("layout"),
		culledCounter:  telemetry.Counter(m, "layout.rooms_culled", "Rooms removed by residual overlap culling"),
		prunedCounter:  telemetry.Counter(m, "layout.rooms_pruned", "Rooms removed for lying away from corridors"),
		generatedCount: telemetry.Counter(m, "layout.generations", "Completed layout generations"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the active configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// SetConfig replaces the configuration. It applies from the next phase run.
func (g *Generator) SetConfig(cfg Config) {
	g.cfg = cfg
}

// Seed returns the seed used for sampling.
func (g *Generator) Seed() int64 {
	if g.cfg.Seed == 0 {
		return 1
	}
	return g.cfg.Seed
}

// Phase returns the last completed phase.
func (g *Generator) Phase() Phase {
	return g.phase
}

// CullPending reports whether a final cull is scheduled but has not run.
func (g *Generator) CullPending() bool {
	return g.cullToken != 0
}

// Begin discards any previous layout, spawns and relaxes a fresh set of
// rooms, and continues the pipeline either now or after the culling delay.
func (g *Generator) Begin(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "layout.begin")
	defer span.End()

	g.reset()
	g.generation++

	rng := rand.New(rand.NewSource(g.Seed()))
	g.spawn(rng)
	g.notify(PhaseSampled)

	g.relax(ctx)

	span.SetAttributes(
		attribute.Int64("layout.seed", g.Seed()),
		attribute.Int("layout.rooms_spawned", g.stats.Spawned),
		attribute.Int("layout.rooms_rejected", g.stats.Rejected),
		attribute.Bool("layout.culling", g.cfg.EnableCulling),
	)

	if !g.cfg.EnableCulling {
		g.SelectMainRooms(ctx)
		return
	}
	gen := g.generation
	g.cullToken = g.world.ScheduleOnce(g.cfg.CullingDelay(), func() {
		if gen != g.generation {
			return
		}
		g.cullToken = 0
		g.FinalCull(ctx)
	})
}

func (g *Generator) spawn(rng *rand.Rand) {
	placements := Sample(g.cfg.RoomCount, g.cfg.SpawnRadius, g.cfg.RoomSizeMin, g.cfg.RoomSizeMax, rng)
	g.rooms = make([]world.Handle, 0, len(placements))
	for _, p := range placements {
		h := g.world.SpawnRoom(g.cfg.Origin.Add(p.Position), p.Size)
		if h.IsNil() {
			g.stats.Rejected++
			continue
		}
		g.rooms = append(g.rooms, h)
	}
	g.stats.Spawned = len(g.rooms)
}

func (g *Generator) relax(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "layout.relax")
	defer span.End()

	refs := BuildRoomRefs(g.world, g.rooms)
	passes, overlaps := Relax(refs, g.cfg.ContactPadding, g.cfg.NudgeClamp, g.cfg.MaxRelaxIterations)
	ApplyRefs(g.world, refs)
	g.stats.RelaxPasses = passes
	g.stats.ResidualOverlaps = overlaps

	span.SetAttributes(
		attribute.Int("layout.relax_passes", passes),
		attribute.Int("layout.residual_overlaps", overlaps),
	)
	g.notify(PhaseRelaxed)
}

// FinalCull runs a short extra relaxation, removes rooms still deeply
// overlapping, then selects main rooms. It is the scheduled continuation of
// Begin but may be called directly.
func (g *Generator) FinalCull(ctx context.Context) {
	cullCtx, span := g.tracer.Start(ctx, "layout.cull")

	refs := BuildRoomRefs(g.world, g.rooms)
	Relax(refs, g.cfg.ContactPadding, g.cfg.NudgeClamp, g.cfg.CullRelaxIterations)

	var culled []world.Handle
	if g.cfg.EnableCulling && g.cfg.MaxCulls > 0 {
		refs, culled = CullResidualOverlaps(refs, g.cfg.ContactPadding, g.cfg.CullPenetrationThreshold, g.cfg.MaxCulls)
	}
	for _, h := range culled {
		g.world.DestroyRoom(h)
	}
	ApplyRefs(g.world, refs)
	g.rooms = liveHandles(g.world, g.rooms)
	g.stats.Culled += len(culled)
	g.culledCounter.Add(cullCtx, int64(len(culled)))

	span.SetAttributes(attribute.Int("layout.rooms_culled", len(culled)))
	span.End()
	g.notify(PhaseCulled)

	g.SelectMainRooms(ctx)
}

// SelectMainRooms picks and spaces the main rooms, then triangulates their
// centers, extracts the spanning tree and, when enabled, routes corridors,
// prunes rooms off the path and emits corridor transforms. It can be rerun
// after a configuration change.
func (g *Generator) SelectMainRooms(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "layout.select_main")

	g.rooms = liveHandles(g.world, g.rooms)
	g.corridors = nil
	g.transforms = nil
	for _, h := range g.rooms {
		g.world.SetRoomMainFlag(h, false)
	}

	picked := SelectMain(BuildRoomRefs(g.world, g.rooms), g.cfg.MainCount, g.cfg.MinMainGap)
	mains := make([]world.Handle, 0, len(picked))
	for _, r := range picked {
		mains = append(mains, r.Handle)
	}
	g.stats.MainRelaxPasses = RelaxMainRooms(g.world, mains, g.cfg.MinMainGap, g.cfg.MainPushStep, g.cfg.MainRelaxPasses)
	for _, h := range mains {
		if g.world.IsValid(h) {
			g.world.SetRoomMainFlag(h, true)
		}
	}
	g.collectMainCenters(mains)

	span.SetAttributes(attribute.Int("layout.main_rooms", len(g.mains)))
	span.End()
	g.notify(PhaseMainSelected)

	g.triangulate(ctx)
	g.spanningTree(ctx)

	if g.cfg.BuildCorridors {
		g.route(ctx)
		if g.cfg.KeepOnlyMainAndPath {
			g.prune(ctx)
		}
		g.emit(ctx)
	}
	g.generatedCount.Add(ctx, 1)
}

// collectMainCenters fills mains and points in spawn order so point indices
// are stable for a given room set.
func (g *Generator) collectMainCenters(picked []world.Handle) {
	set := mapset.New[world.Handle]()
	for _, h := range picked {
		set.Put(h)
	}
	g.mains = g.mains[:0]
	g.points = g.points[:0]
	for _, h := range g.rooms {
		if !set.Has(h) {
			continue
		}
		b, ok := liveBounds(g.world, h)
		if !ok {
			continue
		}
		g.mains = append(g.mains, h)
		g.points = append(g.points, b.Center)
	}
}

func (g *Generator) triangulate(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "layout.triangulate")
	defer span.End()

	g.triangles = delaunay.Triangulate(g.points)
	span.SetAttributes(
		attribute.Int("layout.points", len(g.points)),
		attribute.Int("layout.triangles", len(g.triangles)),
	)
	g.notify(PhaseTriangulated)
}

func (g *Generator) spanningTree(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "layout.mst")
	defer span.End()

	g.edges = graph.ConnectivityEdges(len(g.points), g.triangles)
	g.mst = graph.PrimMST(g.points, g.edges)
	span.SetAttributes(
		attribute.Int("layout.edges", len(g.edges)),
		attribute.Int("layout.mst_edges", len(g.mst)),
	)
	g.notify(PhaseSpanned)
}

func (g *Generator) route(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "layout.corridors")
	defer span.End()

	boxes := make([]geom.Box, 0, len(g.mains))
	for _, h := range g.mains {
		if b, ok := liveBounds(g.world, h); ok {
			boxes = append(boxes, b)
		}
	}
	g.corridors = RouteCorridors(g.points, g.mst, boxes, g.cfg.RouteOptions())
	span.SetAttributes(attribute.Int("layout.corridors", len(g.corridors)))
	g.notify(PhaseRouted)
}

func (g *Generator) prune(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "layout.prune")
	defer span.End()

	mains := mapset.New[world.Handle]()
	for _, h := range g.mains {
		mains.Put(h)
	}
	_, removed := Prune(BuildRoomRefs(g.world, g.rooms), mains, Segments(g.corridors), g.cfg.CorridorKeepDistance)
	for _, h := range removed {
		g.world.DestroyRoom(h)
	}
	g.rooms = liveHandles(g.world, g.rooms)
	g.stats.Pruned += len(removed)
	g.prunedCounter.Add(ctx, int64(len(removed)))

	span.SetAttributes(attribute.Int("layout.rooms_pruned", len(removed)))
	g.notify(PhasePruned)
}

func (g *Generator) emit(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "layout.emit")
	defer span.End()

	g.transforms = CorridorTransforms(Segments(g.corridors), g.cfg.TransformOptions())
	span.SetAttributes(attribute.Int("layout.transforms", len(g.transforms)))
	if g.sink != nil {
		g.sink.Emit(slices.Clone(g.transforms))
	}
}

// End revokes any pending cull, destroys every spawned room and clears all
// derived state. Calling it again is a no-op.
func (g *Generator) End() {
	g.reset()
	g.generation++
}

func (g *Generator) reset() {
	if g.cullToken != 0 {
		g.world.CancelScheduled(g.cullToken)
		g.cullToken = 0
	}
	for _, h := range g.rooms {
		if g.world.IsValid(h) {
			g.world.DestroyRoom(h)
		}
	}
	g.rooms = nil
	g.mains = nil
	g.points = nil
	g.triangles = nil
	g.edges = nil
	g.mst = nil
	g.corridors = nil
	g.transforms = nil
	g.stats = Stats{}
	g.phase = PhaseIdle
}

func (g *Generator) notify(p Phase) {
	g.phase = p
	if g.observer == nil {
		return
	}
	g.observer.Observe(Snapshot{
		Phase:     p,
		Rooms:     BuildRoomRefs(g.world, g.rooms),
		Mains:     slices.Clone(g.mains),
		Points:    slices.Clone(g.points),
		Triangles: slices.Clone(g.triangles),
		MST:       slices.Clone(g.mst),
		Corridors: cloneCorridors(g.corridors),
	})
}

func cloneCorridors(cs []Corridor) []Corridor {
	if cs == nil {
		return nil
	}
	out := make([]Corridor, len(cs))
	for i, c := range cs {
		out[i] = Corridor{Edge: c.Edge, Segments: slices.Clone(c.Segments)}
	}
	return out
}

// Rooms returns the handles of the live rooms, in spawn order.
func (g *Generator) Rooms() []world.Handle {
	return liveHandles(g.world, g.rooms)
}

// MainRooms returns the main room handles in point index order.
func (g *Generator) MainRooms() []world.Handle {
	return slices.Clone(g.mains)
}

// Points returns the main room centers the graph indexes into.
func (g *Generator) Points() []geom.Vec2 {
	return slices.Clone(g.points)
}

// Triangles returns the Delaunay triangulation of Points.
func (g *Generator) Triangles() []delaunay.Triangle {
	return slices.Clone(g.triangles)
}

// Edges returns the candidate connectivity edges.
func (g *Generator) Edges() []delaunay.Edge {
	return slices.Clone(g.edges)
}

// MST returns the spanning tree edges.
func (g *Generator) MST() []delaunay.Edge {
	return slices.Clone(g.mst)
}

// Corridors returns the routed corridors.
func (g *Generator) Corridors() []Corridor {
	return cloneCorridors(g.corridors)
}

// Transforms returns the last emitted corridor transforms.
func (g *Generator) Transforms() []Transform {
	return slices.Clone(g.transforms)
}

// Stats returns counters for the current layout.
func (g *Generator) Stats() Stats {
	return g.stats
}

// MainCenters returns marker positions above each main room, lifted by the
// room half thickness and the configured offset.
func (g *Generator) MainCenters() []geom.Vec3 {
	z := g.cfg.OriginZ + g.cfg.RoomThickness/2 + g.cfg.MainCenterZOffset
	out := make([]geom.Vec3, 0, len(g.points))
	for _, p := range g.points {
		out = append(out, geom.Vec3{X: p.X, Y: p.Y, Z: z})
	}
	return out
}
