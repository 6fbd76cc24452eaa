package layout

import (
	"time"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/world"
)

// Config holds every tunable of a generation run. The JSON names are used by
// embedded presets; fields absent from a preset keep their current value.
type Config struct {
	// Seed for the random stream. Zero is mapped to one inside the generator;
	// callers wanting a fresh layout resolve it with ResolveSeed first.
	Seed int64 `json:"seed"`

	// Rooms
	Origin      geom.Vec2 `json:"origin"`
	OriginZ     float64   `json:"originZ"`
	RoomCount   int       `json:"roomCount"`
	RoomSizeMin geom.Vec2 `json:"roomSizeMin"`
	RoomSizeMax geom.Vec2 `json:"roomSizeMax"`
	SpawnRadius float64   `json:"spawnRadius"`
	// RoomThickness is the vertical extent of a room, used to lift main
	// room markers above the floor.
	RoomThickness float64 `json:"roomThickness"`

	// Relax
	MaxRelaxIterations int     `json:"maxRelaxIterations"`
	NudgeClamp         float64 `json:"nudgeClamp"`
	ContactPadding     float64 `json:"contactPadding"`

	// Culling
	EnableCulling            bool    `json:"enableCulling"`
	CullingDelaySeconds      float64 `json:"cullingDelaySeconds"`
	CullRelaxIterations      int     `json:"cullRelaxIterations"`
	CullPenetrationThreshold float64 `json:"cullPenetrationThreshold"`
	MaxCulls                 int     `json:"maxCulls"`

	// Main rooms
	MainCount         int     `json:"mainCount"`
	MinMainGap        float64 `json:"minMainGap"`
	MainPushStep      float64 `json:"mainPushStep"`
	MainRelaxPasses   int     `json:"mainRelaxPasses"`
	MainCenterZOffset float64 `json:"mainCenterZOffset"`

	// Corridors
	BuildCorridors         bool    `json:"buildCorridors"`
	KeepOnlyMainAndPath    bool    `json:"keepOnlyMainAndPath"`
	CorridorFollowMSTExact bool    `json:"corridorFollowMSTExact"`
	CorridorInset          float64 `json:"corridorInset"`
	AlignEpsilon           float64 `json:"alignEpsilon"`
	CorridorKeepDistance   float64 `json:"corridorKeepDistance"`
	CorridorWidth          float64 `json:"corridorWidth"`
	CorridorHeight         float64 `json:"corridorHeight"`
	CorridorZOffset        float64 `json:"corridorZOffset"`
	UnitBase               float64 `json:"unitBase"`
}

// DefaultConfig returns the stock generation parameters.
func DefaultConfig() Config {
	return Config{
		RoomCount:   32,
		RoomSizeMin: geom.V(250, 250),
		RoomSizeMax: geom.V(950, 950),
		SpawnRadius: 1600,

		RoomThickness: world.DefaultThickness,

		MaxRelaxIterations: 80,
		NudgeClamp:         100,
		ContactPadding:     2,

		EnableCulling:            true,
		CullingDelaySeconds:      2,
		CullRelaxIterations:      10,
		CullPenetrationThreshold: 60,
		MaxCulls:                 2,

		MainCount:         7,
		MinMainGap:        120,
		MainPushStep:      40,
		MainRelaxPasses:   10,
		MainCenterZOffset: 80,

		BuildCorridors:       true,
		KeepOnlyMainAndPath:  true,
		CorridorInset:        10,
		AlignEpsilon:         1e-2,
		CorridorKeepDistance: 150,
		CorridorWidth:        250,
		CorridorHeight:       150,
		CorridorZOffset:      260,
		UnitBase:             100,
	}
}

// CullingDelay returns the deferred culling delay as a Duration.
func (c Config) CullingDelay() time.Duration {
	if c.CullingDelaySeconds <= 0 {
		return 0
	}
	return time.Duration(c.CullingDelaySeconds * float64(time.Second))
}

// RouteOptions extracts the corridor routing parameters.
func (c Config) RouteOptions() RouteOptions {
	return RouteOptions{
		Inset:        c.CorridorInset,
		AlignEpsilon: c.AlignEpsilon,
		Exact:        c.CorridorFollowMSTExact,
	}
}

// TransformOptions extracts the corridor mesh parameters.
func (c Config) TransformOptions() TransformOptions {
	return TransformOptions{
		Width:    c.CorridorWidth,
		Height:   c.CorridorHeight,
		BaseZ:    c.OriginZ + c.CorridorZOffset,
		UnitBase: c.UnitBase,
	}
}

// ResolveSeed returns seed unchanged unless it is zero, in which case a
// non-zero seed is derived from the current time.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	ticks := uint64(time.Now().UnixNano())
	s := int64(int32(ticks ^ (ticks >> 32)))
	if s == 0 {
		return 1
	}
	return s
}
