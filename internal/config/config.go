// Package config reads runtime configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/dungeonlayout/internal/geom"
	"github.com/samdwyer/dungeonlayout/internal/layout"
	"github.com/samdwyer/dungeonlayout/internal/presets"
)

// ============================================================
// Generation
// ============================================================

// Config is the generation setup: the chosen preset and the final layout
// parameters after environment overrides.
type Config struct {
	Preset  *presets.Preset
	Layout  layout.Config
	Palette presets.Palette
}

// Load selects the preset named by DUNGEON_PRESET and applies every
// DUNGEON_* override on top of it. All malformed variables are reported
// together.
func Load(registry *presets.Registry) (*Config, error) {
	preset, err := registry.Lookup(os.Getenv("DUNGEON_PRESET"))
	if err != nil {
		return nil, fmt.Errorf("DUNGEON_PRESET: %w", err)
	}
	cfg, err := preset.Apply(layout.DefaultConfig())
	if err != nil {
		return nil, err
	}

	var errs []error
	set := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	set(envInt64("DUNGEON_SEED", &cfg.Seed))
	set(envInt("DUNGEON_ROOM_COUNT", &cfg.RoomCount))
	set(envVec2("DUNGEON_ROOM_SIZE_MIN", &cfg.RoomSizeMin))
	set(envVec2("DUNGEON_ROOM_SIZE_MAX", &cfg.RoomSizeMax))
	set(envFloat("DUNGEON_SPAWN_RADIUS", &cfg.SpawnRadius))
	set(envInt("DUNGEON_RELAX_ITERATIONS", &cfg.MaxRelaxIterations))
	set(envFloat("DUNGEON_NUDGE_CLAMP", &cfg.NudgeClamp))
	set(envFloat("DUNGEON_CONTACT_PADDING", &cfg.ContactPadding))
	set(envBool("DUNGEON_CULLING", &cfg.EnableCulling))
	set(envSeconds("DUNGEON_CULLING_DELAY", &cfg.CullingDelaySeconds))
	set(envFloat("DUNGEON_CULL_THRESHOLD", &cfg.CullPenetrationThreshold))
	set(envInt("DUNGEON_MAX_CULLS", &cfg.MaxCulls))
	set(envInt("DUNGEON_MAIN_COUNT", &cfg.MainCount))
	set(envFloat("DUNGEON_MAIN_GAP", &cfg.MinMainGap))
	set(envBool("DUNGEON_CORRIDORS", &cfg.BuildCorridors))
	set(envBool("DUNGEON_KEEP_ONLY_PATH", &cfg.KeepOnlyMainAndPath))
	set(envBool("DUNGEON_CORRIDOR_EXACT", &cfg.CorridorFollowMSTExact))
	set(envFloat("DUNGEON_CORRIDOR_INSET", &cfg.CorridorInset))
	set(envFloat("DUNGEON_KEEP_DISTANCE", &cfg.CorridorKeepDistance))
	set(envFloat("DUNGEON_CORRIDOR_WIDTH", &cfg.CorridorWidth))
	set(envFloat("DUNGEON_CORRIDOR_HEIGHT", &cfg.CorridorHeight))
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{Preset: preset, Layout: cfg, Palette: preset.Palette}, nil
}

// ============================================================
// Service
// ============================================================

// Service holds the HTTP service settings.
type Service struct {
	Port         string
	DBPath       string
	ReadTimeout  int
	WriteTimeout int
}

// LoadService reads the service settings, falling back to defaults.
func LoadService() *Service {
	return &Service{
		Port:         getEnv("PORT", "3000"),
		DBPath:       getEnv("LAYOUT_DB_PATH", "data/db/layouts.db"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// ============================================================
// Strict parsers: unset leaves dst alone, malformed is an error
// ============================================================

func envInt(key string, dst *int) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func envInt64(key string, dst *int64) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func envFloat(key string, dst *float64) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = v
	return nil
}

func envSeconds(key string, dst *float64) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d.Seconds()
	return nil
}

// envVec2 parses "x,y".
func envVec2(key string, dst *geom.Vec2) error {
	value, ok := lookup(key)
	if !ok {
		return nil
	}
	xs, ys, found := strings.Cut(value, ",")
	if !found {
		return fmt.Errorf("%s: want \"x,y\", got %q", key, value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = geom.V(x, y)
	return nil
}

func lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}
