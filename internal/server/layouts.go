package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/samdwyer/dungeonlayout/internal/layout"
	"github.com/samdwyer/dungeonlayout/internal/presets"
	"github.com/samdwyer/dungeonlayout/internal/session"
	"github.com/samdwyer/dungeonlayout/internal/store"
)

const maxListLimit = 100

// LayoutHandler generates, stores and serves layouts.
type LayoutHandler struct {
	store    *store.Store
	registry *presets.Registry
	base     layout.Config
	baseID   string
}

// NewLayoutHandler creates a handler. base is the configuration used when a
// request names no preset and baseID the preset it was built from.
func NewLayoutHandler(s *store.Store, registry *presets.Registry, baseID string, base layout.Config) *LayoutHandler {
	if baseID == "" {
		baseID = presets.DefaultID
	}
	return &LayoutHandler{store: s, registry: registry, base: base, baseID: baseID}
}

// Create handles POST /api/v1/layouts?seed=&preset=.
func (h *LayoutHandler) Create(c fiber.Ctx) error {
	cfg := h.base
	presetID := c.Query("preset")
	if presetID != "" {
		p, err := h.registry.Lookup(presetID)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, err)
		}
		if cfg, err = p.Apply(cfg); err != nil {
			return errorJSON(c, fiber.StatusInternalServerError, err)
		}
	} else {
		presetID = h.baseID
	}

	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, errors.New("seed must be an integer"))
		}
		cfg.Seed = seed
	}
	cfg.Seed = layout.ResolveSeed(cfg.Seed)

	sess := session.New(cfg)
	defer sess.Close()

	l, err := sess.Run(c.Context())
	if err != nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, err)
	}
	rec, err := h.store.Save(c.Context(), presetID, l)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// Get handles GET /api/v1/layouts/:id.
func (h *LayoutHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, errors.New("invalid layout id"))
	}
	rec, err := h.store.Get(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return errorJSON(c, fiber.StatusNotFound, err)
	}
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(rec)
}

// List handles GET /api/v1/layouts?limit=.
func (h *LayoutHandler) List(c fiber.Ctx) error {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return errorJSON(c, fiber.StatusBadRequest, errors.New("limit must be a positive integer"))
		}
		limit = min(n, maxListLimit)
	}
	out, err := h.store.List(c.Context(), limit)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{
		"layouts": out,
	})
}

// Presets handles GET /api/v1/presets.
func (h *LayoutHandler) Presets(c fiber.Ctx) error {
	type entry struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Palette     presets.Palette `json:"palette"`
	}
	out := make([]entry, 0, h.registry.Count())
	for _, p := range h.registry.All() {
		out = append(out, entry{ID: p.ID, Name: p.Name, Description: p.Description, Palette: p.Palette})
	}
	return c.JSON(fiber.Map{
		"presets": out,
	})
}

func errorJSON(c fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
