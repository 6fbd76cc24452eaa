package presets

import (
	"errors"
	"fmt"
)

// DefaultID names the preset used when none is requested.
const DefaultID = "default"

// ErrUnknownPreset is returned when a preset ID is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Registry holds loaded presets and provides lookup utilities.
type Registry struct {
	presets map[string]*Preset
	all     []Preset
}

// NewRegistry creates a registry from loaded presets.
func NewRegistry(presets []Preset) *Registry {
	registry := &Registry{
		presets: make(map[string]*Preset),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// LoadRegistryWithFile loads the embedded presets plus those in path, which
// may add presets or replace embedded ones by ID. An empty path loads only
// the embedded set.
func LoadRegistryWithFile(path string) (*Registry, error) {
	if path == "" {
		return LoadRegistry()
	}
	embedded, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	extra, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(Merge(embedded, extra)), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *Preset {
	return r.presets[id]
}

// Lookup returns the preset with the given ID. An empty ID selects the
// default preset.
func (r *Registry) Lookup(id string) (*Preset, error) {
	if id == "" {
		id = DefaultID
	}
	p := r.presets[id]
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	return p, nil
}

// All returns all presets in file order.
func (r *Registry) All() []Preset {
	return r.all
}

// IDs returns the preset IDs in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, p := range r.all {
		ids = append(ids, p.ID)
	}
	return ids
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
