package presets

import (
	"encoding/json"
	"fmt"

	"github.com/samdwyer/dungeonlayout/internal/layout"
)

// Palette holds hex colors used when drawing a layout.
type Palette struct {
	Background string `json:"background"`
	Room       string `json:"room"`
	MainRoom   string `json:"mainRoom"`
	Corridor   string `json:"corridor"`
	Label      string `json:"label"`
}

// Preset is a named set of generation parameters loaded from JSON.
type Preset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Palette     Palette `json:"palette"`
	// Params overlays layout.Config; keys not present keep the base value.
	Params json.RawMessage `json:"params"`
}

// Apply returns base with the preset parameters laid over it.
func (p *Preset) Apply(base layout.Config) (layout.Config, error) {
	if len(p.Params) == 0 {
		return base, nil
	}
	cfg := base
	if err := json.Unmarshal(p.Params, &cfg); err != nil {
		return base, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return cfg, nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []Preset `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]Preset, error) {
	return decodePresets(presetFS, presetsFileName)
}
