package presets

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// presetsFileName is the embedded preset set.
const presetsFileName = "presets.json"

// decodePresets reads a presets document from fsys. Unknown top-level or
// preset fields are rejected so typos in hand-written files surface early;
// Params is checked later when a preset is applied.
func decodePresets(fsys fs.FS, name string) ([]Preset, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open presets %s: %w", name, err)
	}
	defer f.Close()

	var file PresetsFile
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", name, err)
	}
	for i, p := range file.Presets {
		if p.ID == "" {
			return nil, fmt.Errorf("parse presets %s: preset %d has no id", name, i)
		}
	}
	return file.Presets, nil
}

// ReadFile loads presets from a JSON file on disk, in the same format as
// the embedded set.
func ReadFile(path string) ([]Preset, error) {
	return decodePresets(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Merge returns base followed by extra. A preset in extra replaces the base
// preset with the same ID in place.
func Merge(base, extra []Preset) []Preset {
	out := append([]Preset(nil), base...)
	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.ID] = i
	}
	for _, p := range extra {
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}
