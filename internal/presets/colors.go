package presets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(v)), nil
}

// Colors is a Palette resolved to terminal colors.
type Colors struct {
	Background tcell.Color
	Room       tcell.Color
	MainRoom   tcell.Color
	Corridor   tcell.Color
	Label      tcell.Color
}

// Resolve parses every palette entry. Empty entries become the terminal
// default color.
func (p Palette) Resolve() (Colors, error) {
	var c Colors
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", p.Background, &c.Background},
		{"room", p.Room, &c.Room},
		{"mainRoom", p.MainRoom, &c.MainRoom},
		{"corridor", p.Corridor, &c.Corridor},
		{"label", p.Label, &c.Label},
	}
	for _, f := range fields {
		if f.hex == "" {
			*f.dst = tcell.ColorDefault
			continue
		}
		color, err := ParseHexColor(f.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = color
	}
	return c, nil
}
