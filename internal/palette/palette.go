// Package palette maps voxel colors to block material identifiers. Palettes
// are ordered: declaration order breaks exact-distance ties, so documents
// loaded from disk keep their entry order.
package palette

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPalette reports a palette with zero entries; no conversion can
// produce output without one.
var ErrEmptyPalette = errors.New("palette: empty palette")

// Entry pairs a material identifier with its representative color.
type Entry struct {
	ID  string   `yaml:"id" json:"id"`
	RGB [3]uint8 `yaml:"rgb" json:"rgb"`
}

// Palette is an ordered list of material entries.
type Palette struct {
	Name    string
	Entries []Entry
}

// Load reads a YAML palette document: a list of {id, rgb} entries.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("palette: read %s: %w", path, err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return Palette{}, fmt.Errorf("palette: parse %s: %w", path, err)
	}
	if len(entries) == 0 {
		return Palette{}, fmt.Errorf("palette: %s: %w", path, ErrEmptyPalette)
	}
	return Palette{Name: path, Entries: entries}, nil
}

// Color returns the representative RGB for a material id, or false if the
// id is not in the palette.
func (p Palette) Color(id string) ([3]uint8, bool) {
	for _, e := range p.Entries {
		if e.ID == id {
			return e.RGB, true
		}
	}
	return [3]uint8{}, false
}
