// Package palette loads Base16 color schemes and resolves the semantic
// aliases used by editors and bar configs ("background", "string", ...)
// to the slot values stored in the scheme.
//
// The canonical file shape is flat: base00..base0F at the top level. The
// older shape that nests the slots under a "palette" key is rejected.
package palette

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imgajeed76/pomo/internal/util"
	"gopkg.in/yaml.v3"
)

// SlotCount is the number of colors in a Base16 scheme.
const SlotCount = 16

// Palette is one loaded scheme.
type Palette struct {
	Scheme string `yaml:"scheme"`
	Author string `yaml:"author"`

	Base00 string `yaml:"base00"`
	Base01 string `yaml:"base01"`
	Base02 string `yaml:"base02"`
	Base03 string `yaml:"base03"`
	Base04 string `yaml:"base04"`
	Base05 string `yaml:"base05"`
	Base06 string `yaml:"base06"`
	Base07 string `yaml:"base07"`
	Base08 string `yaml:"base08"`
	Base09 string `yaml:"base09"`
	Base0A string `yaml:"base0A"`
	Base0B string `yaml:"base0B"`
	Base0C string `yaml:"base0C"`
	Base0D string `yaml:"base0D"`
	Base0E string `yaml:"base0E"`
	Base0F string `yaml:"base0F"`

	// Path is where the palette was read from. Not part of the file.
	Path string `yaml:"-"`
}

// values returns the slots in order base00..base0F.
func (p *Palette) values() [SlotCount]string {
	return [SlotCount]string{
		p.Base00, p.Base01, p.Base02, p.Base03,
		p.Base04, p.Base05, p.Base06, p.Base07,
		p.Base08, p.Base09, p.Base0A, p.Base0B,
		p.Base0C, p.Base0D, p.Base0E, p.Base0F,
	}
}

// Value returns the value stored in slot i (0..15).
func (p *Palette) Value(i int) string {
	if i < 0 || i >= SlotCount {
		return ""
	}
	return p.values()[i]
}

// SchemePath returns the file for scheme inside dir.
func SchemePath(dir, scheme string) string {
	return filepath.Join(dir, scheme+".yaml")
}

// Load reads and validates a flat Base16 scheme file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.FileUnreadableError(path, err)
	}

	p, err := Parse(data)
	if err != nil {
		if cliErr, ok := err.(*util.CLIError); ok {
			cliErr.WithContext(path)
		}
		return nil, err
	}
	p.Path = path
	return p, nil
}

// Parse decodes scheme YAML. Unknown keys other than the nested "palette"
// mapping are ignored.
func Parse(data []byte) (*Palette, error) {
	var doc map[string]yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, util.InvalidPaletteError("", fmt.Sprintf("YAML parse error: %v", err))
	}

	if _, nested := doc["palette"]; nested {
		return nil, util.InvalidPaletteError("", "the slots are nested under a 'palette' key").
			WithSuggestion("move base00..base0F to the top level of the file")
	}

	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, util.InvalidPaletteError("", fmt.Sprintf("YAML decode error: %v", err))
	}

	var missing []string
	vals := p.values()
	for i, v := range vals {
		if v == "" {
			missing = append(missing, slotNames[i])
		}
	}
	if len(missing) > 0 {
		return nil, util.InvalidPaletteError("", fmt.Sprintf("missing or empty slots: %v", missing))
	}
	return &p, nil
}
