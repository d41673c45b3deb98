package palette

import (
	"fmt"
	"strings"

	"github.com/imgajeed76/pomo/internal/util"
)

// Resolve returns the value of the slot selected by alias.
func Resolve(p *Palette, alias string) (string, error) {
	slot, ok := Lookup(alias)
	if !ok {
		return "", util.UnknownAliasError(alias)
	}
	return p.Value(slot.Index), nil
}

// Format selects how a resolved value is printed.
type Format string

const (
	FormatRaw  Format = "raw"  // as stored in the scheme
	FormatHex  Format = "hex"  // #rrggbb
	FormatARGB Format = "argb" // 0xAArrggbb, the sketchybar color form
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatRaw, FormatHex, FormatARGB}

// ParseFormat validates a --format value. Empty means raw.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatRaw, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want raw, hex or argb)", s)
}

// FormatValue renders a stored slot value. alpha is two hex digits and only
// used by FormatARGB; empty means fully opaque.
func FormatValue(value string, f Format, alpha string) (string, error) {
	if f == FormatRaw || f == "" {
		return value, nil
	}

	rgb := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(rgb) != 6 || !isHex(rgb) {
		return "", fmt.Errorf("value %q is not a 6 digit hex color", value)
	}
	rgb = strings.ToLower(rgb)

	switch f {
	case FormatHex:
		return "#" + rgb, nil
	case FormatARGB:
		if alpha == "" {
			alpha = "ff"
		}
		if len(alpha) != 2 || !isHex(alpha) {
			return "", fmt.Errorf("alpha %q is not two hex digits", alpha)
		}
		return "0x" + strings.ToLower(alpha) + rgb, nil
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
