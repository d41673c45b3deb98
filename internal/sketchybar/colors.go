package sketchybar

import "github.com/imgajeed76/pomo/internal/util"

// Colors is the table of named sketchybar colors (0xAARRGGBB strings).
type Colors struct {
	Black           string
	White           string
	Red             string
	Green           string
	Blue            string
	Yellow          string
	Orange          string
	Magenta         string
	Gray            string
	Transparent     string
	BG0             string
	BG1             string
	BG2             string
	Bar             string
	BarBorder       string
	Background1     string
	Background2     string
	Icon            string
	Label           string
	PopupBackground string
	PopupBorder     string
	Shadow          string
}

// DefaultColors returns the built-in One Dark based table.
func DefaultColors() Colors {
	const (
		black = "0xFF1E2127"
		white = "0xFFABB2BF"
		bg0   = "0xEE1E2127"
		bg1   = "0xCC4B5263"
		bg2   = "0x60494d64"
	)
	return Colors{
		Black:           black,
		White:           white,
		Red:             "0xFFE06C75",
		Green:           "0xFF98C379",
		Blue:            "0xFF61AFEF",
		Yellow:          "0xFFD19A66",
		Orange:          "0xFFF5A97F",
		Magenta:         "0xFFC678DD",
		Gray:            "0xFF5C6370",
		Transparent:     "0x00000000",
		BG0:             bg0,
		BG1:             bg1,
		BG2:             bg2,
		Bar:             bg0,
		BarBorder:       bg2,
		Background1:     bg1,
		Background2:     bg2,
		Icon:            white,
		Label:           white,
		PopupBackground: "0xD01E2127",
		PopupBorder:     white,
		Shadow:          black,
	}
}

// ColorVar ties an environment variable to a slot of the table.
type ColorVar struct {
	Env   string
	Name  string
	Value string
}

type colorField struct {
	env, name string
	ptr       *string
}

func (c *Colors) fields() []colorField {
	return []colorField{
		{"BLACK", "black", &c.Black},
		{"WHITE", "white", &c.White},
		{"RED", "red", &c.Red},
		{"GREEN", "green", &c.Green},
		{"BLUE", "blue", &c.Blue},
		{"YELLOW", "yellow", &c.Yellow},
		{"ORANGE", "orange", &c.Orange},
		{"MAGENTA", "magenta", &c.Magenta},
		{"GRAY", "gray", &c.Gray},
		{"TRANSPARENT", "transparent", &c.Transparent},
		{"BG0", "bg0", &c.BG0},
		{"BG1", "bg1", &c.BG1},
		{"BG2", "bg2", &c.BG2},
		{"BAR_COLOR", "bar", &c.Bar},
		{"BAR_BORDER_COLOR", "bar_border", &c.BarBorder},
		{"BACKGROUND_1", "background_1", &c.Background1},
		{"BACKGROUND_2", "background_2", &c.Background2},
		{"ICON_COLOR", "icon", &c.Icon},
		{"LABEL_COLOR", "label", &c.Label},
		{"POPUP_BACKGROUND_COLOR", "popup_background", &c.PopupBackground},
		{"POPUP_BORDER_COLOR", "popup_border", &c.PopupBorder},
		{"SHADOW_COLOR", "shadow", &c.Shadow},
	}
}

// Vars lists the table in declaration order.
func (c Colors) Vars() []ColorVar {
	fs := c.fields()
	out := make([]ColorVar, len(fs))
	for i, f := range fs {
		out[i] = ColorVar{Env: f.env, Name: f.name, Value: *f.ptr}
	}
	return out
}

// Lookuper is anything that can look up environment variables.
type Lookuper interface {
	Lookup(key string) (string, bool)
}

// LoadColors returns the defaults with every valid override from env
// applied. Invalid overrides are ignored.
func LoadColors(env Lookuper) Colors {
	c := DefaultColors()
	if env == nil {
		return c
	}
	for _, f := range c.fields() {
		v, ok := env.Lookup(f.env)
		if !ok {
			continue
		}
		if !IsColor(v) {
			util.Debugf("ignoring %s=%q: not a 0xAARRGGBB color", f.env, v)
			continue
		}
		*f.ptr = v
	}
	return c
}

// IsColor reports whether s is "0x" followed by exactly 8 hex digits.
func IsColor(s string) bool {
	if len(s) != 10 || s[0] != '0' || s[1] != 'x' {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
