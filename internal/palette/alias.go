package palette

import (
	"golang.org/x/text/cases"
)

// Slot describes one Base16 slot and the aliases that select it.
type Slot struct {
	Index   int
	Name    string
	Aliases []string
}

var slotNames = [SlotCount]string{
	"base00", "base01", "base02", "base03",
	"base04", "base05", "base06", "base07",
	"base08", "base09", "base0A", "base0B",
	"base0C", "base0D", "base0E", "base0F",
}

var slotAliases = [SlotCount][]string{
	{"background", "bg"},
	{"lighter_background", "lighter_bg"},
	{"selection_background", "selection_bg"},
	{"comments", "invisibles", "line_highlighting"},
	{"dark_foreground", "dark_fg", "status_bar"},
	{"foreground", "fg", "caret", "delimiters", "operators"},
	{"light_foreground", "light_fg"},
	{"light_background", "light_bg"},
	{"variables", "tags", "links"},
	{"integers", "boolean", "constants", "url"},
	{"class", "bold", "search_background", "search_bg"},
	{"string", "code"},
	{"support", "quotes", "escape_characters"},
	{"function", "method", "heading"},
	{"keyword", "storage", "italic"},
	{"deprecated"},
}

// index maps folded slot names and aliases to slot indexes.
var index = func() map[string]int {
	m := make(map[string]int)
	for i := range SlotCount {
		m[fold(slotNames[i])] = i
		for _, a := range slotAliases[i] {
			m[fold(a)] = i
		}
	}
	return m
}()

// fold builds a fresh Caser per call; a Caser holds state and is not safe
// for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Slots returns every slot in order with its aliases.
func Slots() []Slot {
	out := make([]Slot, SlotCount)
	for i := range SlotCount {
		out[i] = Slot{
			Index:   i,
			Name:    slotNames[i],
			Aliases: append([]string(nil), slotAliases[i]...),
		}
	}
	return out
}

// Lookup returns the slot an alias selects. Matching ignores case.
func Lookup(alias string) (Slot, bool) {
	i, ok := index[fold(alias)]
	if !ok {
		return Slot{}, false
	}
	return Slots()[i], true
}
