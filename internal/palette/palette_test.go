package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imgajeed76/pomo/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneDark = `scheme: "One Dark"
author: "Lalit Magant"
base00: "282c34"
base01: "353b45"
base02: "3e4451"
base03: "545862"
base04: "565c64"
base05: "abb2bf"
base06: "b6bdca"
base07: "c8ccd4"
base08: "e06c75"
base09: "d19a66"
base0A: "e5c07b"
base0B: "98c379"
base0C: "56b6c2"
base0D: "61afef"
base0E: "c678dd"
base0F: "be5046"
`

func writeScheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := SchemePath(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Flat(t *testing.T) {
	path := writeScheme(t, t.TempDir(), "onedark", oneDark)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "One Dark", p.Scheme)
	assert.Equal(t, "282c34", p.Base00)
	assert.Equal(t, "be5046", p.Base0F)
	assert.Equal(t, path, p.Path)
}

func TestLoad_NumericLookingValuesStayText(t *testing.T) {
	body := strings.Replace(oneDark, `base00: "282c34"`, "base00: 000000", 1)
	p, err := Parse([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "000000", p.Base00)
}

func TestLoad_NestedShapeRejected(t *testing.T) {
	var nested strings.Builder
	nested.WriteString("palette:\n")
	for _, line := range strings.Split(strings.TrimSpace(oneDark), "\n") {
		nested.WriteString("  " + line + "\n")
	}
	path := writeScheme(t, t.TempDir(), "nested", nested.String())

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrInvalidPalette)

	var cliErr *util.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, path, cliErr.Context)
	assert.NotEmpty(t, cliErr.Suggestions)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, util.ErrFileUnreadable)

	_, err = Load(writeScheme(t, dir, "broken", "base00: [unclosed"))
	assert.ErrorIs(t, err, util.ErrInvalidPalette)

	_, err = Load(writeScheme(t, dir, "empty", ""))
	assert.ErrorIs(t, err, util.ErrInvalidPalette)

	short := strings.Replace(oneDark, `base0F: "be5046"`, "", 1)
	_, err = Load(writeScheme(t, dir, "short", short))
	require.ErrorIs(t, err, util.ErrInvalidPalette)
	assert.Contains(t, err.(*util.CLIError).Message, "base0F")
}

func TestSchemePath(t *testing.T) {
	assert.Equal(t, filepath.Join("schemes", "nord.yaml"), SchemePath("schemes", "nord"))
}

func TestResolve(t *testing.T) {
	p, err := Parse([]byte(oneDark))
	require.NoError(t, err)

	tests := map[string]string{
		"background":        "282c34",
		"BG":                "282c34",
		"base00":            "282c34",
		"Invisibles":        "545862",
		"invisibles":        "545862",
		"operators":         "abb2bf",
		"Search_Background": "e5c07b",
		"base0a":            "e5c07b",
		"BASE0A":            "e5c07b",
		"string":            "98c379",
		"escape_characters": "56b6c2",
		"heading":           "61afef",
		"italic":            "c678dd",
		"deprecated":        "be5046",
	}
	for alias, want := range tests {
		got, err := Resolve(p, alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got, alias)
	}
}

func TestResolve_UnknownNeverFallsBack(t *testing.T) {
	p, err := Parse([]byte(oneDark))
	require.NoError(t, err)

	for _, alias := range []string{"", "backgrounds", "base10", "comment", " bg"} {
		got, err := Resolve(p, alias)
		assert.ErrorIs(t, err, util.ErrUnknownColorAlias, alias)
		assert.Empty(t, got)
	}
}

func TestSlots_TableIsTotal(t *testing.T) {
	slots := Slots()
	require.Len(t, slots, SlotCount)

	seen := map[string]bool{}
	for i, s := range slots {
		assert.Equal(t, i, s.Index)
		assert.NotEmpty(t, s.Aliases, s.Name)

		for _, name := range append([]string{s.Name}, s.Aliases...) {
			assert.False(t, seen[name], "alias %q listed twice", name)
			seen[name] = true

			got, ok := Lookup(name)
			require.True(t, ok, name)
			assert.Equal(t, i, got.Index, name)
		}
	}

	// Slots hands out copies.
	slots[0].Aliases[0] = "changed"
	assert.Equal(t, "background", Slots()[0].Aliases[0])
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value  string
		format Format
		alpha  string
		want   string
	}{
		{"282c34", FormatRaw, "", "282c34"},
		{"#282C34", FormatRaw, "", "#282C34"},
		{"282C34", FormatHex, "", "#282c34"},
		{"#282c34", FormatHex, "", "#282c34"},
		{"282c34", FormatARGB, "", "0xff282c34"},
		{"282c34", FormatARGB, "CC", "0xcc282c34"},
	}
	for _, tt := range tests {
		got, err := FormatValue(tt.value, tt.format, tt.alpha)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := FormatValue("red", FormatHex, "")
	assert.Error(t, err)
	_, err = FormatValue("282c34", FormatARGB, "fff")
	assert.Error(t, err)
	_, err = FormatValue("282c34", FormatARGB, "zz")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatRaw, f)

	f, err = ParseFormat("ARGB")
	require.NoError(t, err)
	assert.Equal(t, FormatARGB, f)

	_, err = ParseFormat("rgb")
	assert.Error(t, err)
}
