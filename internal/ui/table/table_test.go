package table

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cols = []string{"slot", "aliases", "value"}
	rows = [][]string{
		{"base00", "background, bg", "282c34"},
		{"base0F", "deprecated", ""},
	}
)

func TestPlainTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Display(&buf, cols, rows, DisplayOptions{Footer: true}))

	want := "" +
		"slot    aliases         value\n" +
		"──────  ──────────────  ──────\n" +
		"base00  background, bg  282c34\n" +
		"base0F  deprecated\n" +
		"\n" +
		"(2 rows)\n"
	assert.Equal(t, want, buf.String())
}

func TestPlainTable_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintPlainTable(&buf, nil, nil, false))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Display(&buf, cols, rows, DisplayOptions{JSON: true}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "282c34", got[0]["value"])
	assert.Nil(t, got[1]["value"])
}

func TestRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Display(&buf, cols, rows, DisplayOptions{Raw: true}))
	assert.Equal(t, "base00\tbackground, bg\t282c34\nbase0F\tdeprecated\t\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5))
	assert.Equal(t, "ab", Truncate("abcdefgh", 2))
}
