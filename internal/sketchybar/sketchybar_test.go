package sketchybar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	out   []byte
	err   error
	ctx   context.Context
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	f.ctx = ctx
	return f.out, f.err
}

type envMap map[string]string

func (e envMap) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

func newTestClient(r Runner) *Client {
	return NewClient(Options{}, DefaultColors(), r)
}

func TestLoad_Args(t *testing.T) {
	r := &fakeRunner{}
	c := newTestClient(r)

	require.NoError(t, c.Load(context.Background(), ""))
	require.Len(t, r.calls, 1)
	assert.Equal(t, "sketchybar", r.calls[0].name)

	want := []string{
		"--add", "item", "pomo", "center",
		"--set", "pomo",
		"icon=󰚭",
		"update_freq=1",
		"updates=when_shown",
		"script=pomo sketchybar update",
		"click_script=sketchybar --set pomo popup.drawing=toggle",
		"label.align=left",
		"popup.blur_radius=50",
		"popup.align=center",
		"popup.horizontal=true",
		"popup.y_offset=3",
		"popup.background.border_color=0x00000000",
		"popup.background.color=0xD01E2127",
		"--add", "item", "pomo.start", "popup.pomo",
		"--set", "pomo.start", "label=Start", "click_script=pomo start",
		"--add", "item", "pomo.stop", "popup.pomo",
		"--set", "pomo.stop", "label=Stop", "click_script=pomo sketchybar hide",
	}
	assert.Equal(t, want, r.calls[0].args)
}

func TestLoad_CustomIconAndOptions(t *testing.T) {
	r := &fakeRunner{}
	c := NewClient(Options{
		Binary:     "/opt/bin/sketchybar",
		Item:       "timer",
		Position:   "right",
		UpdateFreq: 5,
	}, DefaultColors(), r)

	require.NoError(t, c.Load(context.Background(), "T"))
	args := r.calls[0].args
	assert.Equal(t, "/opt/bin/sketchybar", r.calls[0].name)
	assert.Equal(t, []string{"--add", "item", "timer", "right"}, args[:4])
	assert.Contains(t, args, "icon=T")
	assert.Contains(t, args, "update_freq=5")
	assert.Contains(t, args, "click_script=/opt/bin/sketchybar --set timer popup.drawing=toggle")
	assert.Contains(t, args, "popup.timer")
	assert.Contains(t, args, "timer.stop")
}

func TestSimpleCommands(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		do   func(*Client) error
		want []string
	}{
		{"unload", func(c *Client) error { return c.Unload(ctx) }, []string{"--remove", "pomo"}},
		{"update", func(c *Client) error { return c.Update(ctx, "Stay Focused: 24:59") },
			[]string{"--set", "pomo", "label=Stay Focused: 24:59"}},
		{"update empty", func(c *Client) error { return c.Update(ctx, "") }, []string{"--set", "pomo", "label="}},
		{"show", func(c *Client) error { return c.Show(ctx) }, []string{"--set", "pomo", "drawing=on"}},
		{"hide", func(c *Client) error { return c.Hide(ctx) },
			[]string{"--set", "pomo", "drawing=off", "popup.drawing=toggle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{}
			require.NoError(t, tt.do(newTestClient(r)))
			require.Len(t, r.calls, 1)
			assert.Equal(t, tt.want, r.calls[0].args)
		})
	}
}

func TestRun_WrapsFailureAndAppliesTimeout(t *testing.T) {
	boom := errors.New("exit status 1")
	r := &fakeRunner{out: []byte("item not found\n"), err: boom}
	c := newTestClient(r)

	err := c.Show(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "item not found")

	deadline, ok := r.ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(DefaultTimeout), deadline, time.Second)
}

func TestVersion(t *testing.T) {
	r := &fakeRunner{out: []byte("sketchybar-v2.21.0\n")}
	v, err := newTestClient(r).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sketchybar-v2.21.0", v)
	assert.Equal(t, []string{"--version"}, r.calls[0].args)
}

func TestIsColor(t *testing.T) {
	valid := []string{"0xFF1E2127", "0x00000000", "0x60494d64", "0xabcdefAB"}
	invalid := []string{"", "0x", "FF1E2127", "0xFF1E212", "0xFF1E21277", "0XFF1E2127", "0xGG1E2127", "1xFF1E2127", "#FF1E2127 "}

	for _, s := range valid {
		assert.True(t, IsColor(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsColor(s), s)
	}
}

func TestLoadColors(t *testing.T) {
	c := LoadColors(envMap{
		"RED":                    "0xFF112233",
		"BLUE":                   "blue",
		"POPUP_BACKGROUND_COLOR": "0x80000000",
		"SHADOW_COLOR":           "0x1234",
	})

	def := DefaultColors()
	assert.Equal(t, "0xFF112233", c.Red)
	assert.Equal(t, def.Blue, c.Blue, "invalid override ignored")
	assert.Equal(t, "0x80000000", c.PopupBackground)
	assert.Equal(t, def.Shadow, c.Shadow)
	assert.Equal(t, def.Green, c.Green)

	assert.Equal(t, def, LoadColors(nil))
}

func TestDefaultColors_Aliases(t *testing.T) {
	c := DefaultColors()
	assert.Equal(t, c.BG0, c.Bar)
	assert.Equal(t, c.BG2, c.BarBorder)
	assert.Equal(t, c.BG1, c.Background1)
	assert.Equal(t, c.BG2, c.Background2)
	assert.Equal(t, c.White, c.Icon)
	assert.Equal(t, c.White, c.Label)
	assert.Equal(t, c.White, c.PopupBorder)
	assert.Equal(t, c.Black, c.Shadow)

	vars := c.Vars()
	require.Len(t, vars, 22)
	for _, v := range vars {
		assert.True(t, IsColor(v.Value), v.Name)
	}
	assert.Equal(t, "BAR_COLOR", vars[13].Env)
}
