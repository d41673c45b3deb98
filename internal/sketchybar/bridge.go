// Package sketchybar drives a sketchybar item that shows the pomodoro phase.
//
// Everything goes through the sketchybar command line tool. Failures are
// reported to the caller for logging only; the timer itself never depends
// on the bar being present.
package sketchybar

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/imgajeed76/pomo/internal/util"
)

// Bridge is the set of bar operations pomo needs.
type Bridge interface {
	// Load adds the item and its Start/Stop popup. An empty icon uses the
	// configured default.
	Load(ctx context.Context, icon string) error
	// Unload removes the item. Resetting the session is up to the caller.
	Unload(ctx context.Context) error
	// Update sets the item label.
	Update(ctx context.Context, label string) error
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
}

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// DefaultTimeout bounds every sketchybar invocation.
const DefaultTimeout = 5 * time.Second

// Options configures the item a Client manages.
type Options struct {
	Binary     string // sketchybar executable
	Item       string // item name
	Position   string // left, center, right, q or e
	Icon       string // default icon for Load
	UpdateFreq int    // seconds
	Script     string // run by sketchybar on every update tick
	Program    string // pomo command used in popup click scripts
	Timeout    time.Duration
}

// DefaultOptions matches the stock sketchybar setup.
func DefaultOptions() Options {
	return Options{
		Binary:     "sketchybar",
		Item:       "pomo",
		Position:   "center",
		Icon:       "󰚭",
		UpdateFreq: 1,
		Script:     "pomo sketchybar update",
		Program:    "pomo",
		Timeout:    DefaultTimeout,
	}
}

// Client implements Bridge on top of the sketchybar CLI.
type Client struct {
	opts   Options
	colors Colors
	runner Runner
}

var _ Bridge = (*Client)(nil)

// NewClient returns a client. Zero option fields fall back to defaults and
// a nil runner uses ExecRunner.
func NewClient(opts Options, colors Colors, runner Runner) *Client {
	def := DefaultOptions()
	if opts.Binary == "" {
		opts.Binary = def.Binary
	}
	if opts.Item == "" {
		opts.Item = def.Item
	}
	if opts.Position == "" {
		opts.Position = def.Position
	}
	if opts.Icon == "" {
		opts.Icon = def.Icon
	}
	if opts.UpdateFreq <= 0 {
		opts.UpdateFreq = def.UpdateFreq
	}
	if opts.Script == "" {
		opts.Script = def.Script
	}
	if opts.Program == "" {
		opts.Program = def.Program
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{opts: opts, colors: colors, runner: runner}
}

// Options returns the effective options.
func (c *Client) Options() Options {
	return c.opts
}

// Available reports whether the sketchybar binary can be found.
func (c *Client) Available() bool {
	_, err := exec.LookPath(c.opts.Binary)
	return err == nil
}

// Version returns the output of `sketchybar --version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(lines[0]), nil
}

// LoadArgs builds the arguments for Load.
func (c *Client) LoadArgs(icon string) []string {
	if icon == "" {
		icon = c.opts.Icon
	}
	item := c.opts.Item

	args := []string{
		"--add", "item", item, c.opts.Position,
		"--set", item,
		"icon=" + icon,
		"update_freq=" + strconv.Itoa(c.opts.UpdateFreq),
		"updates=when_shown",
		"script=" + c.opts.Script,
		fmt.Sprintf("click_script=%s --set %s popup.drawing=toggle", c.opts.Binary, item),
		"label.align=left",
		"popup.blur_radius=50",
		"popup.align=center",
		"popup.horizontal=true",
		"popup.y_offset=3",
		"popup.background.border_color=" + c.colors.Transparent,
		"popup.background.color=" + c.colors.PopupBackground,
	}
	args = append(args, c.popupArgs("Start", c.opts.Program+" start")...)
	args = append(args, c.popupArgs("Stop", c.opts.Program+" sketchybar hide")...)
	return args
}

func (c *Client) popupArgs(name, clickScript string) []string {
	id := c.opts.Item + "." + strings.ToLower(name)
	return []string{
		"--add", "item", id, "popup." + c.opts.Item,
		"--set", id,
		"label=" + name,
		"click_script=" + clickScript,
	}
}

func (c *Client) Load(ctx context.Context, icon string) error {
	_, err := c.run(ctx, c.LoadArgs(icon)...)
	return err
}

func (c *Client) Unload(ctx context.Context) error {
	_, err := c.run(ctx, "--remove", c.opts.Item)
	return err
}

func (c *Client) Update(ctx context.Context, label string) error {
	_, err := c.run(ctx, "--set", c.opts.Item, "label="+label)
	return err
}

func (c *Client) Show(ctx context.Context) error {
	_, err := c.run(ctx, "--set", c.opts.Item, "drawing=on")
	return err
}

func (c *Client) Hide(ctx context.Context) error {
	_, err := c.run(ctx, "--set", c.opts.Item, "drawing=off", "popup.drawing=toggle")
	return err
}

// run invokes sketchybar under the client timeout.
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	util.Debugf("exec %s %s", c.opts.Binary, strings.Join(args, " "))
	out, err := c.runner.Run(ctx, c.opts.Binary, args...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return out, fmt.Errorf("%s %s: %w: %s", c.opts.Binary, args[0], err, msg)
		}
		return out, fmt.Errorf("%s %s: %w", c.opts.Binary, args[0], err)
	}
	return out, nil
}
