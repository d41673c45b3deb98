package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Settings holds pomo's user preferences, stored in the user's config
// directory. Timer cadence is not a setting: it lives in the session state
// and `pomo stop` always resets it to the built-in defaults.
type Settings struct {
	Labels     LabelSettings      `toml:"labels"`
	Sketchybar SketchybarSettings `toml:"sketchybar"`
	State      StateSettings      `toml:"state"`

	// path the settings were loaded from; not serialized
	path string
}

// LabelSettings are the texts printed in front of the remaining time
type LabelSettings struct {
	Work       string `toml:"work" config:"labels.work" default:"Stay Focused" desc:"Label shown during work"`
	ShortBreak string `toml:"short_break" config:"labels.short_break" default:"Short Break" desc:"Label shown during a short break"`
	LongBreak  string `toml:"long_break" config:"labels.long_break" default:"Long Break" desc:"Label shown during a long break"`
}

// SketchybarSettings configure the status-bar item
type SketchybarSettings struct {
	Binary     string `toml:"binary" config:"sketchybar.binary" default:"sketchybar" desc:"sketchybar executable"`
	Item       string `toml:"item" config:"sketchybar.item" default:"pomo" desc:"Item name"`
	Position   string `toml:"position" config:"sketchybar.position" default:"center" desc:"Bar position (left, center, right)"`
	Icon       string `toml:"icon" config:"sketchybar.icon" default:"󰚭" desc:"Default item icon"`
	UpdateFreq int    `toml:"update_freq" config:"sketchybar.update_freq" default:"1" min:"1" max:"3600" desc:"Seconds between label updates"`
	Script     string `toml:"script" config:"sketchybar.script" default:"pomo sketchybar update" desc:"Script sketchybar runs on update"`
}

// StateSettings locate the session state file
type StateSettings struct {
	Path string `toml:"path" config:"state.path" desc:"State file (empty = $TMPDIR/pomo-cli-state)"`
}

// DefaultSettings returns settings with default values
func DefaultSettings() *Settings {
	return &Settings{
		Labels: LabelSettings{
			Work:       "Stay Focused",
			ShortBreak: "Short Break",
			LongBreak:  "Long Break",
		},
		Sketchybar: SketchybarSettings{
			Binary:     "sketchybar",
			Item:       "pomo",
			Position:   "center",
			Icon:       "󰚭",
			UpdateFreq: 1,
			Script:     "pomo sketchybar update",
		},
	}
}

// NewSettings returns default settings bound to path
func NewSettings(path string) *Settings {
	s := DefaultSettings()
	s.path = path
	return s
}

// SettingsDir returns the pomo config directory.
// Follows XDG Base Directory spec on Linux, platform conventions elsewhere
func SettingsDir(env Env) string {
	if xdg := env.Get("XDG_CONFIG_HOME"); xdg != "" && runtime.GOOS != "windows" {
		return filepath.Join(xdg, "pomo")
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(env), "Library", "Application Support", "pomo")
	case "windows":
		if appData := env.Get("APPDATA"); appData != "" {
			return filepath.Join(appData, "pomo")
		}
		return filepath.Join(homeDir(env), "AppData", "Roaming", "pomo")
	default: // Linux and others - follow XDG
		return filepath.Join(homeDir(env), ".config", "pomo")
	}
}

func homeDir(env Env) string {
	if home := env.Get("HOME"); home != "" {
		return home
	}
	return env.Get("USERPROFILE")
}

// SettingsPath returns the path to the settings file
func SettingsPath(env Env) string {
	return filepath.Join(SettingsDir(env), "config.toml")
}

// LoadSettingsFrom reads a settings file. A missing file yields defaults.
func LoadSettingsFrom(path string) (*Settings, error) {
	s := NewSettings(path)

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, s); err != nil {
			return nil, err
		}
	}

	// Apply defaults for any missing values
	s.fillDefaults()
	return s, nil
}

func (s *Settings) fillDefaults() {
	d := DefaultSettings()

	if s.Labels.Work == "" {
		s.Labels.Work = d.Labels.Work
	}
	if s.Labels.ShortBreak == "" {
		s.Labels.ShortBreak = d.Labels.ShortBreak
	}
	if s.Labels.LongBreak == "" {
		s.Labels.LongBreak = d.Labels.LongBreak
	}
	if s.Sketchybar.Binary == "" {
		s.Sketchybar.Binary = d.Sketchybar.Binary
	}
	if s.Sketchybar.Item == "" {
		s.Sketchybar.Item = d.Sketchybar.Item
	}
	if s.Sketchybar.Position == "" {
		s.Sketchybar.Position = d.Sketchybar.Position
	}
	if s.Sketchybar.Icon == "" {
		s.Sketchybar.Icon = d.Sketchybar.Icon
	}
	if s.Sketchybar.UpdateFreq <= 0 {
		s.Sketchybar.UpdateFreq = d.Sketchybar.UpdateFreq
	}
	if s.Sketchybar.Script == "" {
		s.Sketchybar.Script = d.Sketchybar.Script
	}
	// NOTE: State.Path is not defaulted; empty selects the temp directory.
}

// Path returns the file the settings were loaded from
func (s *Settings) Path() string {
	return s.path
}

// Save writes the settings file atomically: temp file, then rename.
func (s *Settings) Save() error {
	path := s.Path()
	if path == "" {
		return errors.New("settings are not bound to a file")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(s); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// GetValue returns a settings value by key (uses reflection)
func (s *Settings) GetValue(key string) (string, bool) {
	return getFieldValue(s, key)
}

// SetValue sets a settings value by key (uses reflection with validation)
func (s *Settings) SetValue(key, value string) error {
	return setFieldValue(s, key, value)
}
