package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/imgajeed76/pomo/internal/cadence"
	"github.com/imgajeed76/pomo/internal/config"
	"github.com/imgajeed76/pomo/internal/session"
	"github.com/imgajeed76/pomo/internal/sketchybar"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

// Deps are the pieces of the outside world a pomo invocation touches.
// Zero fields select the real implementations.
type Deps struct {
	Now          func() time.Time
	Runner       sketchybar.Runner
	Stdout       io.Writer
	Stderr       io.Writer
	SettingsPath string
	// Env replaces the process environment (and --env-file) when set
	Env *config.Env
}

// app is everything one invocation needs, built once before any command
// runs and passed to the command constructors.
type app struct {
	deps Deps

	env         config.Env
	settings    *config.Settings
	settingsErr error
	store       *session.Store
	bar         *sketchybar.Client
	now         func() time.Time
}

// setup loads environment, settings and wires the store and the bar client.
func (a *app) setup(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	envFiles, _ := cmd.Flags().GetStringArray("env-file")

	if a.deps.Env != nil {
		a.env = *a.deps.Env
	} else {
		env, err := config.LoadEnv(envFiles...)
		if err != nil {
			return err
		}
		a.env = env
	}

	util.ConfigureDebug(verbose || a.env.Bool(config.EnvDebug), cmd.ErrOrStderr())

	styles.SetNoColor(noColor || a.env.Get("NO_COLOR") != "" || a.env.Get(config.EnvNoColor) != "" || !styles.IsTTY())

	a.now = a.deps.Now
	if a.now == nil {
		a.now = time.Now
	}

	settingsPath := a.deps.SettingsPath
	if settingsPath == "" {
		settingsPath = config.SettingsPath(a.env)
	}
	settings, err := config.LoadSettingsFrom(settingsPath)
	if err != nil {
		// Unreadable settings never block the timer.
		a.settingsErr = err
		util.Debugf("settings %s: %v", settingsPath, err)
		settings = config.NewSettings(settingsPath)
	}
	a.settings = settings

	a.store = session.NewStore(a.statePath())
	util.Debugf("state file %s", a.store.Path)

	s := settings.Sketchybar
	a.bar = sketchybar.NewClient(sketchybar.Options{
		Binary:     s.Binary,
		Item:       s.Item,
		Position:   s.Position,
		Icon:       s.Icon,
		UpdateFreq: s.UpdateFreq,
		Script:     s.Script,
	}, sketchybar.LoadColors(a.env), a.deps.Runner)

	return nil
}

// statePath resolves the state file: POMO_STATE_FILE, then the state.path
// setting, then the temp directory.
func (a *app) statePath() string {
	if p := a.env.Get(config.EnvStateFile); p != "" {
		return p
	}
	return a.settings.State.Path
}

func (a *app) labels() cadence.Labels {
	l := a.settings.Labels
	return cadence.Labels{Work: l.Work, ShortBreak: l.ShortBreak, LongBreak: l.LongBreak}
}

// withRecord runs one load → mutate → save cycle under the state lock. The
// record is written back even when mutate is nil or fails, so a corrupt
// file is replaced by a clean one.
func (a *app) withRecord(cmd *cobra.Command, mutate func(r *session.Record) error) (session.Record, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	unlock, err := a.store.Lock(ctx)
	if err != nil {
		return session.Record{}, util.StateIOError(a.store.Path, err)
	}
	defer func() {
		if err := unlock(); err != nil {
			util.Debugf("unlock %s: %v", a.store.LockPath(), err)
		}
	}()

	rec, err := a.store.Load()
	if err != nil {
		a.warn(cmd, fmt.Sprintf("state file %s is unreadable, starting from defaults (%v)", a.store.Path, err))
	}

	var mutErr error
	if mutate != nil {
		mutErr = mutate(&rec)
	}

	if err := a.store.Save(rec); err != nil {
		return rec, util.StateIOError(a.store.Path, err)
	}
	return rec, mutErr
}

// barResult reports a failed sketchybar call without failing the command.
func (a *app) barResult(cmd *cobra.Command, op string, err error) {
	if err == nil {
		return
	}
	util.Debugf("sketchybar %s failed: %v", op, err)
	a.warn(cmd, fmt.Sprintf("sketchybar %s: %v", op, err))
}

func (a *app) warn(cmd *cobra.Command, msg string) {
	fmt.Fprintln(cmd.ErrOrStderr(), styles.WarningMsg(msg))
}

// out returns the writer for command output
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
