package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/imgajeed76/pomo/internal/session"
	"github.com/imgajeed76/pomo/internal/sketchybar"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check system health and diagnose issues",
		Long: `Run diagnostics to check if pomo is properly configured.

This command checks:
  - Session state file
  - Settings file
  - sketchybar availability
  - Color overrides in the environment`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(a, cmd)
		},
	}
}

func runDoctor(a *app, cmd *cobra.Command) error {
	w := out(cmd)
	fmt.Fprintln(w, styles.Boldf("pomo doctor"))
	fmt.Fprintln(w)

	failed := 0

	// State file
	fmt.Fprint(w, "Checking state file... ")
	rec, err := a.store.Load()
	switch {
	case errors.Is(err, session.ErrCorruptState):
		fmt.Fprintln(w, styles.ErrorText("CORRUPT"))
		detail(w, err.Error())
		hint(w, "Run 'pomo stop' to replace it with defaults")
		failed++
	case fileExists(a.store.Path):
		state := "stopped"
		if rec.Running {
			state = "running"
		}
		fmt.Fprintln(w, styles.SuccessText("OK")+fmt.Sprintf(" (%s, %s)", a.store.Path, state))
	default:
		fmt.Fprintln(w, styles.Mute("NOT CREATED"))
		detail(w, a.store.Path+" will be created on first use")
	}

	// State lock
	fmt.Fprint(w, "Checking state lock... ")
	if unlock, err := a.store.Lock(cmd.Context()); err != nil {
		fmt.Fprintln(w, styles.ErrorText("FAILED"))
		detail(w, "Error: "+err.Error())
		failed++
	} else {
		_ = unlock()
		fmt.Fprintln(w, styles.SuccessText("OK"))
	}

	// Settings
	fmt.Fprint(w, "Checking settings... ")
	switch {
	case a.settingsErr != nil:
		fmt.Fprintln(w, styles.ErrorText("INVALID"))
		detail(w, a.settingsErr.Error())
		hint(w, "Fix or remove "+a.settings.Path())
		failed++
	case fileExists(a.settings.Path()):
		fmt.Fprintln(w, styles.SuccessText("OK")+fmt.Sprintf(" (%s)", a.settings.Path()))
	default:
		fmt.Fprintln(w, styles.Mute("DEFAULTS"))
		hint(w, "Run 'pomo settings <key> <value>' to create a settings file")
	}

	// sketchybar
	fmt.Fprint(w, "Checking sketchybar... ")
	binary := a.bar.Options().Binary
	if !a.bar.Available() {
		fmt.Fprintln(w, styles.WarningText("NOT FOUND"))
		detail(w, fmt.Sprintf("'%s' is not on PATH; the status-bar commands will do nothing", binary))
	} else if version, err := a.bar.Version(cmd.Context()); err != nil {
		fmt.Fprintln(w, styles.WarningText("NOT RESPONDING"))
		detail(w, "Error: "+err.Error())
	} else {
		fmt.Fprintln(w, styles.SuccessText("OK")+fmt.Sprintf(" (%s)", version))
	}

	// Color overrides
	fmt.Fprint(w, "Checking color overrides... ")
	var invalid, set int
	for _, v := range sketchybar.DefaultColors().Vars() {
		value, ok := a.env.Lookup(v.Env)
		if !ok {
			continue
		}
		set++
		if !sketchybar.IsColor(value) {
			if invalid == 0 {
				fmt.Fprintln(w, styles.WarningText("IGNORED"))
			}
			invalid++
			detail(w, fmt.Sprintf("%s=%q is not 0xAARRGGBB", v.Env, value))
		}
	}
	switch {
	case invalid > 0:
	case set == 0:
		fmt.Fprintln(w, styles.Mute("NONE"))
	default:
		fmt.Fprintln(w, styles.SuccessText("OK")+fmt.Sprintf(" (%d set)", set))
	}

	fmt.Fprintln(w)
	if failed == 0 {
		fmt.Fprintln(w, styles.SuccessMsg("All checks passed!"))
	} else {
		fmt.Fprintln(w, styles.FailMsg(fmt.Sprintf("%d check(s) failed. See above for details.", failed)))
	}

	return nil
}

// detail prints an indented line under a check result
func detail(w io.Writer, text string) {
	fmt.Fprintln(w, styles.Indent(text, 2))
}

// hint prints an indented suggestion under a check result
func hint(w io.Writer, text string) {
	fmt.Fprintln(w, styles.Indent(styles.Mute(styles.SymbolArrow+" "+text), 2))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
