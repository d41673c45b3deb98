package cli

import (
	"fmt"
	"strconv"

	"github.com/imgajeed76/pomo/internal/session"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [work] [short] [long]",
		Short: "Set the session durations in minutes",
		Long: `Set the work, short break and long break durations in minutes and print
the resulting configuration. Omitted values are left unchanged.

Changing durations while a session is running keeps its start time, so the
time already spent is measured against the new durations. Use --restart to
begin the session again instead.

Examples:
  pomo config                 # Show the current configuration
  pomo config 50              # 50 minute work blocks
  pomo config 25 5 15         # Work, short break, long break
  pomo config --blocks 4      # Four work blocks before a long break`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(a, cmd, args)
		},
	}

	cmd.Flags().Int("blocks", 0, "Work blocks before a long break")
	cmd.Flags().Bool("restart", false, "Restart a running session at the new durations")

	return cmd
}

func runConfig(a *app, cmd *cobra.Command, args []string) error {
	restart, _ := cmd.Flags().GetBool("restart")

	var ch session.Changes
	targets := []**int{&ch.WorkMinutes, &ch.ShortBreakMinutes, &ch.LongBreakMinutes}
	names := []string{"work", "short", "long"}
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return util.InvalidCadenceError(fmt.Sprintf("%s duration %q is not a whole number of minutes", names[i], arg))
		}
		*targets[i] = &v
	}
	if cmd.Flags().Changed("blocks") {
		blocks, _ := cmd.Flags().GetInt("blocks")
		ch.Blocks = &blocks
	}

	var warnReinterpret bool
	rec, err := a.withRecord(cmd, func(r *session.Record) error {
		if err := r.Reconfigure(ch); err != nil {
			return err
		}
		switch {
		case restart && r.Running:
			r.Begin(a.now())
		case r.Running && !ch.Empty():
			warnReinterpret = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if warnReinterpret {
		a.warn(cmd, "A session is running; time already spent now counts against the new durations (use --restart to begin again)")
	}

	printConfig(a, cmd, rec)
	return nil
}

func printConfig(a *app, cmd *cobra.Command, rec session.Record) {
	w := out(cmd)
	c := rec.Cadence()

	fmt.Fprintf(w, "%s %s\n", styles.Label("work        "), util.Minutes(c.Work))
	fmt.Fprintf(w, "%s %s\n", styles.Label("short break "), util.Minutes(c.ShortBreak))
	fmt.Fprintf(w, "%s %s\n", styles.Label("long break  "), util.Minutes(c.LongBreak))
	fmt.Fprintf(w, "%s %d\n", styles.Label("blocks      "), c.Blocks)
	fmt.Fprintf(w, "%s %s\n", styles.Label("cycle       "), util.Minutes(c.CycleLength()))

	if rec.Running {
		fmt.Fprintf(w, "%s %s (since %s)\n", styles.Label("running     "),
			styles.ID(rec.SessionID, true), rec.StartedAt().Format("15:04:05"))
	} else {
		fmt.Fprintf(w, "%s %s\n", styles.Label("running     "), styles.Mute("no"))
	}
}
