package cli

import (
	"fmt"

	"github.com/imgajeed76/pomo/internal/session"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

func newStartCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a pomodoro session",
		Long: `Start a pomodoro session now.

The configured durations are kept; only the start time is recorded.
Starting while a session is running restarts it from the first work block.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.withRecord(cmd, func(r *session.Record) error {
				r.Begin(a.now())
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), styles.SuccessMsg(fmt.Sprintf("Session %s started", styles.ID(rec.SessionID, true))))
			return nil
		},
	}
}

func newStopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the session and reset durations to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var wasRunning bool
			_, err := a.withRecord(cmd, func(r *session.Record) error {
				wasRunning = r.Running
				r.Reset()
				return nil
			})
			if err != nil {
				return err
			}
			if wasRunning {
				fmt.Fprintln(out(cmd), styles.SuccessMsg("Session stopped"))
			} else {
				util.Debugf("stop: no session was running")
			}
			return nil
		},
	}
}
