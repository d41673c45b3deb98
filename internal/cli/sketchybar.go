package cli

import (
	"context"

	"github.com/imgajeed76/pomo/internal/session"
	"github.com/imgajeed76/pomo/internal/sketchybar"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

func newSketchybarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sketchybar",
		Short: "Drive the sketchybar status-bar item",
		Long: `Manage a sketchybar item that shows the pomodoro phase.

Typical sketchybarrc line:
  pomo sketchybar load

sketchybar then runs 'pomo sketchybar update' every second while the item
is visible. Failures talking to sketchybar are reported as warnings and
never change the exit status.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "load [icon]",
			Short: "Add the item and its Start/Stop popup",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				icon := ""
				if len(args) == 1 {
					icon = args[0]
				}
				return a.barCommand(cmd, "load", nil, func(ctx context.Context, b sketchybar.Bridge, _ session.Record) error {
					return b.Load(ctx, icon)
				})
			},
		},
		&cobra.Command{
			Use:   "unload",
			Short: "Stop the session and remove the item",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				reset := func(r *session.Record) error {
					r.Reset()
					return nil
				}
				return a.barCommand(cmd, "unload", reset, func(ctx context.Context, b sketchybar.Bridge, _ session.Record) error {
					return b.Unload(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "update",
			Short: "Set the item label to the current phase",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.barCommand(cmd, "update", nil, func(ctx context.Context, b sketchybar.Bridge, rec session.Record) error {
					return b.Update(ctx, rec.Summary(a.now(), a.labels()))
				})
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Draw the item",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.barCommand(cmd, "show", nil, func(ctx context.Context, b sketchybar.Bridge, _ session.Record) error {
					return b.Show(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "hide",
			Short: "Hide the item and close its popup",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.barCommand(cmd, "hide", nil, func(ctx context.Context, b sketchybar.Bridge, _ session.Record) error {
					return b.Hide(ctx)
				})
			},
		},
	)

	return cmd
}

// barCommand applies mutate to the session record, then calls the bridge.
// Only state errors fail the command.
func (a *app) barCommand(cmd *cobra.Command, op string, mutate func(*session.Record) error,
	call func(context.Context, sketchybar.Bridge, session.Record) error) error {
	rec, err := a.withRecord(cmd, mutate)
	if err != nil {
		return err
	}
	util.Debugf("sketchybar %s (running=%t)", op, rec.Running)
	a.barResult(cmd, op, call(cmd.Context(), a.bar, rec))
	return nil
}
