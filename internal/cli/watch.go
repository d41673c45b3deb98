package cli

import (
	"fmt"

	"github.com/imgajeed76/pomo/internal/session"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/ui/timer"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live countdown in the terminal",
		Long: `Show the current phase with a countdown and progress bar, refreshed
every second. Sessions started or stopped from another shell show up on
the next tick. Press y to copy the status text, q to quit.

When stdout is not a terminal (or with --once) a single frame is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := timer.Options{
				// Reads go straight to the store: saves are atomic renames,
				// so the lock is not needed to see a whole record.
				Load: func() (session.Record, error) {
					return a.store.Load()
				},
				Labels: a.labels(),
				Now:    a.now,
				Output: out(cmd),
			}

			if once || !styles.IsTTY() {
				fmt.Fprint(out(cmd), timer.String(opts))
				return nil
			}
			return timer.Run(opts)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Print one frame and exit")
	return cmd
}
