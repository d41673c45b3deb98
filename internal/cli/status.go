package cli

import (
	"fmt"

	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session in detail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.withRecord(cmd, nil)
			if err != nil {
				return err
			}

			w := out(cmd)
			now := a.now()
			c := rec.Cadence()

			pos, ok := rec.Position(now)
			if ok {
				labels := a.labels()
				fmt.Fprintf(w, "%s %s\n",
					styles.Phase(pos.Phase.String(), styles.SymbolInfo+" "+labels.For(pos.Phase)),
					styles.Clock(util.Clock(pos.Remaining)))
				fmt.Fprintln(w)
				fmt.Fprintf(w, "  %s %s\n", styles.Label("phase    "), pos.Phase)
				fmt.Fprintf(w, "  %s %s\n", styles.Label("session  "), styles.ID(rec.SessionID, true))
				fmt.Fprintf(w, "  %s %s (%s)\n", styles.Label("started  "),
					rec.StartedAt().Format("15:04:05"), util.RelativeTime(rec.StartedAt(), now))
				fmt.Fprintf(w, "  %s %s\n", styles.Label("elapsed  "), util.Clock(rec.Elapsed(now)))
			} else {
				fmt.Fprintln(w, styles.Phase("", styles.SymbolPending+" No session running"))
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "  %s %s work, %s short, %s long, %d blocks\n", styles.Label("cadence  "),
				util.Minutes(c.Work), util.Minutes(c.ShortBreak), util.Minutes(c.LongBreak), c.Blocks)
			fmt.Fprintf(w, "  %s %s\n", styles.Label("state    "), styles.Mute(a.store.Path))

			if !ok {
				fmt.Fprintln(w)
				fmt.Fprintln(w, styles.MutedMsg("Run 'pomo start' to begin a session"))
			}
			return nil
		},
	}
}
