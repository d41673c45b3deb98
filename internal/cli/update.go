package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Print the current phase and time left",
		Long: `Print the current phase and the time left in it, e.g.

  Stay Focused: 12:34

Prints an empty line when no session is running. The output is plain text
so it can be used from scripts and status bars.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := a.withRecord(cmd, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), rec.Summary(a.now(), a.labels()))
			return nil
		},
	}
}
