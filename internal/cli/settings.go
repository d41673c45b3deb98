package cli

import (
	"fmt"

	"github.com/imgajeed76/pomo/internal/config"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/ui/table"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings [key] [value]",
		Short: "Get and set pomo settings",
		Long: `Get and set pomo settings.

Settings are stored in ` + "`config.toml`" + ` in the pomo config directory.

Available settings:

` + config.GenerateHelpText() + `

Examples:
  pomo settings labels.work "Deep Work"   # Set value
  pomo settings sketchybar.position       # Get value
  pomo settings --list                    # List all settings`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings(a, cmd, args)
		},
	}

	cmd.Flags().BoolP("list", "l", false, "List all settings")
	cmd.Flags().Bool("json", false, "Output --list as JSON")

	return cmd
}

func runSettings(a *app, cmd *cobra.Command, args []string) error {
	listAll, _ := cmd.Flags().GetBool("list")
	asJSON, _ := cmd.Flags().GetBool("json")
	w := out(cmd)

	if listAll || len(args) == 0 {
		if len(args) == 0 && !listAll {
			fmt.Fprintln(w, styles.SectionHeader("Settings")+" "+styles.Mute(a.settings.Path()))
			fmt.Fprintln(w)
		}
		return listSettings(a, cmd, asJSON)
	}

	key := args[0]
	if _, ok := config.FindField(key); !ok {
		return util.NewError(nil, fmt.Sprintf("Unknown setting '%s'", key)).
			WithSuggestion("pomo settings --list   # Show all settings")
	}

	// Get value
	if len(args) == 1 {
		value, _ := a.settings.GetValue(key)
		fmt.Fprintln(w, value)
		return nil
	}

	if a.settingsErr != nil {
		return util.FileUnreadableError(a.settings.Path(), a.settingsErr).
			WithMessage("Refusing to overwrite a settings file that does not parse")
	}

	// Set value
	if err := a.settings.SetValue(key, args[1]); err != nil {
		return err
	}
	if err := a.settings.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	value, _ := a.settings.GetValue(key)
	fmt.Fprintln(w, styles.SuccessMsg(fmt.Sprintf("%s = %s", key, value)))
	return nil
}

func listSettings(a *app, cmd *cobra.Command, asJSON bool) error {
	keys := config.ListKeys()
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		value, _ := a.settings.GetValue(key)
		field, _ := config.FindField(key)
		rows = append(rows, []string{key, value, field.Default})
	}
	return table.Display(out(cmd), []string{"key", "value", "default"}, rows, table.DisplayOptions{JSON: asJSON})
}
