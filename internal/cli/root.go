package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// NewRootCmd builds the pomo command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:   "pomo",
		Short: "A pomodoro timer for the shell and sketchybar",
		Long: `pomo tracks a pomodoro session between invocations.

'pomo start' remembers when the session began; every later call works out
the current phase (work, short break or long break) and the time left in
it. 'pomo sketchybar load' adds a status-bar item that shows the same text.

State lives in a small file in the temp directory, so there is no daemon.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	if deps.Stdout != nil {
		rootCmd.SetOut(deps.Stdout)
	}
	if deps.Stderr != nil {
		rootCmd.SetErr(deps.Stderr)
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringArray("env-file", nil, "Read KEY=value defaults from a dotenv file (repeatable)")

	// Version flag template to show more info
	rootCmd.SetVersionTemplate(fmt.Sprintf("pomo version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	rootCmd.AddCommand(
		newStartCmd(a),
		newConfigCmd(a),
		newUpdateCmd(a),
		newStopCmd(a),
		newSketchybarCmd(a),
		newStatusCmd(a),
		newWatchCmd(a),
		newSettingsCmd(a),
		newDoctorCmd(a),
		newVersionCmd(),
		newCompletionCmd(rootCmd),
	)

	return rootCmd
}

// Execute runs pomo against the real environment.
func Execute() error {
	rootCmd := NewRootCmd(Deps{})
	if err := rootCmd.Execute(); err != nil {
		// Check if it's a structured CLIError
		var cliErr *util.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintln(os.Stderr, cliErr.Format())
		} else {
			// Simple error - still format nicely
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pomo.

To load completions:

Bash:
  $ source <(pomo completion bash)

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pomo completion zsh > "${fpath[1]}/_pomo"

Fish:
  $ pomo completion fish | source

PowerShell:
  PS> pomo completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := out(cmd)
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(w)
			case "zsh":
				return rootCmd.GenZshCompletion(w)
			case "fish":
				return rootCmd.GenFishCompletion(w, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := out(cmd)
			fmt.Fprintf(w, "pomo version %s\n", Version)
			fmt.Fprintf(w, "  commit: %s\n", CommitSHA)
			fmt.Fprintf(w, "  built:  %s\n", BuildDate)
		},
	}
}
