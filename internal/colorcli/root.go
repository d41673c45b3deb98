// Package colorcli implements the colorparse command.
package colorcli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/imgajeed76/pomo/internal/config"
	"github.com/imgajeed76/pomo/internal/palette"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/ui/table"
	"github.com/imgajeed76/pomo/internal/util"
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

// Deps replace the process environment and output streams in tests.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    *config.Env
}

type options struct {
	scheme     string
	schemesDir string
	format     string
	alpha      string
	list       bool
	json       bool
	envFiles   []string
	noColor    bool
}

// NewRootCmd builds the colorparse command.
func NewRootCmd(deps Deps) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "colorparse <alias>",
		Short: "Print a Base16 scheme color by name",
		Long: `colorparse prints the value of a Base16 color slot, selected by slot
name (base00..base0F) or by one of its semantic aliases such as
"background", "comments" or "string". Matching ignores case.

The scheme file is <COLOR_SCHEMES_DIR>/<COLOR_SCHEME>.yaml and must have
base00..base0F at the top level. The value is printed without a trailing
newline so it can be embedded in other commands.

Examples:
  colorparse background                       # 282c34
  colorparse string --format argb --alpha cc  # 0xcc98c379
  colorparse --list                           # Every slot, alias and value`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(deps, opts.envFiles)
			if err != nil {
				return err
			}
			styles.SetNoColor(opts.noColor || env.Get("NO_COLOR") != "" || !styles.IsTTY())
			util.ConfigureDebug(env.Bool(config.EnvDebug), cmd.ErrOrStderr())

			if opts.list {
				return runList(cmd, env, opts)
			}
			if len(args) == 0 {
				return util.MissingArgumentError("alias", "colorparse background")
			}
			return runResolve(cmd, env, opts, args[0])
		},
	}

	if deps.Stdout != nil {
		cmd.SetOut(deps.Stdout)
	}
	if deps.Stderr != nil {
		cmd.SetErr(deps.Stderr)
	}

	f := cmd.Flags()
	f.StringVar(&opts.scheme, "scheme", "", "Scheme name (default $COLOR_SCHEME)")
	f.StringVar(&opts.schemesDir, "schemes-dir", "", "Directory holding <scheme>.yaml (default $COLOR_SCHEMES_DIR)")
	f.StringVarP(&opts.format, "format", "f", "raw", "Output format: raw, hex or argb")
	f.StringVar(&opts.alpha, "alpha", "ff", "Alpha byte for --format argb")
	f.BoolVarP(&opts.list, "list", "l", false, "List every slot with its aliases and value")
	f.BoolVar(&opts.json, "json", false, "Output --list as JSON")
	f.StringArrayVar(&opts.envFiles, "env-file", nil, "Read KEY=value defaults from a dotenv file (repeatable)")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// Execute runs colorparse against the real environment.
func Execute() error {
	if err := NewRootCmd(Deps{}).Execute(); err != nil {
		var cliErr *util.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintln(os.Stderr, cliErr.Format())
		} else {
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

func loadEnv(deps Deps, envFiles []string) (config.Env, error) {
	if deps.Env != nil {
		return *deps.Env, nil
	}
	return config.LoadEnv(envFiles...)
}

// schemePath resolves the scheme file from flags, falling back to the
// environment.
func schemePath(env config.Env, opts options) (string, error) {
	scheme := opts.scheme
	if scheme == "" {
		v, err := env.Require(config.EnvColorScheme, "scheme")
		if err != nil {
			return "", err
		}
		scheme = v
	}

	dir := opts.schemesDir
	if dir == "" {
		v, err := env.Require(config.EnvColorSchemesDir, "schemes-dir")
		if err != nil {
			return "", err
		}
		dir = v
	}
	return palette.SchemePath(dir, scheme), nil
}

func runResolve(cmd *cobra.Command, env config.Env, opts options, alias string) error {
	format, err := palette.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	path, err := schemePath(env, opts)
	if err != nil {
		return err
	}
	util.Debugf("scheme file %s", path)

	p, err := palette.Load(path)
	if err != nil {
		return err
	}

	value, err := palette.Resolve(p, alias)
	if err != nil {
		return err
	}

	formatted, err := palette.FormatValue(value, format, opts.alpha)
	if err != nil {
		return util.InvalidPaletteError(path, fmt.Sprintf("%s: %v", alias, err))
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), formatted)
	return err
}

// runList prints the alias table. Values are included when a scheme is
// configured; without one only slots and aliases are shown.
func runList(cmd *cobra.Command, env config.Env, opts options) error {
	var p *palette.Palette

	path, err := schemePath(env, opts)
	switch {
	case errors.Is(err, util.ErrMissingEnvironment):
		util.Debugf("no scheme configured, listing aliases only")
	case err != nil:
		return err
	default:
		if p, err = palette.Load(path); err != nil {
			return err
		}
	}

	swatches := p != nil && !opts.json && !styles.NoColor()

	columns := []string{"slot", "aliases"}
	if p != nil {
		columns = append(columns, "value")
	}
	if swatches {
		columns = append(columns, "")
	}

	var rows [][]string
	for _, s := range palette.Slots() {
		row := []string{s.Name, strings.Join(s.Aliases, ", ")}
		if p != nil {
			row = append(row, p.Value(s.Index))
		}
		if swatches {
			row = append(row, styles.Swatch(p.Value(s.Index)))
		}
		rows = append(rows, row)
	}

	w := cmd.OutOrStdout()
	if p != nil && !opts.json {
		title := p.Scheme
		if title == "" {
			title = path
		}
		fmt.Fprintln(w, styles.SectionHeader(title)+" "+styles.Mute(p.Author))
		fmt.Fprintln(w)
	}
	return table.Display(w, columns, rows, table.DisplayOptions{JSON: opts.json, Footer: true})
}
