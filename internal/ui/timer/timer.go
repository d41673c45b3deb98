// Package timer is the live countdown shown by `pomo watch`.
package timer

import (
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/pomo/internal/cadence"
	"github.com/imgajeed76/pomo/internal/session"
	"github.com/imgajeed76/pomo/internal/ui/styles"
	"github.com/imgajeed76/pomo/internal/util"
)

// ═══════════════════════════════════════════════════════════════════════════
// Constants
// ═══════════════════════════════════════════════════════════════════════════

const (
	// DefaultInterval is how often the state file is re-read.
	DefaultInterval = time.Second

	maxBarWidth   = 48
	statusTimeout = 2 * time.Second
)

// Options configure a watch.
type Options struct {
	// Load returns the current record. It is called on every tick so
	// `pomo start` / `pomo stop` from another shell show up immediately.
	Load     func() (session.Record, error)
	Labels   cadence.Labels
	Now      func() time.Time
	Interval time.Duration
	Output   io.Writer
}

// ═══════════════════════════════════════════════════════════════════════════
// Key Bindings
// ═══════════════════════════════════════════════════════════════════════════

type keyMap struct {
	Copy key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Copy, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Copy: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy status")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// ═══════════════════════════════════════════════════════════════════════════
// Model
// ═══════════════════════════════════════════════════════════════════════════

type tickMsg time.Time

type recordMsg struct {
	rec session.Record
	err error
}

type statusClearMsg struct{}

type model struct {
	opts Options

	rec     session.Record
	loadErr error
	loaded  bool
	now     time.Time

	bar  progress.Model
	help help.Model

	statusMsg   string
	statusUntil time.Time

	// static frames have no key help
	static bool
}

func newModel(opts Options) model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return model{
		opts: opts,
		now:  opts.Now(),
		bar:  bar,
		help: help.New(),
	}
}

// Run shows the countdown until the user quits.
func Run(opts Options) error {
	m := newModel(opts)

	var progOpts []tea.ProgramOption
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	_, err := tea.NewProgram(m, progOpts...).Run()
	return err
}

// ═══════════════════════════════════════════════════════════════════════════
// Bubble Tea Interface
// ═══════════════════════════════════════════════════════════════════════════

func (m model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

func (m model) load() tea.Cmd {
	return func() tea.Msg {
		rec, err := m.opts.Load()
		return recordMsg{rec: rec, err: err}
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(maxBarWidth, max(msg.Width-4, 10))
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = m.opts.Now()
		return m, tea.Batch(m.load(), m.tick())

	case recordMsg:
		m.rec = msg.rec
		m.loadErr = msg.err
		m.loaded = true
		if msg.err != nil {
			util.Debugf("watch: %v", msg.err)
		}
		return m, nil

	case statusClearMsg:
		if !m.statusUntil.IsZero() && !m.now.Before(m.statusUntil) {
			m.statusMsg = ""
			m.statusUntil = time.Time{}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Copy):
			return m, m.copySummary()
		}
	}
	return m, nil
}

// copySummary puts the status-bar text on the clipboard.
func (m *model) copySummary() tea.Cmd {
	text := m.rec.Summary(m.now, m.opts.Labels)
	switch {
	case text == "":
		m.statusMsg = "nothing to copy"
	case clipboard.Unsupported:
		m.statusMsg = "clipboard unavailable"
	default:
		if err := clipboard.WriteAll(text); err != nil {
			m.statusMsg = "copy failed: " + err.Error()
		} else {
			m.statusMsg = "copied " + text
		}
	}
	m.statusUntil = m.now.Add(statusTimeout)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return statusClearMsg{} })
}

func (m model) View() string {
	var b strings.Builder

	if !m.loaded {
		b.WriteString(styles.Mute("reading session state..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(styles.WarningMsg("state file unreadable, showing defaults"))
		b.WriteString("\n")
	}

	pos, ok := m.rec.Position(m.now)
	if !ok {
		b.WriteString(styles.Phase("", styles.SymbolPending+" No session running"))
		b.WriteString("\n\n")
		b.WriteString(styles.MutedMsg("Run 'pomo start' in another shell, this view follows along"))
		b.WriteString("\n")
	} else {
		c := m.rec.Cadence()
		b.WriteString(styles.Phase(pos.Phase.String(), m.opts.Labels.For(pos.Phase)))
		b.WriteString("  ")
		b.WriteString(styles.Clock(util.Clock(pos.Remaining)))
		b.WriteString("\n\n")
		b.WriteString(m.bar.ViewAs(Fraction(c, pos)))
		b.WriteString("\n\n")
		b.WriteString(styles.Mutef("session %s, started %s, %s work / %s short / %s long x%d",
			styles.ID(m.rec.SessionID, true),
			util.RelativeTime(m.rec.StartedAt(), m.now),
			util.Minutes(c.Work), util.Minutes(c.ShortBreak), util.Minutes(c.LongBreak), c.Blocks))
		b.WriteString("\n")
	}

	if m.static {
		return b.String()
	}
	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(styles.InfoMsg(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

// Fraction is how much of the current phase has passed, in [0, 1].
func Fraction(c cadence.Cadence, pos cadence.Position) float64 {
	total := c.Duration(pos.Phase)
	if total <= 0 {
		return 0
	}
	f := 1 - float64(pos.Remaining)/float64(total)
	return min(max(f, 0), 1)
}

// String renders one frame without starting a program. pomo watch uses it
// when stdout is not a terminal.
func String(opts Options) string {
	m := newModel(opts)
	m.static = true
	rec, err := opts.Load()
	next, _ := m.Update(recordMsg{rec: rec, err: err})
	return next.View()
}
