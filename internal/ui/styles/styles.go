package styles

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/imgajeed76/pomo/internal/util"
	"golang.org/x/term"
)

// Symbols - Unicode with ASCII fallbacks
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "●"
	SymbolPending = "○"
	SymbolArrow   = "→"
)

// forceNoColor is set by --no-color
var forceNoColor bool

// SetNoColor disables colors regardless of the environment
func SetNoColor(v bool) {
	forceNoColor = v
}

// NoColor checks if colors should be disabled. Commands decide from their
// flags and environment snapshot and call SetNoColor.
func NoColor() bool {
	return forceNoColor
}

// IsTTY reports whether stdout is a terminal
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Base text styles
var (
	Bold = lipgloss.NewStyle().Bold(true)
)

// Semantic styles - use these instead of raw colors
var (
	// Message types
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)

	// Session display
	IDStyle    = lipgloss.NewStyle().Foreground(Info)
	LabelStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	ClockStyle = lipgloss.NewStyle().Bold(true)

	WorkStyle       = lipgloss.NewStyle().Foreground(ColorWork).Bold(true)
	ShortBreakStyle = lipgloss.NewStyle().Foreground(ColorShortBreak).Bold(true)
	LongBreakStyle  = lipgloss.NewStyle().Foreground(ColorLongBreak).Bold(true)
	StoppedStyle    = lipgloss.NewStyle().Foreground(ColorStopped)
)

// ═══════════════════════════════════════════════════════════════════════════
// Render functions - centralized formatting with NoColor support
// ═══════════════════════════════════════════════════════════════════════════

// render applies a style if colors are enabled
func render(s lipgloss.Style, text string) string {
	if NoColor() {
		return text
	}
	return s.Render(text)
}

// ID formats a session id (lowercase, optionally short)
func ID(id string, short bool) string {
	if short {
		return render(IDStyle, util.ShortID(id))
	}
	return render(IDStyle, strings.ToLower(id))
}

// Phase formats a phase name using its color. Phases are "work",
// "short_break" and "long_break"; anything else renders as stopped.
func Phase(phase, text string) string {
	switch phase {
	case "work":
		return render(WorkStyle, text)
	case "short_break":
		return render(ShortBreakStyle, text)
	case "long_break":
		return render(LongBreakStyle, text)
	default:
		return render(StoppedStyle, text)
	}
}

// Clock formats a remaining-time readout
func Clock(text string) string {
	return render(ClockStyle, text)
}

// Label formats a key in a key/value listing
func Label(text string) string {
	return render(LabelStyle, text)
}

// Swatch renders a two-cell block filled with color. It accepts "#rrggbb",
// "rrggbb" and sketchybar's "0xAARRGGBB". Returns "" when colors are off or
// the value is not a color.
func Swatch(color string) string {
	if NoColor() {
		return ""
	}
	hex, ok := cssHex(color)
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// cssHex converts the color forms used by schemes and sketchybar to #rrggbb
func cssHex(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x") && len(s) == 10:
		s = s[4:]
	case strings.HasPrefix(s, "#"):
		s = s[1:]
	}
	if len(s) != 6 {
		return "", false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "", false
		}
	}
	return "#" + strings.ToLower(s), true
}

// ═══════════════════════════════════════════════════════════════════════════
// Message formatters - structured output
// ═══════════════════════════════════════════════════════════════════════════

// SuccessMsg formats a success message with checkmark
func SuccessMsg(msg string) string {
	symbol := SymbolSuccess
	if NoColor() {
		symbol = "+"
	}
	return fmt.Sprintf("%s %s", render(SuccessStyle, symbol), msg)
}

// ErrorMsg formats an error message
func ErrorMsg(title string) string {
	return render(ErrorStyle, "Error: "+title)
}

// WarningMsg formats a warning message
func WarningMsg(msg string) string {
	symbol := SymbolWarning
	if NoColor() {
		symbol = "!"
	}
	return fmt.Sprintf("%s %s", render(WarningStyle, symbol), msg)
}

// FailMsg formats a failed check
func FailMsg(msg string) string {
	symbol := SymbolError
	if NoColor() {
		symbol = "x"
	}
	return fmt.Sprintf("%s %s", render(ErrorStyle, symbol), msg)
}

// InfoMsg formats an info message
func InfoMsg(msg string) string {
	return render(InfoStyle, msg)
}

// MutedMsg formats muted/secondary text
func MutedMsg(msg string) string {
	return render(MutedStyle, msg)
}

// SectionHeader formats a section header
func SectionHeader(title string) string {
	return render(Bold, title)
}

// Indent returns text indented by n spaces
func Indent(text string, n int) string {
	prefix := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func Mute(s string) string        { return render(MutedStyle, s) }
func SuccessText(s string) string { return render(SuccessStyle, s) }
func WarningText(s string) string { return render(WarningStyle, s) }
func ErrorText(s string) string   { return render(ErrorStyle, s) }

func Mutef(format string, a ...any) string { return Mute(fmt.Sprintf(format, a...)) }
func Boldf(format string, a ...any) string { return render(Bold, fmt.Sprintf(format, a...)) }
