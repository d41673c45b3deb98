package styles

import "github.com/charmbracelet/lipgloss"

// Color palette, One Dark based to match the default bar colors
var (
	// Primary semantic colors
	Accent  = lipgloss.Color("#C678DD") // magenta - highlights
	Success = lipgloss.Color("#98C379") // green - success
	Warning = lipgloss.Color("#D19A66") // yellow - warnings
	Error   = lipgloss.Color("#E06C75") // red - errors
	Info    = lipgloss.Color("#61AFEF") // blue - info, ids
	Muted   = lipgloss.Color("#5C6370") // gray - secondary text

	// Text colors
	TextPrimary   = lipgloss.Color("#ABB2BF")
	TextSecondary = lipgloss.Color("#828997")
)

// Phase colors
var (
	ColorWork       = Error   // focus time
	ColorShortBreak = Success // short rest
	ColorLongBreak  = Info    // long rest
	ColorStopped    = Muted   // no session
)
