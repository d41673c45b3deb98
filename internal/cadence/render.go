package cadence

import (
	"fmt"

	"github.com/imgajeed76/pomo/internal/util"
)

// Labels holds the text shown in front of the countdown for each phase.
type Labels struct {
	Work       string
	ShortBreak string
	LongBreak  string
}

// DefaultLabels returns the stock phase labels.
func DefaultLabels() Labels {
	return Labels{
		Work:       "Stay Focused",
		ShortBreak: "Short Break",
		LongBreak:  "Long Break",
	}
}

// For returns the label of a phase.
func (l Labels) For(p Phase) string {
	switch p {
	case Work:
		return l.Work
	case ShortBreak:
		return l.ShortBreak
	case LongBreak:
		return l.LongBreak
	}
	return ""
}

// Render formats a position as "<label>: MM:SS".
func Render(pos Position, labels Labels) string {
	return fmt.Sprintf("%s: %s", labels.For(pos.Phase), util.Clock(pos.Remaining))
}
