package util

import (
	"fmt"
	"time"
)

// Clock formats a duration as MM:SS, truncating sub-second precision.
// Minutes are not wrapped at an hour, so 75m renders as "75:00".
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Minutes formats a duration as a whole number of minutes (e.g., "25m")
func Minutes(d time.Duration) string {
	return fmt.Sprintf("%dm", int64(d/time.Minute))
}

// RelativeTime formats t relative to now (e.g., "2 hours ago")
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return "in the future"
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		m := int(diff.Minutes())
		if m == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", m)
	case diff < 24*time.Hour:
		h := int(diff.Hours())
		if h == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", h)
	case diff < 7*24*time.Hour:
		d := int(diff.Hours() / 24)
		if d == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", d)
	default:
		return t.Format("Jan 2, 2006")
	}
}
