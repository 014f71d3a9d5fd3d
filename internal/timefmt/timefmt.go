// Package timefmt renders comment timestamps as relative labels.
package timefmt

import (
	"fmt"
	"time"
)

// DefaultDateLayout matches the en-US short date ("1/2/2006").
const DefaultDateLayout = "1/2/2006"

const (
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerDay    = 24 * msPerHour
)

// FormatRelative labels tsMs relative to nowMs. Each bucket uses the floor
// of the millisecond difference, so a value lands in the lower bucket only
// while strictly below the cutoff. Differences of a week or more fall back
// to an absolute date in layout (DefaultDateLayout when empty), local time.
func FormatRelative(tsMs, nowMs int64, layout string) string {
	diff := nowMs - tsMs
	mins := floorDiv(diff, msPerMinute)
	hours := floorDiv(diff, msPerHour)
	days := floorDiv(diff, msPerDay)

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return plural(mins, "minute")
	case hours < 24:
		return plural(hours, "hour")
	case days < 7:
		return plural(days, "day")
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return time.UnixMilli(tsMs).Local().Format(layout)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// floorDiv rounds toward negative infinity, like Math.floor on a quotient.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
