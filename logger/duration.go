package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	// plainSecondsLimit is the largest count still printed as bare seconds.
	plainSecondsLimit = 100
)

// hms splits seconds into the tier used by the compact forms. A zero
// hours value means the hour tier was not selected.
func hms(seconds int) (h, m, s int) {
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds <= plainSecondsLimit:
		return 0, 0, seconds
	case seconds <= secondsPerHour:
		return 0, seconds / secondsPerMinute, seconds % secondsPerMinute
	default:
		rem := seconds % secondsPerHour
		return seconds / secondsPerHour, rem / secondsPerMinute, rem % secondsPerMinute
	}
}

// FormatDuration renders seconds compactly: "45s", "2m5s", "1h1m1s".
// Up to 100 seconds stays in seconds; zero minutes inside the hour tier
// are omitted.
func FormatDuration(seconds int) string {
	return formatHMS(seconds, func(n int, unit string, _ Color) string {
		return strconv.Itoa(n) + unit
	})
}

// FormatDurationColor is FormatDuration with bold numbers, hours in red,
// minutes in yellow and seconds in green.
func FormatDurationColor(seconds int) string {
	return formatHMS(seconds, func(n int, unit string, c Color) string {
		return Colorize(strconv.Itoa(n), c, true, false) + Colorize(unit, c, false, false)
	})
}

func formatHMS(seconds int, part func(n int, unit string, c Color) string) string {
	h, m, s := hms(seconds)
	var b strings.Builder
	if h > 0 {
		b.WriteString(part(h, "h", Red))
	}
	if m > 0 {
		b.WriteString(part(m, "m", Yellow))
	}
	b.WriteString(part(s, "s", Green))
	return b.String()
}

// FormatDurationVerbose spells out units, e.g. "1 days, 1 hours, 1 minutes,
// 1 seconds". Zero days, hours and minutes are omitted; seconds are always
// printed.
func FormatDurationVerbose(seconds int) string {
	d, h, m, s := split(seconds)
	var b strings.Builder
	if d > 0 {
		fmt.Fprintf(&b, "%d days, ", d)
	}
	if h > 0 {
		fmt.Fprintf(&b, "%d hours, ", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%d minutes, ", m)
	}
	fmt.Fprintf(&b, "%d seconds", s)
	return b.String()
}

// FormatClock renders seconds as "1d1:01:01s". Zero units are omitted and
// seconds are zero padded.
func FormatClock(seconds int) string {
	d, h, m, s := split(seconds)
	var b strings.Builder
	if d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	if h > 0 {
		fmt.Fprintf(&b, "%d:", h)
	}
	if m > 0 {
		fmt.Fprintf(&b, "%02d:", m)
	}
	fmt.Fprintf(&b, "%02ds", s)
	return b.String()
}

func split(seconds int) (d, h, m, s int) {
	if seconds < 0 {
		seconds = 0
	}
	d, seconds = seconds/secondsPerDay, seconds%secondsPerDay
	h, seconds = seconds/secondsPerHour, seconds%secondsPerHour
	m, s = seconds/secondsPerMinute, seconds%secondsPerMinute
	return d, h, m, s
}

// Timestamp formats t as 20060102_150405, suitable for file names.
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
