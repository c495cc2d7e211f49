package ambient

import (
	"fmt"
	"time"
)

// ClockInterval is the status bar clock refresh period.
const ClockInterval = time.Second

// FormatClock renders the status bar time.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDate renders the status bar date, e.g. "Mon, Jan 2".
func FormatDate(t time.Time) string {
	return t.Format("Mon, Jan 2")
}

// Uptime renders the time since boot as "3h 07m".
func Uptime(since, now time.Time) string {
	d := now.Sub(since)
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}
