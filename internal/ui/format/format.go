// Package format renders session values for display.
package format

import (
	"fmt"
	"time"
)

// Duration renders whole minutes as "{hours}h {minutes}m".
func Duration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

func Time(t time.Time) string {
	return t.Local().Format("15:04")
}

func Date(t time.Time) string {
	return t.Local().Format("Mon Jan 2, 2006")
}

// Range renders "start - end", or "start - In progress" for an open session.
func Range(start, end time.Time) string {
	if end.IsZero() {
		return Time(start) + " - In progress"
	}
	return Time(start) + " - " + Time(end)
}
