package domain

import (
	"math"
	"time"
)

// Session is either InProgress or Completed.
type Session interface {
	SessionID() string
	Started() time.Time
	isSession()
}

type InProgress struct {
	ID        string
	StartTime time.Time
}

type Completed struct {
	ID          string
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int
}

func (s InProgress) SessionID() string { return s.ID }
func (s InProgress) Started() time.Time { return s.StartTime }
func (InProgress) isSession()           {}

func (s Completed) SessionID() string { return s.ID }
func (s Completed) Started() time.Time { return s.StartTime }
func (Completed) isSession()           {}

// Complete closes the session at end. A session is completed once and then
// never changes.
func (s InProgress) Complete(end time.Time) Completed {
	return Completed{
		ID:          s.ID,
		StartTime:   s.StartTime,
		EndTime:     end,
		DurationMin: DurationMinutes(s.StartTime, end),
	}
}

// DurationMinutes rounds the span to the nearest minute, halves up. A clock
// that moved backwards yields 0.
func DurationMinutes(start, end time.Time) int {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	return int(math.Floor(span.Minutes() + 0.5))
}

func (s Completed) Hours() int   { return s.DurationMin / 60 }
func (s Completed) Minutes() int { return s.DurationMin % 60 }
