package dto

import "time"

type SessionOutput struct {
	ID          string
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int
	InProgress  bool
}

// Notice is a user-facing confirmation, shown as a dismissable box.
type Notice struct {
	Title   string
	Message string
}

type StartOutput struct {
	Session SessionOutput
	Notice  Notice
}

type StopOutput struct {
	Session   SessionOutput
	Hours     int
	Minutes   int
	Persisted bool
	Notice    Notice
}

type SnapshotOutput struct {
	Tracking bool
	Current  SessionOutput
	History  []SessionOutput
}
