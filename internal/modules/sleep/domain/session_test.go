package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sleeptrack/internal/modules/sleep/domain"
)

func TestDurationMinutesRounding(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		span time.Duration
		want int
	}{
		{"zero", 0, 0},
		{"under half a minute", 29 * time.Second, 0},
		{"exactly half a minute rounds up", 30 * time.Second, 1},
		{"just below a minute and a half", 89*time.Second + 999*time.Millisecond, 1},
		{"seven and a half hours", 7*time.Hour + 30*time.Minute, 450},
		{"clock moved backwards", -5 * time.Minute, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DurationMinutes(start, start.Add(tt.span))
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestCompleteSplitsHoursAndMinutes(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	active := domain.InProgress{ID: "s-1", StartTime: start}

	done := active.Complete(start.Add(7*time.Hour + 30*time.Minute))

	assert.Equal(t, "s-1", done.ID)
	assert.Equal(t, start, done.StartTime)
	assert.Equal(t, 450, done.DurationMin)
	assert.Equal(t, 7, done.Hours())
	assert.Equal(t, 30, done.Minutes())

	var s domain.Session = done
	require.Equal(t, "s-1", s.SessionID())
	s = active
	require.Equal(t, start, s.Started())
}

func TestStateUpdatesDoNotMutateReceiver(t *testing.T) {
	t.Parallel()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	older := domain.Completed{ID: "old", StartTime: base, EndTime: base.Add(time.Hour), DurationMin: 60}

	idle := domain.NewState([]domain.Completed{older})
	assert.False(t, idle.Tracking())

	tracking := idle.SetCurrent(domain.InProgress{ID: "new", StartTime: base.Add(24 * time.Hour)})
	assert.True(t, tracking.Tracking())
	assert.False(t, idle.Tracking())

	current, ok := tracking.Current()
	require.True(t, ok)
	newer := current.Complete(current.StartTime.Add(8 * time.Hour))

	done := tracking.PrependToHistory(newer).ClearCurrent()
	assert.False(t, done.Tracking())
	_, ok = done.Current()
	assert.False(t, ok)

	assert.Equal(t, []domain.Completed{newer, older}, done.History())
	assert.Equal(t, []domain.Completed{older}, tracking.History())
	assert.Equal(t, 1, idle.Len())
}

func TestHistoryReturnsCopy(t *testing.T) {
	t.Parallel()
	state := domain.NewState([]domain.Completed{{ID: "a"}})
	h := state.History()
	h[0].ID = "mutated"
	assert.Equal(t, "a", state.History()[0].ID)
}
