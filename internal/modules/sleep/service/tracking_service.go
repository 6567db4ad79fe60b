package service

import (
	"sleeptrack/internal/modules/sleep/domain"
	"sleeptrack/internal/platform/clock"
	apperrors "sleeptrack/internal/platform/errors"
	"sleeptrack/internal/platform/id"
)

// TrackingService holds the Idle/Tracking transition rules. It never touches
// storage; callers decide what to persist.
type TrackingService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewTrackingService(clock clock.Clock, idGen id.Generator) *TrackingService {
	return &TrackingService{clock: clock, idGen: idGen}
}

func (s *TrackingService) Start(state domain.State) (domain.State, domain.InProgress, error) {
	if state.Tracking() {
		return state, domain.InProgress{}, apperrors.ErrAlreadyTracking
	}
	session := domain.InProgress{
		ID:        s.idGen.New(),
		StartTime: s.clock.Now(),
	}
	return state.SetCurrent(session), session, nil
}

func (s *TrackingService) Stop(state domain.State) (domain.State, domain.Completed, error) {
	current, ok := state.Current()
	if !ok {
		return state, domain.Completed{}, apperrors.ErrNotTracking
	}
	done := current.Complete(s.clock.Now())
	return state.PrependToHistory(done).ClearCurrent(), done, nil
}
