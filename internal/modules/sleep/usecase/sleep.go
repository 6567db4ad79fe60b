package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"sleeptrack/internal/modules/sleep/domain"
	sleepdto "sleeptrack/internal/modules/sleep/dto"
	sleepin "sleeptrack/internal/modules/sleep/port/in"
	sleepout "sleeptrack/internal/modules/sleep/port/out"
	"sleeptrack/internal/modules/sleep/service"
)

// Interactor owns the session store for the lifetime of the process.
// Bubble Tea runs commands on their own goroutines, so state access is
// serialised.
type Interactor struct {
	svc    *service.TrackingService
	store  sleepout.HistoryStore
	logger *slog.Logger

	mu    sync.Mutex
	state domain.State
}

func NewInteractor(svc *service.TrackingService, store sleepout.HistoryStore, logger *slog.Logger) sleepin.Usecase {
	return &Interactor{
		svc:    svc,
		store:  store,
		logger: logger,
		state:  domain.NewState(nil),
	}
}

// Load replaces the history with the persisted one. A storage fault is
// logged and leaves an empty history; it is never returned.
func (i *Interactor) Load(ctx context.Context) (sleepdto.SnapshotOutput, error) {
	history, err := i.store.Load(ctx)
	if err != nil {
		i.logger.Error("load sleep history failed, starting empty", "error", err)
		history = nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	next := domain.NewState(history)
	if current, ok := i.state.Current(); ok {
		next = next.SetCurrent(current)
	}
	i.state = next
	i.logger.Debug("sleep history loaded", "sessions", len(history))
	return snapshot(i.state), nil
}

func (i *Interactor) Start(_ context.Context) (sleepdto.StartOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	next, session, err := i.svc.Start(i.state)
	if err != nil {
		return sleepdto.StartOutput{}, err
	}
	i.state = next
	i.logger.Info("sleep tracking started", "session_id", session.ID, "start", session.StartTime)
	return sleepdto.StartOutput{
		Session: inProgressOutput(session),
		Notice:  sleepdto.Notice{Title: "Sleep Tracking Started", Message: "Sweet dreams! 😴"},
	}, nil
}

// Stop completes the current session. A failed save is logged and the stop
// still takes effect in memory.
func (i *Interactor) Stop(ctx context.Context) (sleepdto.StopOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	next, done, err := i.svc.Stop(i.state)
	if err != nil {
		return sleepdto.StopOutput{}, err
	}
	i.state = next

	persisted := true
	if err := i.store.Save(ctx, i.state.History()); err != nil {
		persisted = false
		i.logger.Error("save sleep history failed", "session_id", done.ID, "error", err)
	}
	i.logger.Info("sleep tracking stopped", "session_id", done.ID, "duration_min", done.DurationMin, "persisted", persisted)

	return sleepdto.StopOutput{
		Session:   completedOutput(done),
		Hours:     done.Hours(),
		Minutes:   done.Minutes(),
		Persisted: persisted,
		Notice: sleepdto.Notice{
			Title:   "Sleep Session Completed",
			Message: fmt.Sprintf("You slept for %dh %dm", done.Hours(), done.Minutes()),
		},
	}, nil
}

func (i *Interactor) Snapshot(_ context.Context) sleepdto.SnapshotOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return snapshot(i.state)
}

func snapshot(state domain.State) sleepdto.SnapshotOutput {
	out := sleepdto.SnapshotOutput{Tracking: state.Tracking()}
	if current, ok := state.Current(); ok {
		out.Current = inProgressOutput(current)
	}
	history := state.History()
	out.History = make([]sleepdto.SessionOutput, len(history))
	for idx, s := range history {
		out.History[idx] = completedOutput(s)
	}
	return out
}

func inProgressOutput(s domain.InProgress) sleepdto.SessionOutput {
	return sleepdto.SessionOutput{ID: s.ID, StartTime: s.StartTime, InProgress: true}
}

func completedOutput(s domain.Completed) sleepdto.SessionOutput {
	return sleepdto.SessionOutput{
		ID:          s.ID,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		DurationMin: s.DurationMin,
	}
}
