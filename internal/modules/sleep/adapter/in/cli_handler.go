package in

import (
	"context"

	sleepdto "sleeptrack/internal/modules/sleep/dto"
	sleepin "sleeptrack/internal/modules/sleep/port/in"
)

type CLIHandler struct {
	usecase sleepin.Usecase
}

func NewCLIHandler(usecase sleepin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// History returns persisted sessions, most recent first. limit <= 0 means all.
func (h CLIHandler) History(ctx context.Context, limit int) ([]sleepdto.SessionOutput, error) {
	snap, err := h.usecase.Load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(snap.History) > limit {
		return snap.History[:limit], nil
	}
	return snap.History, nil
}
