package in

import (
	"context"

	sleepdto "sleeptrack/internal/modules/sleep/dto"
	sleepin "sleeptrack/internal/modules/sleep/port/in"
)

type TUIHandler struct {
	usecase sleepin.Usecase
}

func NewTUIHandler(usecase sleepin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Load(ctx context.Context) (sleepdto.SnapshotOutput, error) {
	return h.usecase.Load(ctx)
}

func (h TUIHandler) Start(ctx context.Context) (sleepdto.StartOutput, error) {
	return h.usecase.Start(ctx)
}

func (h TUIHandler) Stop(ctx context.Context) (sleepdto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h TUIHandler) Snapshot(ctx context.Context) sleepdto.SnapshotOutput {
	return h.usecase.Snapshot(ctx)
}
