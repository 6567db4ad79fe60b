package in

import (
	"context"

	"sleeptrack/internal/modules/sleep/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.SnapshotOutput, error)
	Start(ctx context.Context) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Snapshot(ctx context.Context) dto.SnapshotOutput
}
