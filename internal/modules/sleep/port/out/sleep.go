package out

import (
	"context"

	"sleeptrack/internal/modules/sleep/domain"
)

// HistoryStore persists completed sessions, most recent first.
type HistoryStore interface {
	Load(ctx context.Context) ([]domain.Completed, error)
	Save(ctx context.Context, history []domain.Completed) error
}
