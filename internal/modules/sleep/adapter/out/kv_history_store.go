package out

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sleeptrack/internal/modules/sleep/domain"
	sleepout "sleeptrack/internal/modules/sleep/port/out"
	apperrors "sleeptrack/internal/platform/errors"
	"sleeptrack/internal/platform/kv"
)

// HistoryKey is the single storage key holding the serialized history.
const HistoryKey = "sleepHistory"

type sessionRecord struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  *int       `json:"duration,omitempty"`
}

type KVHistoryStore struct {
	kv     kv.Store
	logger *slog.Logger
}

func NewKVHistoryStore(store kv.Store, logger *slog.Logger) sleepout.HistoryStore {
	return &KVHistoryStore{kv: store, logger: logger}
}

func (s *KVHistoryStore) Load(ctx context.Context) ([]domain.Completed, error) {
	raw, found, err := s.kv.Get(ctx, HistoryKey)
	if err != nil {
		return nil, apperrors.NewStorageReadError(HistoryKey, err)
	}
	if !found || raw == "" {
		return []domain.Completed{}, nil
	}

	var records []sessionRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, apperrors.NewStorageReadError(HistoryKey, fmt.Errorf("decode history: %w", err))
	}

	history := make([]domain.Completed, 0, len(records))
	for _, r := range records {
		if r.EndTime == nil {
			s.logger.Warn("skipping stored session without end time", "session_id", r.ID)
			continue
		}
		session := domain.Completed{
			ID:        r.ID,
			StartTime: r.StartTime.UTC(),
			EndTime:   r.EndTime.UTC(),
		}
		if r.Duration != nil {
			session.DurationMin = *r.Duration
		} else {
			session.DurationMin = domain.DurationMinutes(session.StartTime, session.EndTime)
		}
		history = append(history, session)
	}
	return history, nil
}

func (s *KVHistoryStore) Save(ctx context.Context, history []domain.Completed) error {
	records := make([]sessionRecord, len(history))
	for i, h := range history {
		end := h.EndTime.UTC()
		duration := h.DurationMin
		records[i] = sessionRecord{
			ID:        h.ID,
			StartTime: h.StartTime.UTC(),
			EndTime:   &end,
			Duration:  &duration,
		}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return apperrors.NewStorageWriteError(HistoryKey, fmt.Errorf("encode history: %w", err))
	}
	if err := s.kv.Set(ctx, HistoryKey, string(payload)); err != nil {
		return apperrors.NewStorageWriteError(HistoryKey, err)
	}
	return nil
}
