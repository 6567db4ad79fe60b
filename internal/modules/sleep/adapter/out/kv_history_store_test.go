package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sleepout "sleeptrack/internal/modules/sleep/adapter/out"
	"sleeptrack/internal/modules/sleep/domain"
	apperrors "sleeptrack/internal/platform/errors"
	"sleeptrack/internal/platform/kv"
	"sleeptrack/internal/platform/logging"
)

type memoryKV struct {
	values map[string]string
	getErr error
	setErr error
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func sampleHistory() []domain.Completed {
	base := time.Date(2026, 3, 1, 22, 14, 3, 123456789, time.UTC)
	return []domain.Completed{
		{ID: "c", StartTime: base.Add(48 * time.Hour), EndTime: base.Add(48*time.Hour + 8*time.Hour), DurationMin: 480},
		{ID: "b", StartTime: base.Add(24 * time.Hour), EndTime: base.Add(24*time.Hour + 20*time.Second), DurationMin: 0},
		{ID: "a", StartTime: base, EndTime: base.Add(7*time.Hour + 30*time.Minute), DurationMin: 450},
	}
}

func TestRoundTripThroughSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "sleeptrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := sleepout.NewKVHistoryStore(db, logging.Discard())

	history := sampleHistory()
	require.NoError(t, store.Save(ctx, history))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, history, loaded)
}

func TestRoundTripNormalisesToUTC(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := sleepout.NewKVHistoryStore(&memoryKV{}, logging.Discard())
	zone := time.FixedZone("CET", 3600)
	start := time.Date(2026, 3, 1, 23, 0, 0, 0, zone)
	history := []domain.Completed{{ID: "z", StartTime: start, EndTime: start.Add(time.Hour), DurationMin: 60}}

	require.NoError(t, store.Save(ctx, history))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].StartTime.Equal(start))
	assert.True(t, loaded[0].EndTime.Equal(start.Add(time.Hour)))
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	t.Parallel()
	store := sleepout.NewKVHistoryStore(&memoryKV{}, logging.Discard())

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestLoadStoredFormat(t *testing.T) {
	t.Parallel()
	raw := `[
  {"id":"1740866400000","startTime":"2026-03-01T22:00:00.000Z","endTime":"2026-03-02T06:15:00.000Z","duration":495},
  {"id":"1740780000000","startTime":"2026-02-28T22:00:00.000Z","endTime":"2026-03-01T05:00:30.000Z"},
  {"id":"1740700000000","startTime":"2026-02-27T22:00:00.000Z"}
]`
	store := sleepout.NewKVHistoryStore(&memoryKV{values: map[string]string{sleepout.HistoryKey: raw}}, logging.Discard())

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "1740866400000", loaded[0].ID)
	assert.Equal(t, 495, loaded[0].DurationMin)
	assert.Equal(t, 421, loaded[1].DurationMin)
}

func TestStorageFaultsAreTyped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fault := errors.New("io failure")

	readFail := sleepout.NewKVHistoryStore(&memoryKV{getErr: fault}, logging.Discard())
	_, err := readFail.Load(ctx)
	assert.True(t, apperrors.IsStorageRead(err))
	assert.ErrorIs(t, err, fault)

	corrupt := sleepout.NewKVHistoryStore(&memoryKV{values: map[string]string{sleepout.HistoryKey: "{not json"}}, logging.Discard())
	_, err = corrupt.Load(ctx)
	assert.True(t, apperrors.IsStorageRead(err))

	writeFail := sleepout.NewKVHistoryStore(&memoryKV{setErr: fault}, logging.Discard())
	err = writeFail.Save(ctx, sampleHistory())
	assert.True(t, apperrors.IsStorageWrite(err))
	assert.ErrorIs(t, err, fault)
}
