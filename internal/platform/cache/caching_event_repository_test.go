package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradetracker/internal/feature/calendar/domain/entity"
)

// mockEventRepository is a test double for the upstream feed.
type mockEventRepository struct {
	eventsFn func(ctx context.Context) ([]entity.Event, error)
	calls    int
}

func (m *mockEventRepository) Events(ctx context.Context) ([]entity.Event, error) {
	m.calls++
	if m.eventsFn != nil {
		return m.eventsFn(ctx)
	}
	return nil, nil
}

func sampleEvents() []entity.Event {
	return []entity.Event{
		{ID: 1, Name: "Non-Farm Payrolls", Currency: "USD", Impact: entity.ImpactHigh,
			Date: time.Date(2024, 12, 20, 13, 30, 0, 0, time.UTC)},
	}
}

func TestNewCachingEventRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingEventRepository(nil, 0, &mockEventRepository{}, "")
	assert.Equal(t, 5*time.Minute, repo.ttl)
	assert.Equal(t, "calendar", repo.namespace)

	repo = NewCachingEventRepository(nil, 10*time.Minute, &mockEventRepository{}, "custom")
	assert.Equal(t, 10*time.Minute, repo.ttl)
	assert.Equal(t, "custom", repo.namespace)
}

func TestCachingEventRepository_NilRedisBypassesCache(t *testing.T) {
	inner := &mockEventRepository{
		eventsFn: func(ctx context.Context) ([]entity.Event, error) { return sampleEvents(), nil },
	}
	repo := NewCachingEventRepository(nil, time.Minute, inner, "calendar")

	events, err := repo.Events(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingEventRepository_CacheMissStoresResult(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockEventRepository{
		eventsFn: func(ctx context.Context) ([]entity.Event, error) { return sampleEvents(), nil },
	}
	repo := NewCachingEventRepository(rdb, time.Minute, inner, "calendar")

	expected, err := json.Marshal(sampleEvents())
	require.NoError(t, err)

	mock.ExpectGet("calendar:events").RedisNil()
	mock.ExpectSet("calendar:events", expected, time.Minute).SetVal("OK")

	events, err := repo.Events(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingEventRepository_CacheHitSkipsUpstream(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockEventRepository{
		eventsFn: func(ctx context.Context) ([]entity.Event, error) {
			return nil, errors.New("upstream must not be called")
		},
	}
	repo := NewCachingEventRepository(rdb, time.Minute, inner, "calendar")

	cached, err := json.Marshal(sampleEvents())
	require.NoError(t, err)
	mock.ExpectGet("calendar:events").SetVal(string(cached))

	events, err := repo.Events(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "Non-Farm Payrolls", events[0].Name)
	assert.Zero(t, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingEventRepository_UpstreamErrorPropagates(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	upstreamErr := errors.New("feed down")
	inner := &mockEventRepository{
		eventsFn: func(ctx context.Context) ([]entity.Event, error) { return nil, upstreamErr },
	}
	repo := NewCachingEventRepository(rdb, time.Minute, inner, "calendar")

	mock.ExpectGet("calendar:events").RedisNil()

	_, err := repo.Events(context.Background())
	assert.ErrorIs(t, err, upstreamErr)
}
