package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradetracker/internal/feature/calendar/domain/entity"
)

type mockEventRepository struct {
	eventsFn func(ctx context.Context) ([]entity.Event, error)
}

func (m *mockEventRepository) Events(ctx context.Context) ([]entity.Event, error) {
	if m.eventsFn != nil {
		return m.eventsFn(ctx)
	}
	return nil, nil
}

func TestCalendarUsecase_EventsSortedByDate(t *testing.T) {
	repo := &mockEventRepository{
		eventsFn: func(ctx context.Context) ([]entity.Event, error) {
			return []entity.Event{
				{ID: 1, Name: "Later", Date: time.Date(2024, 12, 20, 19, 0, 0, 0, time.UTC)},
				{ID: 2, Name: "Earlier", Date: time.Date(2024, 12, 20, 8, 30, 0, 0, time.UTC)},
			}, nil
		},
	}
	uc := NewCalendarUsecase(repo)

	events, err := uc.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Earlier", events[0].Name)
	assert.Equal(t, "Later", events[1].Name)
}

func TestCalendarUsecase_EventsError(t *testing.T) {
	repoErr := errors.New("feed down")
	uc := NewCalendarUsecase(&mockEventRepository{
		eventsFn: func(ctx context.Context) ([]entity.Event, error) { return nil, repoErr },
	})

	_, err := uc.Events(context.Background())
	assert.ErrorIs(t, err, repoErr)
}

func TestCalendarUsecase_Demo(t *testing.T) {
	uc := NewCalendarUsecase(&mockEventRepository{})

	events := uc.Demo()
	require.NotEmpty(t, events)

	currencies := map[string]bool{}
	for _, e := range events {
		assert.NotEmpty(t, e.Name)
		assert.Contains(t, []string{entity.ImpactHigh, entity.ImpactMedium, entity.ImpactLow}, e.Impact)
		currencies[e.Currency] = true
	}
	assert.Greater(t, len(currencies), 3, "demo data spans the major currencies")
}
