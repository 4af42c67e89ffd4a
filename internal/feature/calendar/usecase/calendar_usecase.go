// Package usecase contains the economic calendar logic.
package usecase

import (
	"context"
	"fmt"
	"sort"

	"tradetracker/internal/feature/calendar/domain/entity"
)

// EventRepository fetches upcoming economic events. Implemented by the
// jblanked adapter and wrapped by the Redis caching decorator.
type EventRepository interface {
	Events(ctx context.Context) ([]entity.Event, error)
}

// calendarUsecase serves the economic calendar.
type calendarUsecase struct {
	repo EventRepository
}

// NewCalendarUsecase creates a new calendarUsecase.
func NewCalendarUsecase(repo EventRepository) *calendarUsecase {
	return &calendarUsecase{repo: repo}
}

// Events returns upcoming events sorted by release time.
func (u *calendarUsecase) Events(ctx context.Context) ([]entity.Event, error) {
	events, err := u.repo.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar: %w", err)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

// Demo returns a fixed event set so clients can render the calendar
// without upstream credentials.
func (u *calendarUsecase) Demo() []entity.Event {
	return demoEvents()
}
