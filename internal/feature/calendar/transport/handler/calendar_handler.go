// Package handler provides the HTTP handlers for the calendar feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradetracker/internal/api"
	"tradetracker/internal/feature/calendar/domain/entity"
)

// CalendarUsecase defines the calendar operations used by this handler.
type CalendarUsecase interface {
	Events(ctx context.Context) ([]entity.Event, error)
	Demo() []entity.Event
}

// CalendarHandler serves the economic calendar endpoints.
type CalendarHandler struct {
	uc CalendarUsecase
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(uc CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// GetCalendar handles GET /calendar.
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	events, err := h.uc.Events(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch calendar", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "news calendar unavailable"})
		return
	}
	c.JSON(http.StatusOK, toCalendarResponse(events))
}

// GetDemoCalendar handles GET /calendar/demo.
func (h *CalendarHandler) GetDemoCalendar(c *gin.Context) {
	c.JSON(http.StatusOK, toCalendarResponse(h.uc.Demo()))
}

func toCalendarResponse(events []entity.Event) api.CalendarResponse {
	out := make([]api.CalendarEventResponse, 0, len(events))
	for _, e := range events {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format(time.RFC3339)
		}
		out = append(out, api.CalendarEventResponse{
			ID:       e.ID,
			Name:     e.Name,
			Currency: e.Currency,
			Category: e.Category,
			Date:     date,
			Actual:   e.Actual,
			Forecast: e.Forecast,
			Previous: e.Previous,
			Impact:   e.Impact,
		})
	}
	return api.CalendarResponse{Events: out, Count: len(out)}
}
