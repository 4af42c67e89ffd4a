package jblanked

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"tradetracker/internal/feature/calendar/domain/entity"
	"tradetracker/internal/feature/calendar/usecase"
)

// eventDateLayout is the timestamp format used by the JBlanked feed.
const eventDateLayout = "2006-01-02 15:04:05"

// eventRecord is the upstream wire shape. Every field except the name may
// be absent.
type eventRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Actual   string `json:"actual"`
	Forecast string `json:"forecast"`
	Previous string `json:"previous"`
	Impact   string `json:"impact"`
}

// NewsClient implements usecase.EventRepository against the JBlanked
// news API.
type NewsClient struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that NewsClient implements EventRepository.
var _ usecase.EventRepository = (*NewsClient)(nil)

// NewNewsClient creates a NewsClient. A nil httpClient falls back to a
// client with the configured timeout.
func NewNewsClient(cfg Config, httpClient *http.Client) *NewsClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &NewsClient{cfg: cfg, client: httpClient}
}

// Events fetches the current calendar from the upstream feed.
func (c *NewsClient) Events(ctx context.Context) ([]entity.Event, error) {
	url := fmt.Sprintf("%s/calendar/", c.cfg.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Api-Key "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrCalendarUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", usecase.ErrCalendarUnavailable, resp.StatusCode)
	}

	var records []eventRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode calendar response: %w", err)
	}

	events := make([]entity.Event, 0, len(records))
	for _, r := range records {
		events = append(events, toEvent(r))
	}
	return events, nil
}

// toEvent converts a wire record. An unparseable date leaves the zero
// time so the event still surfaces instead of dropping silently.
func toEvent(r eventRecord) entity.Event {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(eventDateLayout, r.Date)
		if err != nil {
			slog.Warn("unparseable event date", "date", r.Date, "event", r.Name)
		} else {
			date = parsed
		}
	}
	return entity.Event{
		ID:       r.ID,
		Name:     r.Name,
		Currency: r.Currency,
		Category: r.Category,
		Date:     date,
		Actual:   r.Actual,
		Forecast: r.Forecast,
		Previous: r.Previous,
		Impact:   r.Impact,
	}
}
