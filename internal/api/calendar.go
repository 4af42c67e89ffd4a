package api

// CalendarEventResponse is one economic news event.
type CalendarEventResponse struct {
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

// CalendarResponse is the body returned by GET /calendar.
type CalendarResponse struct {
	Events []CalendarEventResponse `json:"events"`
	Count  int                     `json:"count"`
}
