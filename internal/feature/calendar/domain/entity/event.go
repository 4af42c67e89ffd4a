// Package entity defines the economic calendar domain model.
package entity

import "time"

// Impact buckets events by expected market effect.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Event is one scheduled economic news release. Actual, Forecast and
// Previous are empty strings when the upstream feed has not published a
// value yet.
type Event struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Currency string    `json:"currency"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Actual   string    `json:"actual"`
	Forecast string    `json:"forecast"`
	Previous string    `json:"previous"`
	Impact   string    `json:"impact"`
}
