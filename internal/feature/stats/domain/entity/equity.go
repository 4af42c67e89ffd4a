// Package entity defines the domain models for the stats feature.
package entity

import "time"

// EquityPoint is one point of the account balance curve. The curve is
// ordered by time ascending; its first point is synthetic, holding the
// initial balance at a timestamp strictly before the first trade.
// Invariant: Balance = initial balance + CumulativeProfit.
type EquityPoint struct {
	Time             time.Time
	Balance          float64
	CumulativeProfit float64
}
