package entity

import "time"

// Trade is the statistics engine's input record: one closed round-trip
// trade with its realized result. It is a flat value type: the engine only
// ever consumes reconstructed trades, it never re-derives them from raw
// deals.
type Trade struct {
	Ticket     int64
	Time       time.Time // Exit (close) time
	Symbol     string
	Direction  string // "BUY" or "SELL"
	Volume     float64
	Price      float64
	Profit     float64
	Swap       float64
	Commission float64
	NetProfit  float64
}

// IsWin reports whether the trade closed with a positive net result.
// Break-even trades are neither wins nor losses.
func (t Trade) IsWin() bool { return t.NetProfit > 0 }

// IsLoss reports whether the trade closed with a negative net result.
func (t Trade) IsLoss() bool { return t.NetProfit < 0 }
