package entity

import "time"

// Direction is the side of a reconstructed trade.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// Trade is one reconstructed round trip: one closing (OUT) deal paired with
// its resolved entry deal. A position closed in partial fills produces one
// Trade per OUT deal. Entry fields are nil when the opening deal fell
// outside the fetched lookback window; profit data is self-contained in the
// exit deal, so such trades are still complete for statistics purposes.
// Trades are created once by the aggregator and never mutated.
type Trade struct {
	Ticket     int64 // Ticket of the closing deal
	PositionID int64
	Symbol     string
	Direction  Direction
	Volume     float64
	EntryTime  *time.Time
	EntryPrice *float64
	ExitTime   time.Time
	ExitPrice  float64
	StopLoss   *float64
	TakeProfit *float64
	Profit     float64
	Swap       float64
	Commission float64
	Fee        float64
	NetProfit  float64 // Profit + Swap + Commission + Fee
}
