// Package usecase implements the business logic for the trades feature:
// fetching broker deal history and reconstructing round-trip trades.
package usecase

import (
	"sort"
	"time"

	"tradetracker/internal/feature/trades/domain/entity"
)

// Aggregate reduces a raw deal stream to reconstructed round-trip trades.
//
// Deals are filtered to BUY/SELL executions and partitioned by position id;
// positions are indexed into the immutable deal slice rather than copied.
// The first IN deal by time is the position's nominal entry. Every OUT deal
// whose exit time falls inside [windowStart, windowEnd] emits exactly one
// Trade, so partial closes yield one Trade per fill. Direction comes from
// the entry deal's type when the entry is known, otherwise it is inferred
// as the opposite of the exit deal's type. Orders supply the first non-zero
// stop-loss and take-profit per position as display enrichment only.
//
// The caller is expected to fetch deals over a window widened into the past
// so that entries opened before the report window still resolve; positions
// with only an IN deal (still open) produce no Trade.
//
// The result is ordered by exit time ascending.
func Aggregate(deals []entity.Deal, orders []entity.Order, windowStart, windowEnd time.Time) []entity.Trade {
	// Partition BUY/SELL deal indices by position id.
	byPosition := make(map[int64][]int)
	for i, d := range deals {
		if !d.Type.IsTrade() {
			continue
		}
		byPosition[d.PositionID] = append(byPosition[d.PositionID], i)
	}

	ordersByPosition := make(map[int64][]entity.Order, len(orders))
	for _, o := range orders {
		if o.PositionID > 0 {
			ordersByPosition[o.PositionID] = append(ordersByPosition[o.PositionID], o)
		}
	}

	var trades []entity.Trade
	for posID, idxs := range byPosition {
		entry := findEntry(deals, idxs)
		sl, tp := findStops(ordersByPosition[posID])

		for _, i := range idxs {
			d := deals[i]
			if d.Entry != entity.EntryOut {
				continue
			}
			if d.Time.Before(windowStart) || d.Time.After(windowEnd) {
				continue
			}
			trades = append(trades, buildTrade(d, entry, sl, tp))
		}
	}

	sort.Slice(trades, func(i, j int) bool {
		return trades[i].ExitTime.Before(trades[j].ExitTime)
	})
	return trades
}

// findEntry returns the position's nominal entry: the first IN deal by time
// among the partition's deals, or nil when the entry was not fetched.
func findEntry(deals []entity.Deal, idxs []int) *entity.Deal {
	var entry *entity.Deal
	for _, i := range idxs {
		d := deals[i]
		if d.Entry != entity.EntryIn {
			continue
		}
		if entry == nil || d.Time.Before(entry.Time) {
			entry = &deals[i]
		}
	}
	return entry
}

// findStops returns the first non-zero stop-loss and take-profit among the
// position's orders.
func findStops(orders []entity.Order) (sl, tp *float64) {
	for _, o := range orders {
		if o.StopLoss > 0 && sl == nil {
			v := o.StopLoss
			sl = &v
		}
		if o.TakeProfit > 0 && tp == nil {
			v := o.TakeProfit
			tp = &v
		}
	}
	return sl, tp
}

// buildTrade assembles one Trade from an OUT deal and the position's
// resolved entry deal (which may be nil).
func buildTrade(exit entity.Deal, entry *entity.Deal, sl, tp *float64) entity.Trade {
	t := entity.Trade{
		Ticket:     exit.Ticket,
		PositionID: exit.PositionID,
		Symbol:     exit.Symbol,
		Volume:     exit.Volume,
		ExitTime:   exit.Time,
		ExitPrice:  exit.Price,
		StopLoss:   sl,
		TakeProfit: tp,
		Profit:     exit.Profit,
		Swap:       exit.Swap,
		Commission: exit.Commission,
		Fee:        exit.Fee,
		NetProfit:  exit.Profit + exit.Swap + exit.Commission + exit.Fee,
	}

	// An exit deal's type is the opposite of the position's direction: a
	// SELL execution closes a BUY position. Prefer the entry deal when the
	// lookback resolved it.
	if entry != nil {
		et := entry.Time
		ep := entry.Price
		t.EntryTime = &et
		t.EntryPrice = &ep
		if entry.Type == entity.DealTypeBuy {
			t.Direction = entity.DirectionBuy
		} else {
			t.Direction = entity.DirectionSell
		}
		return t
	}

	if exit.Type == entity.DealTypeBuy {
		t.Direction = entity.DirectionSell
	} else {
		t.Direction = entity.DirectionBuy
	}
	return t
}
