package usecase

import (
	"time"

	"tradetracker/internal/feature/stats/domain/entity"
)

// BuildEquityCurve folds net profit over trades in exit-time order into the
// account balance curve, prepending a synthetic starting point holding the
// initial balance one second before the first trade closes.
//
// The curve is the single source of truth for "balance after trade i": all
// drawdown and return math operates on it, and no other code recomputes the
// cumulative sums. An empty trade sequence yields an empty curve.
func BuildEquityCurve(trades []entity.Trade, initialBalance float64) []entity.EquityPoint {
	if len(trades) == 0 {
		return nil
	}

	curve := make([]entity.EquityPoint, 0, len(trades)+1)
	curve = append(curve, entity.EquityPoint{
		Time:    trades[0].Time.Add(-time.Second),
		Balance: initialBalance,
	})

	cumulative := 0.0
	for _, t := range trades {
		cumulative += t.NetProfit
		curve = append(curve, entity.EquityPoint{
			Time:             t.Time,
			Balance:          initialBalance + cumulative,
			CumulativeProfit: cumulative,
		})
	}
	return curve
}
