package usecase

import (
	"time"

	"tradetracker/internal/feature/stats/domain/entity"
)

// statsUsecase exposes the statistics engine to the transport layer. The
// engine itself is stateless and side-effect-free, so the usecase holds no
// dependencies and is safe for concurrent use.
type statsUsecase struct{}

// NewStatsUsecase creates a new statsUsecase.
func NewStatsUsecase() *statsUsecase {
	return &statsUsecase{}
}

// Calculate computes the full statistics summary for a trade batch.
func (u *statsUsecase) Calculate(trades []entity.Trade, initialBalance float64) entity.StatisticsSummary {
	if initialBalance <= 0 {
		initialBalance = DefaultInitialBalance
	}
	return NewCalculator(trades, initialBalance, Cashflows{}).Summary()
}

// Periods computes the today/week/month/year activity slices against a
// single shared now.
func (u *statsUsecase) Periods(trades []entity.Trade, initialBalance float64, now time.Time) PeriodBuckets {
	if initialBalance <= 0 {
		initialBalance = DefaultInitialBalance
	}
	return PeriodSlices(trades, initialBalance, now)
}

// Demo returns the deterministic demo trade set with its summary.
func (u *statsUsecase) Demo() ([]entity.Trade, entity.StatisticsSummary) {
	trades := DemoTrades()
	return trades, u.Calculate(trades, DefaultInitialBalance)
}
