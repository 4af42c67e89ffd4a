package usecase

import (
	"fmt"
	"sort"
	"time"

	"tradetracker/internal/feature/stats/domain/entity"
)

// MonthlyReturns pivots trades into per-calendar-month rows. A month's gain
// is its summed net profit divided by the running balance at the start of
// that month (initial balance plus all profit accumulated strictly before
// it), as a percentage rounded to two decimals. Profit values are left
// unrounded so they sum exactly to the total profit.
func MonthlyReturns(trades []entity.Trade, initialBalance float64) []entity.MonthlyReturn {
	if len(trades) == 0 {
		return []entity.MonthlyReturn{}
	}

	type yearMonth struct {
		year  int
		month time.Month
	}
	profits := map[yearMonth]float64{}
	for _, t := range trades {
		tm := t.Time.UTC()
		profits[yearMonth{tm.Year(), tm.Month()}] += t.NetProfit
	}

	months := make([]yearMonth, 0, len(profits))
	for ym := range profits {
		months = append(months, ym)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].year != months[j].year {
			return months[i].year < months[j].year
		}
		return months[i].month < months[j].month
	})

	out := make([]entity.MonthlyReturn, 0, len(months))
	startBalance := initialBalance
	for _, ym := range months {
		profit := profits[ym]
		out = append(out, entity.MonthlyReturn{
			Period:  fmt.Sprintf("%04d-%02d", ym.year, ym.month),
			Profit:  profit,
			GainPct: round2(safeDiv(profit, startBalance, 0) * 100),
		})
		startBalance += profit
	}
	return out
}

// PeriodBuckets are the calendar slices reported by the period endpoint.
type PeriodBuckets struct {
	Today entity.PeriodStats
	Week  entity.PeriodStats
	Month entity.PeriodStats
	Year  entity.PeriodStats
}

// PeriodSlices computes today/week/month/year activity slices. Every bucket
// boundary derives from the single now argument so the buckets can never
// skew against each other; the week starts on Monday (ISO).
func PeriodSlices(trades []entity.Trade, initialBalance float64, now time.Time) PeriodBuckets {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	week := today.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	year := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	return PeriodBuckets{
		Today: periodSlice(trades, initialBalance, today),
		Week:  periodSlice(trades, initialBalance, week),
		Month: periodSlice(trades, initialBalance, month),
		Year:  periodSlice(trades, initialBalance, year),
	}
}

// periodSlice aggregates the trades closing at or after start.
func periodSlice(trades []entity.Trade, initialBalance float64, start time.Time) entity.PeriodStats {
	var s entity.PeriodStats
	wins := 0
	for _, t := range trades {
		if t.Time.Before(start) {
			continue
		}
		s.Trades++
		s.Profit += t.NetProfit
		s.Lots += t.Volume
		if t.IsWin() {
			wins++
		}
	}
	if s.Trades == 0 {
		return s
	}
	s.Gain = safeDiv(s.Profit, initialBalance, 0) * 100
	s.WinPct = safeDiv(float64(wins), float64(s.Trades), 0) * 100
	return s
}
