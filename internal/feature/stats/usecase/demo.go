package usecase

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"tradetracker/internal/feature/stats/domain/entity"
)

const (
	demoSeed   = 42
	demoTrades = 100
)

var demoSymbols = []string{"EURUSD", "GBPUSD", "USDJPY", "XAUUSD", "BTCUSD"}

// DemoTrades generates a deterministic sample trade history for clients
// that want to exercise the dashboard without a terminal connection. The
// fixed seed keeps responses stable across calls and processes.
func DemoTrades() []entity.Trade {
	r := rand.New(rand.NewSource(demoSeed))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	times := make([]time.Time, demoTrades)
	for i := range times {
		times[i] = base.Add(time.Duration(r.Intn(8760)) * time.Hour)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	trades := make([]entity.Trade, 0, demoTrades)
	for i := 0; i < demoTrades; i++ {
		// Slight positive bias, roughly a 55% win rate.
		profit := roundN(r.NormFloat64()*200+50, 2)
		swap := roundN(uniform(r, -5, 5), 2)
		commission := roundN(uniform(r, -10, 0), 2)

		direction := "BUY"
		if r.Intn(2) == 1 {
			direction = "SELL"
		}

		trades = append(trades, entity.Trade{
			Ticket:     int64(1000 + i),
			Time:       times[i],
			Symbol:     demoSymbols[r.Intn(len(demoSymbols))],
			Direction:  direction,
			Volume:     roundN(uniform(r, 0.01, 1.0), 2),
			Price:      roundN(uniform(r, 1.0, 2000), 5),
			Profit:     profit,
			Swap:       swap,
			Commission: commission,
			NetProfit:  roundN(profit+swap+commission, 2),
		})
	}
	return trades
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func roundN(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
