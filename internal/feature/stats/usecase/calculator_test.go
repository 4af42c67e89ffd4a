package usecase

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradetracker/internal/feature/stats/domain/entity"
)

// mkTrade builds a closed trade on the given day of June 2024.
func mkTrade(day int, profit float64) entity.Trade {
	return entity.Trade{
		Ticket:    int64(day),
		Time:      time.Date(2024, 6, day, 12, 0, 0, 0, time.UTC),
		Symbol:    "EURUSD",
		Direction: "BUY",
		Volume:    0.1,
		Price:     1.08,
		Profit:    profit,
		NetProfit: profit,
	}
}

// The five-trade W,W,L,L,W sequence used across the balance tests.
func sampleTrades() []entity.Trade {
	return []entity.Trade{
		mkTrade(1, 100),
		mkTrade(2, 200),
		mkTrade(3, -50),
		mkTrade(4, -100),
		mkTrade(5, 300),
	}
}

func TestCalculator_Balances(t *testing.T) {
	c := NewCalculator(sampleTrades(), 10000, Cashflows{})

	assert.InDelta(t, 450.0, c.TotalProfit(), 1e-9)
	assert.InDelta(t, 10450.0, c.FinalBalance(), 1e-9)
	assert.InDelta(t, 4.5, c.AbsoluteGainPct(), 1e-9)
}

func TestCalculator_AbsoluteGainAdjustsForCashflows(t *testing.T) {
	// A 500 deposit is not trading performance and must be backed out.
	c := NewCalculator(sampleTrades(), 10000, Cashflows{Deposits: 500, Withdrawals: 200})

	adjusted := (10450.0 - 500 + 200) / 10000
	assert.InDelta(t, (adjusted-1)*100, c.AbsoluteGainPct(), 1e-9)
}

func TestCalculator_WinLossBreakdown(t *testing.T) {
	c := NewCalculator(sampleTrades(), 10000, Cashflows{})

	assert.Equal(t, 3, c.WinningTrades())
	assert.Equal(t, 2, c.LosingTrades())
	assert.InDelta(t, 60.0, c.WinRatePct(), 1e-9)
	assert.InDelta(t, 600.0, c.GrossProfit(), 1e-9)
	assert.InDelta(t, -150.0, c.GrossLoss(), 1e-9)
	assert.InDelta(t, 4.0, c.ProfitFactor(), 1e-9)
	assert.InDelta(t, 200.0, c.AvgWin(), 1e-9)
	assert.InDelta(t, -75.0, c.AvgLoss(), 1e-9)
	assert.InDelta(t, 300.0, c.LargestWin(), 1e-9)
	assert.InDelta(t, -100.0, c.LargestLoss(), 1e-9)
}

func TestCalculator_Expectancy(t *testing.T) {
	c := NewCalculator(sampleTrades(), 10000, Cashflows{})

	// 0.6*200 - 0.4*75
	assert.InDelta(t, 90.0, c.Expectancy(), 1e-9)
}

func TestCalculator_ExpectancyFallsBackToAvgWin(t *testing.T) {
	trades := []entity.Trade{mkTrade(1, 100), mkTrade(2, 300)}
	c := NewCalculator(trades, 10000, Cashflows{})

	assert.InDelta(t, 200.0, c.Expectancy(), 1e-9)
}

func TestCalculator_MaxDrawdown(t *testing.T) {
	c := NewCalculator(sampleTrades(), 10000, Cashflows{})

	// Balance path: 10000, 10100, 10300, 10250, 10150, 10450.
	// Largest decline is 10300 -> 10150.
	dd, peak, trough := c.MaxDrawdown()
	assert.InDelta(t, 150.0/10300.0*100, dd, 1e-9)
	require.NotNil(t, peak)
	require.NotNil(t, trough)
	assert.Equal(t, 2, peak.Day(), "peak is the trade that set the running maximum")
	assert.Equal(t, 4, trough.Day())
}

func TestCalculator_MaxDrawdownMonotoneCurve(t *testing.T) {
	trades := []entity.Trade{mkTrade(1, 100), mkTrade(2, 200)}
	c := NewCalculator(trades, 10000, Cashflows{})

	dd, peak, trough := c.MaxDrawdown()
	assert.Zero(t, dd)
	assert.Nil(t, peak)
	assert.Nil(t, trough)
}

func TestCalculator_SharpeRatioTrades(t *testing.T) {
	c := NewCalculator(sampleTrades(), 10000, Cashflows{})

	// mean 90, sample stdev sqrt(112000/4)
	expected := 90.0 / math.Sqrt(28000.0)
	assert.InDelta(t, expected, c.SharpeRatioTrades(), 1e-9)
}

func TestCalculator_SortinoInfiniteWithoutDownDays(t *testing.T) {
	trades := []entity.Trade{mkTrade(1, 100), mkTrade(2, 300)}
	c := NewCalculator(trades, 10000, Cashflows{})

	assert.True(t, math.IsInf(c.SortinoRatio(), 1))
}

func TestCalculator_ZScore(t *testing.T) {
	t.Run("mixed sequence", func(t *testing.T) {
		c := NewCalculator(sampleTrades(), 10000, Cashflows{})

		// W,W,L,L,W: n=5, wins=3, losses=2, runs=3, p=12.
		expected := (5*(3-0.5) - 12) / math.Sqrt(12*(12-5)/4.0)
		assert.InDelta(t, expected, c.ZScore(), 1e-9)
	})

	t.Run("fewer than three trades", func(t *testing.T) {
		c := NewCalculator([]entity.Trade{mkTrade(1, 100), mkTrade(2, -50)}, 10000, Cashflows{})
		assert.Zero(t, c.ZScore())
	})

	t.Run("all wins", func(t *testing.T) {
		c := NewCalculator([]entity.Trade{mkTrade(1, 1), mkTrade(2, 2), mkTrade(3, 3)}, 10000, Cashflows{})
		assert.Zero(t, c.ZScore())
	})

	t.Run("break-even groups with losses", func(t *testing.T) {
		// W,BE,W: n=3, wins=2, runs=3, p=4.
		trades := []entity.Trade{mkTrade(1, 100), mkTrade(2, 0), mkTrade(3, 100)}
		c := NewCalculator(trades, 10000, Cashflows{})

		expected := (3*(3-0.5) - 4) / math.Sqrt(4*(4-3)/2.0)
		assert.InDelta(t, expected, c.ZScore(), 1e-9)
	})
}

func TestCalculator_LongShort(t *testing.T) {
	trades := sampleTrades()
	trades[2].Direction = "SELL"
	trades[4].Direction = "SELL"
	c := NewCalculator(trades, 10000, Cashflows{})

	long, short := c.LongShort()
	assert.Equal(t, 3, long.Trades)
	assert.Equal(t, 2, long.Wins)
	assert.InDelta(t, 200.0, long.Profit, 1e-9)
	assert.Equal(t, 2, short.Trades)
	assert.Equal(t, 1, short.Wins)
	assert.InDelta(t, 250.0, short.Profit, 1e-9)
	assert.InDelta(t, 50.0, short.WinRate, 1e-9)
}

func TestCalculator_BySymbol(t *testing.T) {
	trades := sampleTrades()
	trades[0].Symbol = "XAUUSD"
	trades[1].Symbol = "XAUUSD"
	c := NewCalculator(trades, 10000, Cashflows{})

	symbols := c.BySymbol()
	require.Len(t, symbols, 2)
	assert.Equal(t, "XAUUSD", symbols[0].Symbol, "sorted by profit descending")
	assert.InDelta(t, 300.0, symbols[0].Profit, 1e-9)
	assert.Equal(t, "EURUSD", symbols[1].Symbol)
	assert.InDelta(t, 150.0, symbols[1].Profit, 1e-9)
}

func TestCalculator_SummaryClampsProfitFactor(t *testing.T) {
	trades := []entity.Trade{mkTrade(1, 100), mkTrade(2, 200)}
	c := NewCalculator(trades, 10000, Cashflows{})

	assert.True(t, math.IsInf(c.ProfitFactor(), 1), "raw profit factor is unbounded")
	s := c.Summary()
	assert.InDelta(t, 999.99, s.ProfitFactor, 1e-9, "summary carries the sentinel")
}

func TestCalculator_SummaryGrossLossNegative(t *testing.T) {
	s := NewCalculator(sampleTrades(), 10000, Cashflows{}).Summary()
	assert.InDelta(t, -150.0, s.GrossLoss, 1e-9)
	assert.InDelta(t, 600.0, s.GrossProfit, 1e-9)
}

func TestEmptySummary(t *testing.T) {
	s := NewCalculator(nil, 5000, Cashflows{}).Summary()

	assert.InDelta(t, 5000.0, s.InitialBalance, 1e-9)
	assert.InDelta(t, 5000.0, s.FinalBalance, 1e-9)
	assert.Zero(t, s.TotalTrades)
	assert.Zero(t, s.ProfitFactor)
	assert.NotNil(t, s.MonthlyReturns)
	assert.Empty(t, s.MonthlyReturns)
	assert.NotNil(t, s.Symbols)
}

func TestCalculator_TradesPerDay(t *testing.T) {
	trades := []entity.Trade{
		mkTrade(1, 10),
		mkTrade(1, 20),
		mkTrade(2, 30),
	}
	trades[1].Time = trades[1].Time.Add(2 * time.Hour)
	c := NewCalculator(trades, 10000, Cashflows{})

	assert.InDelta(t, 1.5, c.TradesPerDay(), 1e-9)
}

func TestCalculator_SortsUnorderedInput(t *testing.T) {
	trades := []entity.Trade{mkTrade(5, 300), mkTrade(1, 100), mkTrade(3, -50)}
	c := NewCalculator(trades, 10000, Cashflows{})

	got := c.Trades()
	require.Len(t, got, 3)
	assert.True(t, got[0].Time.Before(got[1].Time))
	assert.True(t, got[1].Time.Before(got[2].Time))
}
