// Package usecase implements the statistics engine: pure computation over
// a reconstructed trade sequence and an initial balance.
package usecase

import (
	"math"
	"sort"
	"time"

	"tradetracker/internal/feature/stats/domain/entity"
)

const (
	// DefaultInitialBalance is assumed when a request carries none.
	DefaultInitialBalance = 10000.0

	// riskFreeRate is the annual risk-free rate used by the annualized
	// Sharpe and Sortino ratios.
	riskFreeRate = 0.02

	// tradingDaysPerYear annualizes daily return statistics.
	tradingDaysPerYear = 252

	// maxProfitFactor is the sentinel emitted in place of an unbounded
	// profit factor. Only the summary clamps; ProfitFactor itself may
	// return +Inf.
	maxProfitFactor = 999.99
)

// Calculator computes trading statistics from a closed-trade sequence. It
// is immutable after construction and safe for concurrent use: every method
// is a pure function of the captured inputs.
type Calculator struct {
	trades         []entity.Trade // ordered by exit time ascending
	initialBalance float64
	deposits       float64
	withdrawals    float64
	curve          []entity.EquityPoint
}

// Cashflows are external deposits and withdrawals during the report period,
// used to separate trading performance from funding changes.
type Cashflows struct {
	Deposits    float64
	Withdrawals float64
}

// NewCalculator captures the trade sequence (sorted by exit time ascending)
// and precomputes the equity curve all drawdown/return math operates on.
func NewCalculator(trades []entity.Trade, initialBalance float64, flows Cashflows) *Calculator {
	sorted := make([]entity.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	return &Calculator{
		trades:         sorted,
		initialBalance: initialBalance,
		deposits:       flows.Deposits,
		withdrawals:    flows.Withdrawals,
		curve:          BuildEquityCurve(sorted, initialBalance),
	}
}

// Trades returns the captured trade sequence, exit time ascending.
func (c *Calculator) Trades() []entity.Trade { return c.trades }

// EquityCurve returns the precomputed balance curve.
func (c *Calculator) EquityCurve() []entity.EquityPoint { return c.curve }

// TotalProfit is the sum of net profit over all trades.
func (c *Calculator) TotalProfit() float64 {
	sum := 0.0
	for _, t := range c.trades {
		sum += t.NetProfit
	}
	return sum
}

// FinalBalance is the initial balance plus total profit.
func (c *Calculator) FinalBalance() float64 {
	return c.initialBalance + c.TotalProfit()
}

// AbsoluteGainPct is the percentage gain adjusted for deposits and
// withdrawals, showing pure trading performance.
func (c *Calculator) AbsoluteGainPct() float64 {
	if len(c.trades) == 0 || c.initialBalance == 0 {
		return 0
	}
	adjusted := c.FinalBalance() - c.deposits + c.withdrawals
	return (adjusted/c.initialBalance - 1) * 100
}

// MaxDrawdown returns the largest peak-to-trough decline of the balance
// curve as a percentage, with the peak and trough timestamps. The peak is
// the last point at or before the trough whose balance equals the running
// maximum there.
func (c *Calculator) MaxDrawdown() (float64, *time.Time, *time.Time) {
	if len(c.curve) == 0 {
		return 0, nil, nil
	}

	maxDD := 0.0
	troughIdx := 0
	runningMaxAtTrough := c.curve[0].Balance

	peak := c.curve[0].Balance
	for i, p := range c.curve {
		if p.Balance > peak {
			peak = p.Balance
		}
		dd := safeDiv(peak-p.Balance, peak, 0) * 100
		if dd > maxDD {
			maxDD = dd
			troughIdx = i
			runningMaxAtTrough = peak
		}
	}

	if maxDD == 0 {
		return 0, nil, nil
	}

	peakIdx := troughIdx
	for i := troughIdx; i >= 0; i-- {
		if c.curve[i].Balance == runningMaxAtTrough {
			peakIdx = i
			break
		}
	}

	peakTime := c.curve[peakIdx].Time
	troughTime := c.curve[troughIdx].Time
	return maxDD, &peakTime, &troughTime
}

// DrawdownSeries returns the drawdown percentage at every curve point,
// aligned with EquityCurve, for charting consumers.
func (c *Calculator) DrawdownSeries() []float64 {
	out := make([]float64, len(c.curve))
	peak := 0.0
	for i, p := range c.curve {
		if i == 0 || p.Balance > peak {
			peak = p.Balance
		}
		out[i] = safeDiv(peak-p.Balance, peak, 0) * 100
	}
	return out
}

// GrossProfit is the sum of winning trades' net profit.
func (c *Calculator) GrossProfit() float64 {
	sum := 0.0
	for _, t := range c.trades {
		if t.IsWin() {
			sum += t.NetProfit
		}
	}
	return sum
}

// GrossLoss is the sum of losing trades' net profit (negative).
func (c *Calculator) GrossLoss() float64 {
	sum := 0.0
	for _, t := range c.trades {
		if t.IsLoss() {
			sum += t.NetProfit
		}
	}
	return sum
}

// ProfitFactor is gross profit over absolute gross loss. It returns +Inf
// when there are no losing trades but positive gross profit, and 0 on an
// empty trade set; clamping to the 999.99 sentinel happens only in Summary.
func (c *Calculator) ProfitFactor() float64 {
	if len(c.trades) == 0 {
		return 0
	}
	grossProfit := c.GrossProfit()
	grossLoss := math.Abs(c.GrossLoss())
	if grossLoss == 0 {
		if grossProfit > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return grossProfit / grossLoss
}

// dailyReturns aggregates net profit by calendar day (UTC) and converts
// each day to a percentage return against that day's starting balance (the
// previous day's ending balance, or the initial balance for day one).
func (c *Calculator) dailyReturns() []float64 {
	if len(c.trades) == 0 {
		return nil
	}

	type dayPnL struct {
		day time.Time
		pnl float64
	}
	byDay := map[time.Time]float64{}
	for _, t := range c.trades {
		d := t.Time.UTC().Truncate(24 * time.Hour)
		byDay[d] += t.NetProfit
	}
	days := make([]dayPnL, 0, len(byDay))
	for d, p := range byDay {
		days = append(days, dayPnL{day: d, pnl: p})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].day.Before(days[j].day) })

	returns := make([]float64, 0, len(days))
	running := c.initialBalance
	for _, d := range days {
		returns = append(returns, safeDiv(d.pnl, running, 0)*100)
		running += d.pnl
	}
	return returns
}

// SharpeRatioTrades is the trade-level Sharpe used by the summary contract:
// mean over sample standard deviation of per-trade net profit, with no
// annualization. Returns 0 with fewer than two trades or zero variance.
func (c *Calculator) SharpeRatioTrades() float64 {
	if len(c.trades) < 2 {
		return 0
	}
	profits := make([]float64, len(c.trades))
	for i, t := range c.trades {
		profits[i] = t.NetProfit
	}
	sd := sampleStdev(profits)
	if sd == 0 {
		return 0
	}
	return mean(profits) / sd
}

// SharpeRatioAnnualized is the daily-return Sharpe: mean daily return
// annualized over 252 trading days, net of the risk-free rate, over the
// annualized daily volatility. Returns 0 with fewer than two trading days
// or zero variance.
func (c *Calculator) SharpeRatioAnnualized() float64 {
	daily := c.dailyReturns()
	if len(daily) < 2 {
		return 0
	}

	decimals := make([]float64, len(daily))
	for i, r := range daily {
		decimals[i] = r / 100
	}
	sd := sampleStdev(decimals)
	if sd == 0 {
		return 0
	}
	annualizedReturn := mean(decimals) * tradingDaysPerYear
	annualizedVol := sd * math.Sqrt(tradingDaysPerYear)
	return (annualizedReturn - riskFreeRate) / annualizedVol
}

// SortinoRatio is the annualized Sharpe with the denominator replaced by
// the downside deviation (sample stdev of negative daily returns only).
// With no negative days it returns +Inf; callers must special-case that,
// it is never clamped here.
func (c *Calculator) SortinoRatio() float64 {
	daily := c.dailyReturns()
	if len(daily) < 2 {
		return 0
	}

	decimals := make([]float64, len(daily))
	var downside []float64
	for i, r := range daily {
		decimals[i] = r / 100
		if decimals[i] < 0 {
			downside = append(downside, decimals[i])
		}
	}
	if len(downside) == 0 {
		return math.Inf(1)
	}
	downsideSd := sampleStdev(downside)
	if downsideSd == 0 {
		return 0
	}
	annualizedReturn := mean(decimals) * tradingDaysPerYear
	annualizedDownside := downsideSd * math.Sqrt(tradingDaysPerYear)
	return (annualizedReturn - riskFreeRate) / annualizedDownside
}

// ZScore runs the Wald–Wolfowitz run test over the win/loss sequence to
// measure streak significance. Returns 0 with fewer than three trades, or
// when every outcome is a win or every outcome is a loss.
//
// The denominator guard that substitutes 1 when P <= N is kept for
// compatibility with existing consumers even though it is not part of the
// textbook statistic; see DESIGN.md.
func (c *Calculator) ZScore() float64 {
	if len(c.trades) < 3 {
		return 0
	}

	n := float64(len(c.trades))
	wins := 0
	runs := 1
	for i, t := range c.trades {
		if t.IsWin() {
			wins++
		}
		if i > 0 && t.IsWin() != c.trades[i-1].IsWin() {
			runs++
		}
	}
	w := float64(wins)
	l := n - w
	if w == 0 || l == 0 {
		return 0
	}

	p := 2 * w * l
	denominator := 1.0
	if n > 1 && p > n {
		denominator = math.Sqrt(p * (p - n) / (n - 1))
	}
	if denominator == 0 {
		return 0
	}
	return (n*(float64(runs)-0.5) - p) / denominator
}

// Expectancy is the expected net result per trade given the observed win
// rate and average win/loss sizes. When there are no losing trades it falls
// back to the average win alone.
func (c *Calculator) Expectancy() float64 {
	if len(c.trades) == 0 {
		return 0
	}
	avgLoss := c.AvgLoss()
	avgWin := c.AvgWin()
	if avgLoss == 0 {
		return avgWin
	}
	winRate := c.WinRatePct() / 100
	return winRate*avgWin - (1-winRate)*math.Abs(avgLoss)
}

// WinningTrades counts trades with positive net profit.
func (c *Calculator) WinningTrades() int {
	n := 0
	for _, t := range c.trades {
		if t.IsWin() {
			n++
		}
	}
	return n
}

// LosingTrades counts trades with negative net profit.
func (c *Calculator) LosingTrades() int {
	n := 0
	for _, t := range c.trades {
		if t.IsLoss() {
			n++
		}
	}
	return n
}

// WinRatePct is winning trades over total trades as a percentage.
func (c *Calculator) WinRatePct() float64 {
	return safeDiv(float64(c.WinningTrades()), float64(len(c.trades)), 0) * 100
}

// AvgWin is the mean net profit of winning trades.
func (c *Calculator) AvgWin() float64 {
	return safeDiv(c.GrossProfit(), float64(c.WinningTrades()), 0)
}

// AvgLoss is the mean net profit of losing trades (negative).
func (c *Calculator) AvgLoss() float64 {
	return safeDiv(c.GrossLoss(), float64(c.LosingTrades()), 0)
}

// LargestWin is the single largest net profit, 0 on an empty set.
func (c *Calculator) LargestWin() float64 {
	if len(c.trades) == 0 {
		return 0
	}
	max := c.trades[0].NetProfit
	for _, t := range c.trades[1:] {
		if t.NetProfit > max {
			max = t.NetProfit
		}
	}
	return max
}

// LargestLoss is the single smallest net profit, 0 on an empty set.
func (c *Calculator) LargestLoss() float64 {
	if len(c.trades) == 0 {
		return 0
	}
	min := c.trades[0].NetProfit
	for _, t := range c.trades[1:] {
		if t.NetProfit < min {
			min = t.NetProfit
		}
	}
	return min
}

// LongShort partitions trades by direction and reports count, wins, win
// rate and summed profit per side.
func (c *Calculator) LongShort() (long, short entity.SideStats) {
	for _, t := range c.trades {
		side := &long
		if t.Direction == "SELL" {
			side = &short
		}
		side.Trades++
		if t.IsWin() {
			side.Wins++
		}
		side.Profit += t.NetProfit
	}
	long.WinRate = safeDiv(float64(long.Wins), float64(long.Trades), 0) * 100
	short.WinRate = safeDiv(float64(short.Wins), float64(short.Trades), 0) * 100
	return long, short
}

// BySymbol groups trades by symbol, sorted by summed profit descending.
func (c *Calculator) BySymbol() []entity.SymbolStats {
	type acc struct {
		trades int
		wins   int
		profit float64
	}
	grouped := map[string]*acc{}
	for _, t := range c.trades {
		a, ok := grouped[t.Symbol]
		if !ok {
			a = &acc{}
			grouped[t.Symbol] = a
		}
		a.trades++
		if t.IsWin() {
			a.wins++
		}
		a.profit += t.NetProfit
	}

	out := make([]entity.SymbolStats, 0, len(grouped))
	for sym, a := range grouped {
		out = append(out, entity.SymbolStats{
			Symbol:  sym,
			Trades:  a.trades,
			Profit:  a.profit,
			WinRate: safeDiv(float64(a.wins), float64(a.trades), 0) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profit != out[j].Profit {
			return out[i].Profit > out[j].Profit
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// TradesPerDay is total trades over the number of distinct calendar days
// with at least one trade.
func (c *Calculator) TradesPerDay() float64 {
	if len(c.trades) == 0 {
		return 0
	}
	days := map[time.Time]struct{}{}
	for _, t := range c.trades {
		days[t.Time.UTC().Truncate(24*time.Hour)] = struct{}{}
	}
	return safeDiv(float64(len(c.trades)), float64(len(days)), 0)
}

// TotalLots is the summed volume over all trades.
func (c *Calculator) TotalLots() float64 {
	sum := 0.0
	for _, t := range c.trades {
		sum += t.Volume
	}
	return sum
}

// Summary assembles the complete statistics summary. The profit factor is
// clamped to the 999.99 sentinel here so the external contract never
// carries an unbounded value; the Sortino ratio is passed through as-is.
func (c *Calculator) Summary() entity.StatisticsSummary {
	if len(c.trades) == 0 {
		return EmptySummary(c.initialBalance)
	}

	maxDD, peak, trough := c.MaxDrawdown()
	long, short := c.LongShort()

	profitFactor := c.ProfitFactor()
	if math.IsInf(profitFactor, 1) {
		profitFactor = maxProfitFactor
	}

	return entity.StatisticsSummary{
		InitialBalance:  c.initialBalance,
		FinalBalance:    c.FinalBalance(),
		TotalProfit:     c.TotalProfit(),
		AbsoluteGainPct: c.AbsoluteGainPct(),

		MaxDrawdownPct:    maxDD,
		MaxDrawdownPeak:   peak,
		MaxDrawdownTrough: trough,
		ProfitFactor:      profitFactor,
		SharpeRatio:       c.SharpeRatioTrades(),
		SharpeAnnualized:  c.SharpeRatioAnnualized(),
		SortinoRatio:      c.SortinoRatio(),
		ZScore:            c.ZScore(),
		Expectancy:        c.Expectancy(),

		TotalTrades:   len(c.trades),
		WinningTrades: c.WinningTrades(),
		LosingTrades:  c.LosingTrades(),
		WinRatePct:    c.WinRatePct(),
		AvgWin:        c.AvgWin(),
		AvgLoss:       c.AvgLoss(),
		LargestWin:    c.LargestWin(),
		LargestLoss:   c.LargestLoss(),
		GrossProfit:   c.GrossProfit(),
		GrossLoss:     -math.Abs(c.GrossLoss()),

		Long:  long,
		Short: short,

		TotalLots:      c.TotalLots(),
		TradesPerDay:   c.TradesPerDay(),
		MonthlyReturns: MonthlyReturns(c.trades, c.initialBalance),
		Symbols:        c.BySymbol(),
	}
}

// EmptySummary is the canonical zero-valued summary for an empty trade
// sequence: every numeric field 0 (the profit factor carries no sentinel)
// and an empty monthly-returns sequence.
func EmptySummary(initialBalance float64) entity.StatisticsSummary {
	return entity.StatisticsSummary{
		InitialBalance: initialBalance,
		FinalBalance:   initialBalance,
		MonthlyReturns: []entity.MonthlyReturn{},
		Symbols:        []entity.SymbolStats{},
	}
}
