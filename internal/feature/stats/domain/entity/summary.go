package entity

import "time"

// MonthlyReturn is one calendar month's profit and its percentage return
// against the running balance at the start of that month.
type MonthlyReturn struct {
	Period  string // "YYYY-MM"
	Profit  float64
	GainPct float64
}

// SideStats is the long/short breakdown for one trade direction.
type SideStats struct {
	Trades  int
	Wins    int
	WinRate float64
	Profit  float64
}

// SymbolStats is the per-symbol profit breakdown.
type SymbolStats struct {
	Symbol  string
	Trades  int
	Profit  float64
	WinRate float64
}

// PeriodStats is a calendar-bucket slice of trading activity.
type PeriodStats struct {
	Gain   float64
	Profit float64
	Trades int
	WinPct float64
	Lots   float64
}

// StatisticsSummary is the complete, immutable metrics summary derived from
// a trade sequence and an initial balance. It carries no references back to
// raw deals. ProfitFactor is already clamped for the external contract;
// SortinoRatio may be +Inf and is left for callers to special-case.
type StatisticsSummary struct {
	InitialBalance  float64
	FinalBalance    float64
	TotalProfit     float64
	AbsoluteGainPct float64

	MaxDrawdownPct    float64
	MaxDrawdownPeak   *time.Time
	MaxDrawdownTrough *time.Time
	ProfitFactor      float64
	SharpeRatio       float64
	SharpeAnnualized  float64
	SortinoRatio      float64
	ZScore            float64
	Expectancy        float64

	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRatePct    float64
	AvgWin        float64
	AvgLoss       float64
	LargestWin    float64
	LargestLoss   float64
	GrossProfit   float64
	GrossLoss     float64 // Negative by convention

	Long  SideStats
	Short SideStats

	TotalLots      float64
	TradesPerDay   float64
	MonthlyReturns []MonthlyReturn
	Symbols        []SymbolStats
}
