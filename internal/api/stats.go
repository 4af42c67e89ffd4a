package api

// TradePayload is one reconstructed trade as supplied by API clients to the
// statistics endpoints. Required numeric fields are pointers so that a
// legitimate zero is distinguishable from a missing field; a batch with any
// missing required field is rejected as a whole.
type TradePayload struct {
	Ticket     *int64   `json:"ticket" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	Symbol     string   `json:"symbol" binding:"required"`
	Type       string   `json:"type" binding:"required,oneof=BUY SELL"`
	Volume     *float64 `json:"volume" binding:"required"`
	Price      *float64 `json:"price" binding:"required"`
	Profit     *float64 `json:"profit" binding:"required"`
	Swap       float64  `json:"swap"`
	Commission float64  `json:"commission"`
	NetProfit  *float64 `json:"net_profit" binding:"required"`
}

// StatsRequest is the request body for /stats/calculate and /stats/period.
type StatsRequest struct {
	Trades         []TradePayload `json:"trades" binding:"dive"`
	InitialBalance float64        `json:"initial_balance"`
}

// MonthlyReturnResponse is one calendar-month row of the summary.
type MonthlyReturnResponse struct {
	Period  string  `json:"period"`
	Profit  float64 `json:"profit"`
	GainPct float64 `json:"gain_pct"`
}

// StatsSummaryResponse is the complete statistics summary. The field set is
// the stable external contract; profit_factor is clamped to 999.99 when the
// trade set has no losing trades.
type StatsSummaryResponse struct {
	InitialBalance  float64                 `json:"initial_balance"`
	FinalBalance    float64                 `json:"final_balance"`
	TotalProfit     float64                 `json:"total_profit"`
	AbsoluteGainPct float64                 `json:"absolute_gain_pct"`
	MaxDrawdownPct  float64                 `json:"max_drawdown_pct"`
	ProfitFactor    float64                 `json:"profit_factor"`
	SharpeRatio     float64                 `json:"sharpe_ratio"`
	ZScore          float64                 `json:"z_score"`
	Expectancy      float64                 `json:"expectancy"`
	TotalTrades     int                     `json:"total_trades"`
	WinningTrades   int                     `json:"winning_trades"`
	LosingTrades    int                     `json:"losing_trades"`
	WinRatePct      float64                 `json:"win_rate_pct"`
	AvgWin          float64                 `json:"avg_win"`
	AvgLoss         float64                 `json:"avg_loss"`
	LargestWin      float64                 `json:"largest_win"`
	LargestLoss     float64                 `json:"largest_loss"`
	GrossProfit     float64                 `json:"gross_profit"`
	GrossLoss       float64                 `json:"gross_loss"`
	LongTrades      int                     `json:"long_trades"`
	LongWins        int                     `json:"long_wins"`
	LongWinRate     float64                 `json:"long_win_rate"`
	ShortTrades     int                     `json:"short_trades"`
	ShortWins       int                     `json:"short_wins"`
	ShortWinRate    float64                 `json:"short_win_rate"`
	TotalLots       float64                 `json:"total_lots"`
	MonthlyReturns  []MonthlyReturnResponse `json:"monthly_returns"`
}

// PeriodStatsResponse is one calendar-bucket row of /stats/period.
type PeriodStatsResponse struct {
	Gain   float64 `json:"gain"`
	Profit float64 `json:"profit"`
	Trades int     `json:"trades"`
	WinPct float64 `json:"win_pct"`
	Lots   float64 `json:"lots"`
}

// PeriodsResponse groups period stats by calendar bucket.
type PeriodsResponse struct {
	Today PeriodStatsResponse `json:"today"`
	Week  PeriodStatsResponse `json:"week"`
	Month PeriodStatsResponse `json:"month"`
	Year  PeriodStatsResponse `json:"year"`
}
