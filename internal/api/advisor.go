package api

// StatsContext is the subset of the statistics summary that the advisor
// injects into its prompts. All fields are optional.
type StatsContext struct {
	TotalTrades    int     `json:"total_trades"`
	WinRatePct     float64 `json:"win_rate_pct"`
	TotalProfit    float64 `json:"total_profit"`
	ProfitFactor   float64 `json:"profit_factor"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
	Expectancy     float64 `json:"expectancy"`
	AvgWin         float64 `json:"avg_win"`
	AvgLoss        float64 `json:"avg_loss"`
}

// ChatRequest is the request body for POST /advisor/chat.
type ChatRequest struct {
	SessionID string        `json:"session_id"`
	Message   string        `json:"message" binding:"required"`
	Stats     *StatsContext `json:"stats"`
}

// ChatResponse carries the advisor's reply and the session it belongs to.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Response  string `json:"response"`
}

// AnalyzeRequest is the request body for POST /advisor/analyze.
type AnalyzeRequest struct {
	Stats    StatsContext `json:"stats" binding:"required"`
	Question string       `json:"question"`
}

// AnalyzeResponse carries a one-shot performance review.
type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}
