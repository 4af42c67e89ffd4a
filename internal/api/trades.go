package api

// TradesRequest selects the report window for /trades. When start_date and
// end_date are absent, the window is the last `days` days ending now.
type TradesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// TradeResponse is one reconstructed round-trip trade. Entry fields are
// null when the opening deal fell outside the fetched lookback window.
type TradeResponse struct {
	Ticket     int64    `json:"ticket"`
	PositionID int64    `json:"position_id"`
	Time       string   `json:"time"`
	EntryTime  *string  `json:"entry_time"`
	Symbol     string   `json:"symbol"`
	Type       string   `json:"type"`
	Volume     float64  `json:"volume"`
	EntryPrice *float64 `json:"entry_price"`
	Price      float64  `json:"price"`
	StopLoss   *float64 `json:"sl"`
	TakeProfit *float64 `json:"tp"`
	Profit     float64  `json:"profit"`
	Swap       float64  `json:"swap"`
	Commission float64  `json:"commission"`
	NetProfit  float64  `json:"net_profit"`
}

// TradesResponse is the body returned by POST /trades.
type TradesResponse struct {
	Trades    []TradeResponse `json:"trades"`
	Count     int             `json:"count"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
}

// AccountResponse mirrors the live account snapshot of the terminal bridge.
type AccountResponse struct {
	Login      int64   `json:"login"`
	Balance    float64 `json:"balance"`
	Equity     float64 `json:"equity"`
	Margin     float64 `json:"margin"`
	MarginFree float64 `json:"margin_free"`
	Profit     float64 `json:"profit"`
	Currency   string  `json:"currency"`
	Server     string  `json:"server"`
	Company    string  `json:"company"`
}
