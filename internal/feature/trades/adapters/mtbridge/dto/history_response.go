// Package dto defines the wire shapes of the terminal bridge API.
package dto

// DealRecord is one raw deal as serialized by the bridge. Timestamps are
// unix seconds; type and entry use the terminal's numeric enums.
type DealRecord struct {
	Ticket     int64   `json:"ticket"`
	PositionID int64   `json:"position_id"`
	Time       int64   `json:"time"`
	Symbol     string  `json:"symbol"`
	Type       int     `json:"type"`
	Entry      int     `json:"entry"`
	Volume     float64 `json:"volume"`
	Price      float64 `json:"price"`
	Profit     float64 `json:"profit"`
	Swap       float64 `json:"swap"`
	Commission float64 `json:"commission"`
	Fee        float64 `json:"fee"`
}

// DealsResponse is the body of GET /history/deals.
type DealsResponse struct {
	Deals   []DealRecord `json:"deals"`
	Status  string       `json:"status"`
	Message string       `json:"message"`
}

// OrderRecord is one order as serialized by the bridge.
type OrderRecord struct {
	Ticket     int64   `json:"ticket"`
	PositionID int64   `json:"position_id"`
	StopLoss   float64 `json:"sl"`
	TakeProfit float64 `json:"tp"`
}

// OrdersResponse is the body of GET /history/orders.
type OrdersResponse struct {
	Orders  []OrderRecord `json:"orders"`
	Status  string        `json:"status"`
	Message string        `json:"message"`
}

// AccountResponse is the body of GET /account.
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
	Status     string  `json:"status"`
	Message    string  `json:"message"`
}
