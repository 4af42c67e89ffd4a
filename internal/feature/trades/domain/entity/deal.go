// Package entity defines the domain models for the trades feature.
package entity

import "time"

// DealType identifies the kind of ledger entry a broker deal represents.
// Only BUY and SELL deals participate in trade reconstruction; every other
// type (balance operations, credits, commissions, corrections and so on)
// is filtered out before aggregation.
type DealType int

const (
	DealTypeBuy DealType = iota
	DealTypeSell
	DealTypeBalance
	DealTypeCredit
	DealTypeCharge
	DealTypeCorrection
	DealTypeBonus
	DealTypeCommission
	DealTypeCommissionDaily
	DealTypeCommissionMonthly
	DealTypeCommissionAgentDaily
	DealTypeCommissionAgentMonthly
	DealTypeInterest
	DealTypeBuyCanceled
	DealTypeSellCanceled
)

// IsTrade reports whether the deal type is a market execution (BUY or SELL).
func (t DealType) IsTrade() bool {
	return t == DealTypeBuy || t == DealTypeSell
}

// EntryKind identifies whether a deal opens or closes its position.
type EntryKind int

const (
	EntryIn EntryKind = iota
	EntryOut
	EntryInOut
)

// Deal is one immutable broker ledger entry. Deals are append-only; once
// fetched from the terminal they are never mutated.
type Deal struct {
	Ticket     int64     // Unique deal identifier
	PositionID int64     // Groups the entry and exit deals of one logical position
	Time       time.Time // Execution time, second resolution
	Symbol     string
	Type       DealType
	Entry      EntryKind
	Volume     float64
	Price      float64
	Profit     float64
	Swap       float64
	Commission float64
	Fee        float64
}

// Order is a broker order record carrying stop-loss/take-profit metadata.
// Orders only enrich reconstructed trades; they never affect profit math.
type Order struct {
	Ticket     int64
	PositionID int64
	StopLoss   float64
	TakeProfit float64
}

// AccountInfo is the live account snapshot reported by the terminal.
type AccountInfo struct {
	Login      int64
	Balance    float64
	Equity     float64
	Margin     float64
	MarginFree float64
	Profit     float64
	Currency   string
	Server     string
	Company    string
}
