// Package entity defines the advisor conversation domain model.
package entity

import "time"

// Role identifies who produced a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in an advisor conversation.
type Message struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	Time    time.Time `json:"time"`
}

// PerformanceContext is the slice of account statistics the advisor can
// reference when answering. The zero value means no statistics were
// supplied with the request.
type PerformanceContext struct {
	TotalTrades    int
	WinRatePct     float64
	TotalProfit    float64
	ProfitFactor   float64
	MaxDrawdownPct float64
	Expectancy     float64
	AvgWin         float64
	AvgLoss        float64
}
