package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tradetracker/internal/feature/trades/domain/entity"
	"tradetracker/internal/shared/ratelimiter"
)

const (
	// entryLookback is how far past the window start the deal fetch is
	// widened so entries of positions closed inside the window resolve.
	entryLookback = 365 * 24 * time.Hour

	// DefaultWindowDays is the report window when the caller gives none.
	DefaultWindowDays = 30
)

// TerminalRepository abstracts the trading-terminal bridge. Following Go
// convention, the interface is defined by the consumer (usecase), not the
// provider (adapters).
type TerminalRepository interface {
	// HistoryDeals returns the raw deal ledger for the given time range.
	HistoryDeals(ctx context.Context, from, to time.Time) ([]entity.Deal, error)
	// HistoryOrders returns order records (SL/TP metadata) for the range.
	HistoryOrders(ctx context.Context, from, to time.Time) ([]entity.Order, error)
	// AccountInfo returns the live account snapshot.
	AccountInfo(ctx context.Context) (*entity.AccountInfo, error)
}

// tradesUsecase reconstructs trades from terminal deal history.
type tradesUsecase struct {
	terminal    TerminalRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewTradesUsecase creates a new tradesUsecase.
func NewTradesUsecase(terminal TerminalRepository, rl ratelimiter.RateLimiterInterface) *tradesUsecase {
	return &tradesUsecase{terminal: terminal, rateLimiter: rl}
}

// GetTrades fetches deal history over a widened lookback window and returns
// the reconstructed trades whose exit time falls inside [start, end],
// ordered by exit time descending for display.
func (u *tradesUsecase) GetTrades(ctx context.Context, start, end time.Time) ([]entity.Trade, error) {
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}

	u.rateLimiter.WaitIfNeeded()
	deals, err := u.terminal.HistoryDeals(ctx, start.Add(-entryLookback), end)
	if err != nil {
		return nil, fmt.Errorf("fetch deals: %w", err)
	}

	u.rateLimiter.WaitIfNeeded()
	orders, err := u.terminal.HistoryOrders(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	trades := Aggregate(deals, orders, start, end)
	sort.Slice(trades, func(i, j int) bool {
		return trades[i].ExitTime.After(trades[j].ExitTime)
	})
	return trades, nil
}

// AccountInfo returns the live account snapshot from the bridge.
func (u *tradesUsecase) AccountInfo(ctx context.Context) (*entity.AccountInfo, error) {
	u.rateLimiter.WaitIfNeeded()
	info, err := u.terminal.AccountInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch account info: %w", err)
	}
	return info, nil
}
