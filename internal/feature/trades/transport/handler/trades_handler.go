// Package handler provides the HTTP handlers for the trades feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradetracker/internal/api"
	"tradetracker/internal/feature/trades/domain/entity"
	"tradetracker/internal/feature/trades/usecase"
)

// TradesUsecase defines the trade-history operations used by this handler.
// Following Go convention, the interface is defined by the consumer.
type TradesUsecase interface {
	GetTrades(ctx context.Context, start, end time.Time) ([]entity.Trade, error)
	AccountInfo(ctx context.Context) (*entity.AccountInfo, error)
}

// TradesHandler serves reconstructed trade history and account snapshots.
type TradesHandler struct {
	uc TradesUsecase
}

// NewTradesHandler creates a new TradesHandler.
func NewTradesHandler(uc TradesUsecase) *TradesHandler {
	return &TradesHandler{uc: uc}
}

// GetTrades handles POST /trades.
//
// The window is either [start_date, end_date] or the last `days` days
// ending now (default 30). Trades are returned newest first.
func (h *TradesHandler) GetTrades(c *gin.Context) {
	var req api.TradesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	start, end, err := resolveWindow(req, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	trades, err := h.uc.GetTrades(c.Request.Context(), start, end)
	if err != nil {
		slog.Error("failed to fetch trades", "error", err, "start", start, "end", end)
		status := http.StatusBadGateway
		if errors.Is(err, usecase.ErrInvalidWindow) {
			status = http.StatusBadRequest
		}
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.TradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, toTradeResponse(t))
	}
	c.JSON(http.StatusOK, api.TradesResponse{
		Trades:    out,
		Count:     len(out),
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
	})
}

// GetAccount handles GET /trades/account.
func (h *TradesHandler) GetAccount(c *gin.Context) {
	info, err := h.uc.AccountInfo(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch account info", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.AccountResponse{
		Login:      info.Login,
		Balance:    info.Balance,
		Equity:     info.Equity,
		Margin:     info.Margin,
		MarginFree: info.MarginFree,
		Profit:     info.Profit,
		Currency:   info.Currency,
		Server:     info.Server,
		Company:    info.Company,
	})
}

// resolveWindow turns a TradesRequest into a concrete [start, end] range.
func resolveWindow(req api.TradesRequest, now time.Time) (time.Time, time.Time, error) {
	if req.StartDate != "" && req.EndDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid start_date")
		}
		end, err := parseDate(req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid end_date")
		}
		return start, end, nil
	}

	days := req.Days
	if days <= 0 {
		days = usecase.DefaultWindowDays
	}
	return now.AddDate(0, 0, -days), now, nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// toTradeResponse maps a domain trade onto the transport shape.
func toTradeResponse(t entity.Trade) api.TradeResponse {
	r := api.TradeResponse{
		Ticket:     t.Ticket,
		PositionID: t.PositionID,
		Time:       t.ExitTime.Format(time.RFC3339),
		Symbol:     t.Symbol,
		Type:       string(t.Direction),
		Volume:     t.Volume,
		EntryPrice: t.EntryPrice,
		Price:      t.ExitPrice,
		StopLoss:   t.StopLoss,
		TakeProfit: t.TakeProfit,
		Profit:     t.Profit,
		Swap:       t.Swap,
		Commission: t.Commission,
		NetProfit:  t.NetProfit,
	}
	if t.EntryTime != nil {
		s := t.EntryTime.Format(time.RFC3339)
		r.EntryTime = &s
	}
	return r
}
