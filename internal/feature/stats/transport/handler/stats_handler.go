// Package handler provides the HTTP handlers for the stats feature.
package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradetracker/internal/api"
	"tradetracker/internal/feature/stats/domain/entity"
	"tradetracker/internal/feature/stats/usecase"
)

// StatsUsecase defines the statistics operations used by this handler.
// Following Go convention, the interface is defined by the consumer.
type StatsUsecase interface {
	Calculate(trades []entity.Trade, initialBalance float64) entity.StatisticsSummary
	Periods(trades []entity.Trade, initialBalance float64, now time.Time) usecase.PeriodBuckets
	Demo() ([]entity.Trade, entity.StatisticsSummary)
}

// StatsHandler serves statistics summaries over HTTP.
type StatsHandler struct {
	uc StatsUsecase
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(uc StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Calculate handles POST /stats/calculate.
//
// A malformed trade record rejects the whole batch with a descriptive
// validation error; nothing is silently coerced.
func (h *StatsHandler) Calculate(c *gin.Context) {
	var req api.StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	trades, err := toTrades(req.Trades)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	summary := h.uc.Calculate(trades, req.InitialBalance)
	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

// Period handles POST /stats/period, slicing the batch into today/week/
// month/year buckets computed against one shared reference time.
func (h *StatsHandler) Period(c *gin.Context) {
	var req api.StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	trades, err := toTrades(req.Trades)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	buckets := h.uc.Periods(trades, req.InitialBalance, time.Now().UTC())
	c.JSON(http.StatusOK, api.PeriodsResponse{
		Today: toPeriodResponse(buckets.Today),
		Week:  toPeriodResponse(buckets.Week),
		Month: toPeriodResponse(buckets.Month),
		Year:  toPeriodResponse(buckets.Year),
	})
}

// Demo handles GET /stats/demo, returning the deterministic sample data
// with its computed summary.
func (h *StatsHandler) Demo(c *gin.Context) {
	trades, summary := h.uc.Demo()

	out := make([]api.TradePayload, 0, len(trades))
	for i := range trades {
		t := trades[i]
		out = append(out, api.TradePayload{
			Ticket:     &t.Ticket,
			Time:       t.Time.Format(time.RFC3339),
			Symbol:     t.Symbol,
			Type:       t.Direction,
			Volume:     &t.Volume,
			Price:      &t.Price,
			Profit:     &t.Profit,
			Swap:       t.Swap,
			Commission: t.Commission,
			NetProfit:  &t.NetProfit,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"trades": out,
		"stats":  toSummaryResponse(summary),
	})
}

// toTrades validates and converts a trade batch. The first malformed
// record fails the conversion, identifying the offending ticket.
func toTrades(payloads []api.TradePayload) ([]entity.Trade, error) {
	trades := make([]entity.Trade, 0, len(payloads))
	for i, p := range payloads {
		tm, err := time.Parse(time.RFC3339, p.Time)
		if err != nil {
			// Bare timestamps without an offset are accepted as UTC.
			tm, err = time.Parse("2006-01-02T15:04:05", p.Time)
		}
		if err != nil {
			return nil, fmt.Errorf("trade %d: invalid time %q", i, p.Time)
		}
		trades = append(trades, entity.Trade{
			Ticket:     *p.Ticket,
			Time:       tm,
			Symbol:     p.Symbol,
			Direction:  p.Type,
			Volume:     *p.Volume,
			Price:      *p.Price,
			Profit:     *p.Profit,
			Swap:       p.Swap,
			Commission: p.Commission,
			NetProfit:  *p.NetProfit,
		})
	}
	return trades, nil
}

// toSummaryResponse maps the domain summary onto the external contract.
func toSummaryResponse(s entity.StatisticsSummary) api.StatsSummaryResponse {
	monthly := make([]api.MonthlyReturnResponse, 0, len(s.MonthlyReturns))
	for _, m := range s.MonthlyReturns {
		monthly = append(monthly, api.MonthlyReturnResponse{
			Period:  m.Period,
			Profit:  m.Profit,
			GainPct: m.GainPct,
		})
	}

	return api.StatsSummaryResponse{
		InitialBalance:  s.InitialBalance,
		FinalBalance:    s.FinalBalance,
		TotalProfit:     s.TotalProfit,
		AbsoluteGainPct: s.AbsoluteGainPct,
		MaxDrawdownPct:  s.MaxDrawdownPct,
		ProfitFactor:    s.ProfitFactor,
		SharpeRatio:     s.SharpeRatio,
		ZScore:          s.ZScore,
		Expectancy:      s.Expectancy,
		TotalTrades:     s.TotalTrades,
		WinningTrades:   s.WinningTrades,
		LosingTrades:    s.LosingTrades,
		WinRatePct:      s.WinRatePct,
		AvgWin:          s.AvgWin,
		AvgLoss:         s.AvgLoss,
		LargestWin:      s.LargestWin,
		LargestLoss:     s.LargestLoss,
		GrossProfit:     s.GrossProfit,
		GrossLoss:       s.GrossLoss,
		LongTrades:      s.Long.Trades,
		LongWins:        s.Long.Wins,
		LongWinRate:     s.Long.WinRate,
		ShortTrades:     s.Short.Trades,
		ShortWins:       s.Short.Wins,
		ShortWinRate:    s.Short.WinRate,
		TotalLots:       s.TotalLots,
		MonthlyReturns:  monthly,
	}
}

func toPeriodResponse(p entity.PeriodStats) api.PeriodStatsResponse {
	return api.PeriodStatsResponse{
		Gain:   p.Gain,
		Profit: p.Profit,
		Trades: p.Trades,
		WinPct: p.WinPct,
		Lots:   p.Lots,
	}
}
