// Package handler provides the HTTP handlers for the advisor feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradetracker/internal/api"
	"tradetracker/internal/feature/advisor/domain/entity"
	"tradetracker/internal/feature/advisor/usecase"
)

// AdvisorUsecase defines the advisor operations used by this handler.
type AdvisorUsecase interface {
	Chat(ctx context.Context, sessionID, message string, stats *entity.PerformanceContext) (string, string, error)
	Analyze(ctx context.Context, stats entity.PerformanceContext, question string) (string, error)
}

// AdvisorHandler serves the AI advisor endpoints.
type AdvisorHandler struct {
	uc AdvisorUsecase
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(uc AdvisorUsecase) *AdvisorHandler {
	return &AdvisorHandler{uc: uc}
}

// Chat handles POST /advisor/chat.
func (h *AdvisorHandler) Chat(c *gin.Context) {
	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	sessionID, reply, err := h.uc.Chat(c.Request.Context(), req.SessionID, req.Message, toPerformanceContext(req.Stats))
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("advisor chat failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "advisor unavailable"})
		return
	}

	c.JSON(http.StatusOK, api.ChatResponse{SessionID: sessionID, Response: reply})
}

// Analyze handles POST /advisor/analyze.
func (h *AdvisorHandler) Analyze(c *gin.Context) {
	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), *toPerformanceContext(&req.Stats), req.Question)
	if err != nil {
		slog.Error("advisor analyze failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "advisor unavailable"})
		return
	}

	c.JSON(http.StatusOK, api.AnalyzeResponse{Analysis: analysis})
}

func toPerformanceContext(s *api.StatsContext) *entity.PerformanceContext {
	if s == nil {
		return nil
	}
	return &entity.PerformanceContext{
		TotalTrades:    s.TotalTrades,
		WinRatePct:     s.WinRatePct,
		TotalProfit:    s.TotalProfit,
		ProfitFactor:   s.ProfitFactor,
		MaxDrawdownPct: s.MaxDrawdownPct,
		Expectancy:     s.Expectancy,
		AvgWin:         s.AvgWin,
		AvgLoss:        s.AvgLoss,
	}
}
