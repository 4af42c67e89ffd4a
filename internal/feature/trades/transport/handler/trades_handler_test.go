package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradetracker/internal/api"
	"tradetracker/internal/feature/trades/domain/entity"
	"tradetracker/internal/feature/trades/usecase"
)

// mockTradesUsecase simulates the trades usecase during testing.
type mockTradesUsecase struct {
	GetTradesFunc   func(ctx context.Context, start, end time.Time) ([]entity.Trade, error)
	AccountInfoFunc func(ctx context.Context) (*entity.AccountInfo, error)
}

func (m *mockTradesUsecase) GetTrades(ctx context.Context, start, end time.Time) ([]entity.Trade, error) {
	if m.GetTradesFunc != nil {
		return m.GetTradesFunc(ctx, start, end)
	}
	return nil, nil
}

func (m *mockTradesUsecase) AccountInfo(ctx context.Context) (*entity.AccountInfo, error) {
	if m.AccountInfoFunc != nil {
		return m.AccountInfoFunc(ctx)
	}
	return &entity.AccountInfo{}, nil
}

func setupTradesRouter(uc TradesUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTradesHandler(uc)
	r := gin.New()
	r.POST("/trades", h.GetTrades)
	r.GET("/trades/account", h.GetAccount)
	return r
}

func TestTradesHandler_GetTrades(t *testing.T) {
	exit := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	entryTime := exit.Add(-6 * time.Hour)
	entryPrice := 1.0800

	mock := &mockTradesUsecase{
		GetTradesFunc: func(ctx context.Context, start, end time.Time) ([]entity.Trade, error) {
			return []entity.Trade{{
				Ticket:     2,
				PositionID: 100,
				Symbol:     "EURUSD",
				Direction:  entity.DirectionBuy,
				Volume:     1.0,
				EntryTime:  &entryTime,
				EntryPrice: &entryPrice,
				ExitTime:   exit,
				ExitPrice:  1.0850,
				Profit:     500,
				NetProfit:  490,
			}}, nil
		},
	}
	r := setupTradesRouter(mock)

	body, _ := json.Marshal(gin.H{"start_date": "2024-06-01", "end_date": "2024-06-30"})
	req := httptest.NewRequest(http.MethodPost, "/trades", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.TradesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	tr := resp.Trades[0]
	assert.Equal(t, "BUY", tr.Type)
	require.NotNil(t, tr.EntryTime)
	assert.Equal(t, entryTime.Format(time.RFC3339), *tr.EntryTime)
	assert.InDelta(t, 490.0, tr.NetProfit, 1e-9)
}

func TestTradesHandler_GetTrades_DefaultWindow(t *testing.T) {
	var gotStart, gotEnd time.Time
	mock := &mockTradesUsecase{
		GetTradesFunc: func(ctx context.Context, start, end time.Time) ([]entity.Trade, error) {
			gotStart, gotEnd = start, end
			return nil, nil
		},
	}
	r := setupTradesRouter(mock)

	req := httptest.NewRequest(http.MethodPost, "/trades", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, float64(usecase.DefaultWindowDays), gotEnd.Sub(gotStart).Hours()/24, 0.01)
}

func TestTradesHandler_GetTrades_InvalidDate(t *testing.T) {
	r := setupTradesRouter(&mockTradesUsecase{})

	body, _ := json.Marshal(gin.H{"start_date": "junk", "end_date": "2024-06-30"})
	req := httptest.NewRequest(http.MethodPost, "/trades", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTradesHandler_GetTrades_TerminalDown(t *testing.T) {
	mock := &mockTradesUsecase{
		GetTradesFunc: func(ctx context.Context, start, end time.Time) ([]entity.Trade, error) {
			return nil, usecase.ErrTerminalUnavailable
		},
	}
	r := setupTradesRouter(mock)

	req := httptest.NewRequest(http.MethodPost, "/trades", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestTradesHandler_GetAccount(t *testing.T) {
	mock := &mockTradesUsecase{
		AccountInfoFunc: func(ctx context.Context) (*entity.AccountInfo, error) {
			return &entity.AccountInfo{
				Login:    12345,
				Balance:  10450.0,
				Equity:   10500.0,
				Currency: "USD",
				Server:   "Demo-Server",
			}, nil
		},
	}
	r := setupTradesRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/trades/account", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12345), resp.Login)
	assert.InDelta(t, 10450.0, resp.Balance, 1e-9)
	assert.Equal(t, "USD", resp.Currency)
}
