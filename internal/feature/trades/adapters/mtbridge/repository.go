package mtbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tradetracker/internal/feature/trades/adapters/mtbridge/dto"
	"tradetracker/internal/feature/trades/domain/entity"
	"tradetracker/internal/feature/trades/usecase"
)

// TerminalBridge is a TerminalRepository implementation backed by the
// MetaTrader bridge REST API.
type TerminalBridge struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that TerminalBridge implements TerminalRepository.
var _ usecase.TerminalRepository = (*TerminalBridge)(nil)

// NewTerminalBridge creates a new TerminalBridge with the given
// configuration and HTTP client.
func NewTerminalBridge(cfg Config, client *http.Client) *TerminalBridge {
	return &TerminalBridge{cfg: cfg, client: client}
}

// HistoryDeals fetches the raw deal ledger for [from, to].
func (b *TerminalBridge) HistoryDeals(ctx context.Context, from, to time.Time) ([]entity.Deal, error) {
	var body dto.DealsResponse
	if err := b.get(ctx, "/history/deals", rangeQuery(from, to), &body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("mtbridge: %s: %w", body.Message, usecase.ErrTerminalUnavailable)
	}

	deals := make([]entity.Deal, 0, len(body.Deals))
	for _, d := range body.Deals {
		deals = append(deals, entity.Deal{
			Ticket:     d.Ticket,
			PositionID: d.PositionID,
			Time:       time.Unix(d.Time, 0).UTC(),
			Symbol:     d.Symbol,
			Type:       entity.DealType(d.Type),
			Entry:      entity.EntryKind(d.Entry),
			Volume:     d.Volume,
			Price:      d.Price,
			Profit:     d.Profit,
			Swap:       d.Swap,
			Commission: d.Commission,
			Fee:        d.Fee,
		})
	}
	return deals, nil
}

// HistoryOrders fetches order records (SL/TP metadata) for [from, to].
func (b *TerminalBridge) HistoryOrders(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	var body dto.OrdersResponse
	if err := b.get(ctx, "/history/orders", rangeQuery(from, to), &body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("mtbridge: %s: %w", body.Message, usecase.ErrTerminalUnavailable)
	}

	orders := make([]entity.Order, 0, len(body.Orders))
	for _, o := range body.Orders {
		orders = append(orders, entity.Order{
			Ticket:     o.Ticket,
			PositionID: o.PositionID,
			StopLoss:   o.StopLoss,
			TakeProfit: o.TakeProfit,
		})
	}
	return orders, nil
}

// AccountInfo fetches the live account snapshot.
func (b *TerminalBridge) AccountInfo(ctx context.Context) (*entity.AccountInfo, error) {
	var body dto.AccountResponse
	if err := b.get(ctx, "/account", url.Values{}, &body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("mtbridge: %s: %w", body.Message, usecase.ErrTerminalUnavailable)
	}

	return &entity.AccountInfo{
		Login:      body.Login,
		Balance:    body.Balance,
		Equity:     body.Equity,
		Margin:     body.Margin,
		MarginFree: body.MarginFree,
		Profit:     body.Profit,
		Currency:   body.Currency,
		Server:     body.Server,
		Company:    body.Company,
	}, nil
}

// get performs a GET request against the bridge and decodes the JSON body.
func (b *TerminalBridge) get(ctx context.Context, path string, q url.Values, out any) error {
	u := fmt.Sprintf("%s%s?%s", b.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if b.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Api-Key "+b.cfg.APIKey)
	}

	res, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrTerminalUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("mtbridge http %d: %w", res.StatusCode, usecase.ErrTerminalUnavailable)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// rangeQuery encodes a time range as unix-second query parameters.
func rangeQuery(from, to time.Time) url.Values {
	q := url.Values{}
	q.Set("from", strconv.FormatInt(from.Unix(), 10))
	q.Set("to", strconv.FormatInt(to.Unix(), 10))
	return q
}
