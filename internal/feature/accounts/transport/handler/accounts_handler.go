// Package handler provides the HTTP handlers for the accounts feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tradetracker/internal/api"
	"tradetracker/internal/feature/accounts/domain/entity"
	"tradetracker/internal/feature/accounts/usecase"
	jwtmw "tradetracker/internal/platform/jwt"
)

// AccountsUsecase defines the linked-account operations used by this handler.
type AccountsUsecase interface {
	Link(ctx context.Context, userID uint, login int64, server, label string) (*entity.TerminalAccount, error)
	List(ctx context.Context, userID uint) ([]entity.TerminalAccount, error)
	Unlink(ctx context.Context, userID, accountID uint) error
}

// AccountsHandler serves the linked terminal account endpoints. All
// routes require the JWT middleware to have set the user id.
type AccountsHandler struct {
	uc AccountsUsecase
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(uc AccountsUsecase) *AccountsHandler {
	return &AccountsHandler{uc: uc}
}

// Create handles POST /accounts.
func (h *AccountsHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req api.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	account, err := h.uc.Link(c.Request.Context(), userID, req.Login, req.Server, req.Label)
	if err != nil {
		if errors.Is(err, usecase.ErrAccountAlreadyLinked) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "account already linked"})
			return
		}
		slog.Error("failed to link account", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to link account"})
		return
	}

	c.JSON(http.StatusCreated, toAccountResponse(*account))
}

// List handles GET /accounts.
func (h *AccountsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	accounts, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list accounts", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list accounts"})
		return
	}

	out := make([]api.TerminalAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /accounts/:id.
func (h *AccountsHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid account id"})
		return
	}

	if err := h.uc.Unlink(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "account not found"})
			return
		}
		slog.Error("failed to unlink account", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to unlink account"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// currentUserID pulls the authenticated user id set by the JWT middleware.
// A missing id means the route was mounted without the middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(jwtmw.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return id, true
}

func toAccountResponse(a entity.TerminalAccount) api.TerminalAccountResponse {
	return api.TerminalAccountResponse{
		ID:     a.ID,
		Login:  a.Login,
		Server: a.Server,
		Label:  a.Label,
	}
}
