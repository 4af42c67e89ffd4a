package usecase

import (
	"context"
	"fmt"

	"tradetracker/internal/feature/accounts/domain/entity"
)

// AccountRepository abstracts persistence for linked terminal accounts.
// Following Go convention, the interface is defined by the consumer.
type AccountRepository interface {
	// Create persists a new linked account. It returns an error when the
	// user already linked the same login/server pair.
	Create(ctx context.Context, account *entity.TerminalAccount) error

	// FindByUserID lists all accounts linked by a user.
	FindByUserID(ctx context.Context, userID uint) ([]entity.TerminalAccount, error)

	// Delete removes an account owned by the user.
	Delete(ctx context.Context, userID, accountID uint) error
}

// accountsUsecase implements linked-account management.
type accountsUsecase struct {
	accounts AccountRepository
}

// NewAccountsUsecase creates a new accountsUsecase.
func NewAccountsUsecase(accounts AccountRepository) *accountsUsecase {
	return &accountsUsecase{accounts: accounts}
}

// Link attaches a terminal account to the user.
func (u *accountsUsecase) Link(ctx context.Context, userID uint, login int64, server, label string) (*entity.TerminalAccount, error) {
	account := &entity.TerminalAccount{
		UserID: userID,
		Login:  login,
		Server: server,
		Label:  label,
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to link account: %w", err)
	}
	return account, nil
}

// List returns the user's linked accounts.
func (u *accountsUsecase) List(ctx context.Context, userID uint) ([]entity.TerminalAccount, error) {
	return u.accounts.FindByUserID(ctx, userID)
}

// Unlink removes a linked account owned by the user.
func (u *accountsUsecase) Unlink(ctx context.Context, userID, accountID uint) error {
	return u.accounts.Delete(ctx, userID, accountID)
}
