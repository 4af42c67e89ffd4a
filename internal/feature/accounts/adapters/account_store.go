// Package adapters provides the repository implementations for the accounts feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradetracker/internal/feature/accounts/domain/entity"
	"tradetracker/internal/feature/accounts/usecase"
)

// accountStore is the gorm implementation of the AccountRepository interface.
type accountStore struct {
	db *gorm.DB
}

// Compile-time check that accountStore implements AccountRepository.
var _ usecase.AccountRepository = (*accountStore)(nil)

// NewAccountStore creates a new accountStore on the given gorm.DB connection.
func NewAccountStore(db *gorm.DB) *accountStore {
	return &accountStore{db: db}
}

// Create inserts a linked account. A unique-key violation maps to
// usecase.ErrAccountAlreadyLinked.
func (r *accountStore) Create(ctx context.Context, a *entity.TerminalAccount) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAccountAlreadyLinked
		}
		return err
	}
	return nil
}

// FindByUserID lists the user's linked accounts, newest first.
func (r *accountStore) FindByUserID(ctx context.Context, userID uint) ([]entity.TerminalAccount, error) {
	var accounts []entity.TerminalAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Delete removes the account if it belongs to the user. Deleting a row
// that does not exist (or is owned by someone else) returns
// usecase.ErrAccountNotFound.
func (r *accountStore) Delete(ctx context.Context, userID, accountID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		Delete(&entity.TerminalAccount{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAccountNotFound
	}
	return nil
}
