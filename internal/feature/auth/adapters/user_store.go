// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradetracker/internal/feature/auth/domain/entity"
	"tradetracker/internal/feature/auth/usecase"
)

// userStore is the gorm implementation of the UserRepository interface.
type userStore struct {
	db *gorm.DB
}

// Compile-time check that userStore implements UserRepository.
var _ usecase.UserRepository = (*userStore)(nil)

// NewUserStore creates a new userStore on the given gorm.DB connection.
func NewUserStore(db *gorm.DB) *userStore {
	return &userStore{db: db}
}

// Create inserts a user. A unique-key violation on the email column maps
// to usecase.ErrEmailAlreadyExists. Requires the connection to be opened
// with gorm error translation enabled.
func (r *userStore) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *userStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
func (r *userStore) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
