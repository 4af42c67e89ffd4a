// Package usecase implements the business logic for linked terminal accounts.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned when the account does not exist or
	// belongs to another user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyLinked is returned when the user already linked the
	// same login/server pair.
	ErrAccountAlreadyLinked = errors.New("account already linked")
)
