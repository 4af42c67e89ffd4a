package usecase

import "errors"

var (
	// ErrModelUnavailable is returned when the language model cannot be
	// reached or rejects the request.
	ErrModelUnavailable = errors.New("advisor model unavailable")
	// ErrEmptyMessage is returned when a chat request carries no text.
	ErrEmptyMessage = errors.New("message must not be empty")
)
