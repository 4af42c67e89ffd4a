package usecase

import "errors"

var (
	// ErrTerminalUnavailable is returned when the terminal bridge cannot be
	// reached or reports that no terminal session is active.
	ErrTerminalUnavailable = errors.New("terminal bridge unavailable")

	// ErrInvalidWindow is returned when a report window is empty or reversed.
	ErrInvalidWindow = errors.New("invalid report window")
)
