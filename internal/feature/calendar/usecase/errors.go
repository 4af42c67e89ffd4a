package usecase

import "errors"

// ErrCalendarUnavailable is returned when the upstream news feed cannot
// be reached or rejects the request.
var ErrCalendarUnavailable = errors.New("news calendar unavailable")
