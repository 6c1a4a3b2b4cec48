package utils

import "errors"

var (
	ErrMissingAPIKey      = errors.New("api key not configured")
	ErrMissingDestination = errors.New("destination is required")
	ErrInvalidDayCount    = errors.New("invalid day count")
	ErrEmptyCompletion    = errors.New("model returned empty content")
	ErrUpstream           = errors.New("completion provider error")
)
