package invoice

import "errors"

var (
	// ErrInvalidInput indicates invalid invoice input.
	ErrInvalidInput = errors.New("invalid invoice input")
	// ErrInvalidAmount indicates a missing, zero or negative amount.
	ErrInvalidAmount = errors.New("invoice amount must be positive")
)
