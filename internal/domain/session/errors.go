package session

import "errors"

var (
	// ErrNoSession indicates nobody is signed in.
	ErrNoSession = errors.New("no current session")
	// ErrInvalidInput indicates invalid session input.
	ErrInvalidInput = errors.New("invalid session input")
)
