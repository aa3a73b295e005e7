package session

import "context"

// Repository persists the current session. Put replaces any existing one.
type Repository interface {
	Put(ctx context.Context, sess *Session) error
	Get(ctx context.Context) (*Session, error)
	Delete(ctx context.Context) error
}
