package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/repository"
)

// SessionRepository implements session.Repository for SQLite.
// The table holds at most one row.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Put replaces the current session.
func (r *SessionRepository) Put(ctx context.Context, sess *session.Session) error {
	query := `
		INSERT OR REPLACE INTO current_session (slot, id, username, role, token, created_at)
		VALUES (1, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sess.ID,
		sess.Username,
		string(sess.Role),
		sess.Token,
		sess.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the current session or repository.ErrNotFound.
func (r *SessionRepository) Get(ctx context.Context) (*session.Session, error) {
	query := `SELECT id, username, role, token, created_at FROM current_session WHERE slot = 1`

	var (
		sess    session.Session
		role    string
		created string
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&sess.ID, &sess.Username, &role, &sess.Token, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess.Role = session.Role(role)
	sess.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("%w: session created_at %q", repository.ErrInvalidInput, created)
	}
	return &sess, nil
}

// Delete removes the current session, if any.
func (r *SessionRepository) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM current_session`); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
