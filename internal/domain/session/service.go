package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ganot/builderp/internal/repository"
	"github.com/google/uuid"
)

// Service handles session operations.
//
// The gateway trusts its caller: any non-blank username signs in and the
// password is never inspected.
type Service struct {
	sessions Repository
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new session service.
func NewService(sessions Repository, logger *slog.Logger) *Service {
	return &Service{sessions: sessions, logger: logger, now: time.Now}
}

// LoginRequest holds sign-in credentials.
type LoginRequest struct {
	Username string
	Password string
}

// Login replaces the current session with a fresh Admin session.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      RoleAdmin,
		Token:     uuid.NewString(),
		CreatedAt: s.now().UTC(),
	}

	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("signed in", "username", username, "session_id", sess.ID)
	}
	return sess, nil
}

// Logout removes the current session. It is a no-op when nobody is signed in.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Current returns the signed-in session or ErrNoSession.
func (s *Service) Current(ctx context.Context) (*Session, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return sess, nil
}
