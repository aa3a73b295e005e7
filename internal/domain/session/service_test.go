package session_test

import (
	"context"
	"testing"

	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/repository"
	"github.com/ganot/builderp/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.SessionRepository{}
	repo.On("Put", ctx, mock.AnythingOfType("*session.Session")).Return(nil)

	svc := session.NewService(repo, nil)
	first, err := svc.Login(ctx, session.LoginRequest{Username: " admin ", Password: "anything"})
	require.NoError(t, err)
	require.Equal(t, "admin", first.Username)
	require.Equal(t, session.RoleAdmin, first.Role)
	require.NotEmpty(t, first.Token)
	require.False(t, first.CreatedAt.IsZero())

	second, err := svc.Login(ctx, session.LoginRequest{Username: "admin"})
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)
	repo.AssertNumberOfCalls(t, "Put", 2)
}

func TestSessionService_LoginRequiresUsername(t *testing.T) {
	repo := &mocks.SessionRepository{}
	svc := session.NewService(repo, nil)

	_, err := svc.Login(context.Background(), session.LoginRequest{Username: "   ", Password: "secret"})
	require.ErrorIs(t, err, session.ErrInvalidInput)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestSessionService_CurrentAbsent(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.SessionRepository{}
	repo.On("Get", ctx).Return((*session.Session)(nil), repository.ErrNotFound)

	svc := session.NewService(repo, nil)
	_, err := svc.Current(ctx)
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.SessionRepository{}
	repo.On("Delete", ctx).Return(nil)

	svc := session.NewService(repo, nil)
	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
	repo.AssertNumberOfCalls(t, "Delete", 2)
}
