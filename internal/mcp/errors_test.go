package mcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/money"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{project.ErrProjectNotFound, "PROJECT_NOT_FOUND"},
		{fmt.Errorf("wrapped: %w", money.ErrInvalidAmount), "INVALID_AMOUNT"},
		{invoice.ErrInvalidAmount, "INVALID_AMOUNT"},
		{fmt.Errorf("%w: name is required", project.ErrInvalidInput), "INVALID_INPUT"},
		{invoice.ErrInvalidInput, "INVALID_INPUT"},
		{session.ErrInvalidInput, "INVALID_INPUT"},
		{session.ErrNoSession, "NO_SESSION"},
	}
	for _, tc := range cases {
		apiErr := MapError(tc.err)
		require.NotNil(t, apiErr, tc.err.Error())
		require.Equal(t, tc.code, apiErr.Code)
	}

	require.Nil(t, MapError(nil))
	require.Nil(t, MapError(errors.New("disk full")))
}

func TestMapErrorPassesUnknownThrough(t *testing.T) {
	boom := errors.New("disk full")
	require.Same(t, boom, mapError(boom))

	var apiErr *APIError
	require.ErrorAs(t, mapError(project.ErrProjectNotFound), &apiErr)
	require.Equal(t, "PROJECT_NOT_FOUND: project not found (Call list_projects for valid ids)", apiErr.Error())
}
