package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/money"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to nil.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Call list_projects for valid ids"}
	case errors.Is(err, invoice.ErrInvalidAmount), errors.Is(err, money.ErrInvalidAmount):
		return &APIError{Code: "INVALID_AMOUNT", Message: err.Error(), RecoveryHint: "Use a positive number such as 1250.75"}
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, invoice.ErrInvalidInput), errors.Is(err, session.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, session.ErrNoSession):
		return &APIError{Code: "NO_SESSION", Message: "nobody is signed in", RecoveryHint: "Call login first"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
