package httpapi

import (
	"errors"
	"net/http"

	"github.com/ganot/builderp/internal/domain/invoice"
	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/domain/session"
	"github.com/ganot/builderp/internal/money"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiError struct {
	status int
	body   ErrorResponse
}

func newAPIError(status int, code, message string) *apiError {
	return &apiError{status: status, body: ErrorResponse{Code: code, Message: message}}
}

var errInvalidPayload = newAPIError(http.StatusBadRequest, "INVALID_PAYLOAD", "request body is not valid JSON")

func mapError(err error) *apiError {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return newAPIError(http.StatusNotFound, "PROJECT_NOT_FOUND", "project not found")
	case errors.Is(err, session.ErrNoSession):
		return newAPIError(http.StatusNotFound, "NO_SESSION", "nobody is signed in")
	case errors.Is(err, invoice.ErrInvalidAmount), errors.Is(err, money.ErrInvalidAmount):
		return newAPIError(http.StatusBadRequest, "INVALID_AMOUNT", err.Error())
	case errors.Is(err, project.ErrInvalidInput), errors.Is(err, invoice.ErrInvalidInput), errors.Is(err, session.ErrInvalidInput):
		return newAPIError(http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		return newAPIError(http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	apiErr := mapError(err)
	if apiErr.status >= http.StatusInternalServerError && h.logger != nil {
		h.logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(apiErr.status, apiErr.body)
}

func abort(c *gin.Context, apiErr *apiError) {
	c.AbortWithStatusJSON(apiErr.status, apiErr.body)
}
