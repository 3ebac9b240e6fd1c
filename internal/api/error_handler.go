package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/request-management/request-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()

	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrNoAccountWithNationalID),
		errors.Is(err, domain.ErrNoAccountWithEmail),
		errors.Is(err, domain.ErrNoAccountWithUsername):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrInvalidNationalID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrInvalidRequestType),
		errors.Is(err, domain.ErrEmptyReason),
		errors.Is(err, domain.ErrRoleImmutable),
		errors.Is(err, domain.ErrPrivilegeEscalation),
		errors.Is(err, domain.ErrPropertyNotFound):
		return http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrDuplicateNationalID),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrAccountInUse),
		errors.Is(err, domain.ErrAlreadyApproved),
		errors.Is(err, domain.ErrAlreadyUnapproved),
		errors.Is(err, domain.ErrRequestClosed):
		return http.StatusConflict, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
