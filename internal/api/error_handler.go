package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/infrastructure/queue"
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
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrProviderNotFound),
		errors.Is(err, domain.ErrReminderNotFound),
		errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusNotFound, unwrapMessage(err)
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, domain.MsgRequiredFields
	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidSeedRating),
		errors.Is(err, domain.ErrInvalidExperience),
		errors.Is(err, domain.ErrInvalidSchedule):
		return http.StatusUnprocessableEntity, unwrapMessage(err)
	case errors.Is(err, domain.ErrNoActiveUser), errors.Is(err, domain.ErrInvalidSession):
		return http.StatusUnauthorized, unwrapMessage(err)
	case errors.Is(err, domain.ErrOffline):
		return http.StatusServiceUnavailable, domain.MsgOffline
	case errors.Is(err, queue.ErrDispatcherStopped):
		return http.StatusServiceUnavailable, "service is shutting down"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, context.Canceled):
		// The client is gone; the status only reaches the access log.
		return 499, "request cancelled"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// unwrapMessage returns the innermost sentinel text, dropping call-site
// context such as `list providers "x": `.
func unwrapMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
