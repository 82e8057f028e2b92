package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/infrastructure/queue"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"provider not found", fmt.Errorf("get provider %q: %w", "x", domain.ErrProviderNotFound), http.StatusNotFound, "provider not found"},
		{"unknown category", domain.ErrUnknownCategory, http.StatusNotFound, "unknown service category"},
		{"missing fields", fmt.Errorf("register: %w", domain.ErrMissingFields), http.StatusBadRequest, domain.MsgRequiredFields},
		{"bad seed rating", domain.ErrInvalidSeedRating, http.StatusUnprocessableEntity, domain.ErrInvalidSeedRating.Error()},
		{"bad schedule", domain.ErrInvalidSchedule, http.StatusUnprocessableEntity, domain.ErrInvalidSchedule.Error()},
		{"no user", domain.ErrNoActiveUser, http.StatusUnauthorized, domain.ErrNoActiveUser.Error()},
		{"offline", domain.ErrOffline, http.StatusServiceUnavailable, domain.MsgOffline},
		{"shutting down", queue.ErrDispatcherStopped, http.StatusServiceUnavailable, "service is shutting down"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "request timed out"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}

	h := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tc.err, c)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Error != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, resp.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_HeadHasNoBody(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrProviderNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}
