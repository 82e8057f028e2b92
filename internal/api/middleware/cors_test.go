package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"https://app.example"}))
	e.POST("/v1/favorites/:id/toggle", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/v1/favorites/1/toggle", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://app.example" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestCORS_UnknownOriginGetsNoHeader(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"https://app.example"}))
	e.GET("/v1/catalog", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
		t.Fatalf("expected no allow-origin, got %q", got)
	}
}
