package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/homeservices/directory/internal/core/domain"
)

type stubSessionService struct {
	loginFn  func(ctx context.Context, name, email string) (string, *domain.User, error)
	logoutFn func(ctx context.Context) error
}

func (s *stubSessionService) Login(ctx context.Context, name, email string) (string, *domain.User, error) {
	return s.loginFn(ctx, name, email)
}

func (s *stubSessionService) Logout(ctx context.Context) error { return s.logoutFn(ctx) }

func (s *stubSessionService) Current(ctx context.Context) (*domain.User, error) {
	return nil, domain.ErrNoActiveUser
}

func (s *stubSessionService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return nil, domain.ErrInvalidSession
}

func TestSessionHandler_Login_Success(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, name, email string) (string, *domain.User, error) {
			if name != "Ayesha" || email != "ayesha@example.com" {
				t.Fatalf("unexpected args: %s %s", name, email)
			}
			return "token123", &domain.User{ID: "u1", Name: name, Email: email}, nil
		},
	}
	h := NewSessionHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/login", `{"name":"Ayesha","email":"ayesha@example.com"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" || resp.User == nil || resp.User.Name != "Ayesha" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSessionHandler_Login_InvalidEmail(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, name, email string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewSessionHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/auth/login", `{"name":"Ayesha","email":"nope"}`)
	if code := httpCode(h.Login(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	stub := &stubSessionService{logoutFn: func(ctx context.Context) error { return nil }}
	h := NewSessionHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	stub.logoutFn = func(ctx context.Context) error { return domain.ErrNoActiveUser }
	c, _ = newTestContext(http.MethodPost, "/v1/auth/logout", "")
	if err := h.Logout(c); !errors.Is(err, domain.ErrNoActiveUser) {
		t.Fatalf("expected ErrNoActiveUser, got %v", err)
	}
}

func TestSessionHandler_Session_RequiresUserInContext(t *testing.T) {
	h := NewSessionHandler(&stubSessionService{})

	c, _ := newTestContext(http.MethodGet, "/v1/auth/session", "")
	if code := httpCode(h.Session(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}

	c, rec := newTestContext(http.MethodGet, "/v1/auth/session", "")
	c.Set(UserContextKey, &domain.User{ID: "u1", Name: "Ayesha"})
	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["token"]; ok {
		t.Fatalf("session response must not echo a token: %+v", resp)
	}
}
