package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/domain"
)

// UserKey is the echo.Context key holding the authenticated *domain.User.
const UserKey = "user"

// Authenticator validates a session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Session requires a Bearer session token belonging to the active user and
// injects that user into the context.
func Session(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				if errors.Is(err, domain.ErrNoActiveUser) {
					return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}
