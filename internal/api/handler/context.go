package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/domain"
)

// UserContextKey is where the Session middleware stores the active user.
const UserContextKey = "user"

// ctxUser returns the user injected by the Session middleware. A missing
// user means the route was mounted without the middleware.
func ctxUser(c echo.Context) (*domain.User, error) {
	u, ok := c.Get(UserContextKey).(*domain.User)
	if !ok || u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return u, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
