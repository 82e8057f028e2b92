package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/ports"
)

type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Login handles POST /v1/auth/login. Any name and email are accepted.
//
// @Summary      Mock login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Name and email"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: user})
}

// Logout handles POST /v1/auth/logout.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session handles GET /v1/auth/session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/session [get]
func (h *SessionHandler) Session(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}
