package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/ports"
)

type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List handles GET /v1/favorites.
//
// @Summary      Favorite providers
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  favoritesResponse
// @Router       /v1/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, favoritesResponse{Favorites: h.service.List(c.Request().Context())})
}

// Status handles GET /v1/favorites/:id.
//
// @Summary      Favorite button state of a provider
// @Tags         favorites
// @Produce      json
// @Param        id   path      string  true  "Provider ID"
// @Success      200  {object}  domain.FavoriteStatus
// @Failure      404  {object}  errorResponse
// @Router       /v1/favorites/{id} [get]
func (h *FavoriteHandler) Status(c echo.Context) error {
	st, err := h.service.Status(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, st)
}

// Toggle handles POST /v1/favorites/:id/toggle.
//
// @Summary      Toggle a favorite
// @Description  Waits for the simulated network and flips membership. A failed
// @Description  toggle still answers 200 with success=false, the message and
// @Description  the toast raised for it, which carries a Retry action.
// @Tags         favorites
// @Produce      json
// @Param        id   path      string  true  "Provider ID"
// @Success      200  {object}  ports.FavoriteResult
// @Failure      404  {object}  errorResponse
// @Router       /v1/favorites/{id}/toggle [post]
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	res, err := h.service.Toggle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
