package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/ports"
)

type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /v1/dashboard.
//
// @Summary      Dashboard of the logged-in user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	d, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		User:              d.User,
		Stats:             d.Stats,
		UpcomingReminders: d.UpcomingReminders,
		RecentReviews:     d.RecentReviews,
		Favorites:         d.Favorites,
	})
}
