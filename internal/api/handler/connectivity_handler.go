package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/domain"
)

// connectivitySwitch is the online signal as the API sees it.
type connectivitySwitch interface {
	Set(online bool) bool
	Status() domain.ConnectivityStatus
}

type ConnectivityHandler struct {
	monitor connectivitySwitch
}

func NewConnectivityHandler(monitor connectivitySwitch) *ConnectivityHandler {
	return &ConnectivityHandler{monitor: monitor}
}

// Get handles GET /v1/connectivity.
//
// @Summary      Current online signal
// @Tags         connectivity
// @Produce      json
// @Success      200  {object}  domain.ConnectivityStatus
// @Router       /v1/connectivity [get]
func (h *ConnectivityHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.monitor.Status())
}

// Put handles PUT /v1/connectivity, reported by the client on
// online/offline events.
//
// @Summary      Report online or offline
// @Tags         connectivity
// @Accept       json
// @Produce      json
// @Param        body  body      connectivityRequest  true  "Signal"
// @Success      200   {object}  domain.ConnectivityStatus
// @Failure      400   {object}  errorResponse
// @Router       /v1/connectivity [put]
func (h *ConnectivityHandler) Put(c echo.Context) error {
	var req connectivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	h.monitor.Set(*req.Online)
	return c.JSON(http.StatusOK, h.monitor.Status())
}
