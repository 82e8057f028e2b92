package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/ports"
)

type ReminderHandler struct {
	service ports.ReminderService
}

func NewReminderHandler(service ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// List handles GET /v1/reminders.
//
// @Summary      List reminders, soonest first
// @Tags         reminders
// @Produce      json
// @Success      200  {object}  reminderListResponse
// @Router       /v1/reminders [get]
func (h *ReminderHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, reminderListResponse{Reminders: h.service.List(c.Request().Context())})
}

// Create handles POST /v1/reminders.
//
// @Summary      Schedule a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        body  body      createReminderRequest  true  "Reminder"
// @Success      201   {object}  domain.Reminder
// @Failure      400   {object}  errorResponse
// @Router       /v1/reminders [post]
func (h *ReminderHandler) Create(c echo.Context) error {
	var req createReminderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	r, err := h.service.Create(c.Request().Context(), ports.CreateReminderInput{
		ServiceType: req.ServiceType,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, r)
}

// Delete handles DELETE /v1/reminders/:id. Unknown ids succeed.
//
// @Summary      Delete a reminder
// @Tags         reminders
// @Param        id   path  string  true  "Reminder ID"
// @Success      204
// @Router       /v1/reminders/{id} [delete]
func (h *ReminderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
