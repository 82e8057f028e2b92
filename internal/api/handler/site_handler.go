package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

var about = aboutResponse{
	Intro: "Home Services is a platform that connects families and working professionals with " +
		"trusted local service providers in Lahore.",
	Mission: "To simplify home maintenance by making it easy to find verified, reliable, and " +
		"skilled service providers.",
	Features: []aboutSection{
		{Title: "Verified & Trusted Professionals", Body: "All service providers are carefully verified to ensure quality and reliability."},
		{Title: "Easy Reminder System", Body: "Never miss an appointment with our smart reminder system."},
		{Title: "User Ratings & Reviews", Body: "Make informed decisions based on genuine customer reviews."},
		{Title: "Free to Use", Body: "Connect with service providers at no cost - pay only for services rendered."},
	},
}

// SiteHandler serves the static about and contact pages and the contact form.
type SiteHandler struct {
	contact ports.ContactService
}

func NewSiteHandler(contact ports.ContactService) *SiteHandler {
	return &SiteHandler{contact: contact}
}

// About handles GET /v1/about.
//
// @Summary      About page
// @Tags         site
// @Produce      json
// @Success      200  {object}  aboutResponse
// @Router       /v1/about [get]
func (h *SiteHandler) About(c echo.Context) error {
	return c.JSON(http.StatusOK, about)
}

// ContactInfo handles GET /v1/contact.
//
// @Summary      Contact details and map
// @Tags         site
// @Produce      json
// @Success      200  {object}  ports.ContactInfo
// @Router       /v1/contact [get]
func (h *SiteHandler) ContactInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contact.Info())
}

// SendContact handles POST /v1/contact.
//
// @Summary      Send a contact message
// @Tags         site
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/contact [post]
func (h *SiteHandler) SendContact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.contact.Send(c.Request().Context(), ports.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: domain.MsgContactSent})
}
