package handler

import (
	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Requests ---
//
// Required fields carry no validate tag: presence is checked by the services,
// which also raise the "fill in all required fields" toast.

type listProvidersQuery struct {
	Category  string  `param:"category"`
	Query     string  `query:"q"`
	MinRating float64 `query:"min_rating" validate:"min=0,max=5"`
	City      string  `query:"city"`
}

type registerProviderRequest struct {
	Name        string  `json:"name"`
	ServiceType string  `json:"serviceType"`
	City        string  `json:"city"`
	Contact     string  `json:"contact"`
	Experience  *int    `json:"experience" validate:"omitempty,min=0"`
	Rating      float64 `json:"rating"     validate:"omitempty,min=3,max=5"`
	Photo       string  `json:"photo"      validate:"omitempty,url"`
}

type addReviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `json:"comment"`
}

type createReminderRequest struct {
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"  validate:"omitempty,datetime=2006-01-02"`
	Time        string `json:"time"  validate:"omitempty,datetime=15:04"`
	Notes       string `json:"notes"`
}

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type connectivityRequest struct {
	Online *bool `json:"online" validate:"required"`
}

// --- Responses ---

type providerListResponse struct {
	Category  domain.Category   `json:"category"`
	Count     int               `json:"count"`
	Providers []domain.Provider `json:"providers"`
	Cities    []string          `json:"cities"`
}

type catalogResponse struct {
	Categories []ports.CategorySummary `json:"categories"`
	Featured   []domain.Provider       `json:"featured"`
}

type servicesResponse struct {
	Services []serviceEntry `json:"services"`
}

type serviceEntry struct {
	ports.CategorySummary
	Listing string `json:"listing"`
}

type providerLinks struct {
	Self    string `json:"self"`
	Listing string `json:"listing"`
	Reviews string `json:"reviews"`
	Toggle  string `json:"favorite"`
}

type providerResponse struct {
	domain.Provider
	IsFavorite bool          `json:"isFavorite"`
	Links      providerLinks `json:"_links"`
}

type reminderListResponse struct {
	Reminders []ports.ReminderView `json:"reminders"`
}

type sessionResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user"`
}

type dashboardResponse struct {
	User              domain.User             `json:"user"`
	Stats             ports.DashboardStats    `json:"stats"`
	UpcomingReminders []domain.Reminder       `json:"upcomingReminders"`
	RecentReviews     []ports.DashboardReview `json:"recentReviews"`
	Favorites         []domain.Provider       `json:"favorites"`
}

type favoritesResponse struct {
	Favorites []domain.Provider `json:"favorites"`
}

type toastsResponse struct {
	Toasts []domain.Toast `json:"toasts"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type aboutSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type aboutResponse struct {
	Intro    string         `json:"intro"`
	Mission  string         `json:"mission"`
	Features []aboutSection `json:"features"`
}
