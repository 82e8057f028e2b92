package ports

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
)

// ContactInput is the contact form.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactInfo is the static contact page content.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Hours    string `json:"hours"`
	Address  string `json:"address"`
	MapEmbed string `json:"mapEmbedUrl"`
}

// ContactService accepts contact messages. Submission always succeeds once
// required fields are present.
type ContactService interface {
	Send(ctx context.Context, in ContactInput) error
	Info() ContactInfo
}

// DashboardReview is a review flattened with its provider.
type DashboardReview struct {
	domain.Review
	ProviderID   string `json:"providerId"`
	ProviderName string `json:"providerName"`
	ServiceType  string `json:"serviceType"`
}

// DashboardStats are the headline counters of the dashboard.
type DashboardStats struct {
	Reminders int `json:"reminders"`
	Favorites int `json:"favorites"`
	Reviews   int `json:"reviews"`
}

// Dashboard is the logged-in user's overview.
type Dashboard struct {
	User              domain.User
	Stats             DashboardStats
	UpcomingReminders []domain.Reminder
	RecentReviews     []DashboardReview
	Favorites         []domain.Provider
}

// DashboardService assembles the dashboard for the active user.
type DashboardService interface {
	Summary(ctx context.Context) (*Dashboard, error)
}
