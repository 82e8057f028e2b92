package ports

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
)

// CreateReminderInput is the reminder form.
type CreateReminderInput struct {
	ServiceType string
	Date        string
	Time        string
	Notes       string
}

// ReminderView is a reminder annotated for display.
type ReminderView struct {
	domain.Reminder
	Past bool `json:"past"`
}

// ReminderService schedules and removes reminders.
type ReminderService interface {
	Create(ctx context.Context, in CreateReminderInput) (*domain.Reminder, error)
	List(ctx context.Context) []ReminderView
	Upcoming(ctx context.Context, limit int) []domain.Reminder
	Delete(ctx context.Context, id string) error
}
