package domain

import (
	"errors"
	"time"
)

const (
	ReminderDateLayout = "2006-01-02"
	ReminderTimeLayout = "15:04"
)

var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidSchedule  = errors.New("reminder date or time is malformed")
	ErrReminderNotFound = errors.New("reminder not found")
)

// Reminder is a user-scheduled appointment note. Reminders are never
// dispatched; they are created, listed and deleted.
type Reminder struct {
	ID          string `json:"id"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ScheduledAt combines Date and Time in the given location.
func (r Reminder) ScheduledAt(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(ReminderDateLayout+" "+ReminderTimeLayout, r.Date+" "+r.Time, loc)
	if err != nil {
		return time.Time{}, ErrInvalidSchedule
	}
	return t, nil
}

// IsPast reports whether the reminder's scheduled moment is before now.
// Malformed schedules are never considered past.
func (r Reminder) IsPast(now time.Time) bool {
	at, err := r.ScheduledAt(now.Location())
	if err != nil {
		return false
	}
	return at.Before(now)
}
