package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

// ReminderService implements ports.ReminderService.
type ReminderService struct {
	store    ports.StateStore
	notifier ports.Notifier
	clock    ports.Clock
	log      zerolog.Logger
}

var _ ports.ReminderService = (*ReminderService)(nil)

func NewReminderService(store ports.StateStore, notifier ports.Notifier, clock ports.Clock, log zerolog.Logger) *ReminderService {
	return &ReminderService{store: store, notifier: notifier, clock: clock, log: log}
}

func (s *ReminderService) Create(ctx context.Context, in ports.CreateReminderInput) (*domain.Reminder, error) {
	if blank(in.ServiceType, in.Date, in.Time) {
		s.notifier.Publish(domain.ErrorToast(domain.MsgRequiredFields))
		return nil, domain.ErrMissingFields
	}

	r := domain.Reminder{
		ID:          uuid.NewString(),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   s.clock.Now().UTC().Format(time.RFC3339),
	}
	if _, err := r.ScheduledAt(time.Local); err != nil {
		return nil, err
	}

	s.store.AddReminder(ctx, r)
	s.log.Info().Str("reminder_id", r.ID).Str("date", r.Date).Str("time", r.Time).Msg("reminder created")
	s.notifier.Publish(domain.SuccessToast(domain.MsgReminderSet))

	return &r, nil
}

// List returns every reminder ordered by scheduled moment, flagging those
// already past.
func (s *ReminderService) List(context.Context) []ports.ReminderView {
	now := s.clock.Now()
	reminders := sortedBySchedule(s.store.Reminders())

	out := make([]ports.ReminderView, len(reminders))
	for i, r := range reminders {
		out[i] = ports.ReminderView{Reminder: r, Past: r.IsPast(now)}
	}
	return out
}

// Upcoming returns at most limit reminders scheduled at or after now,
// soonest first. limit <= 0 means no limit.
func (s *ReminderService) Upcoming(_ context.Context, limit int) []domain.Reminder {
	now := s.clock.Now()
	out := slices.DeleteFunc(sortedBySchedule(s.store.Reminders()), func(r domain.Reminder) bool {
		return r.IsPast(now)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Delete removes the reminder with id. Unknown ids are not an error.
func (s *ReminderService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteReminder(ctx, id) {
		s.log.Debug().Str("reminder_id", id).Msg("delete of unknown reminder")
	}
	s.notifier.Publish(domain.SuccessToast(domain.MsgReminderDeleted))
	return nil
}

// sortedBySchedule orders by date then time. Both use fixed-width layouts so
// string order is chronological.
func sortedBySchedule(reminders []domain.Reminder) []domain.Reminder {
	slices.SortStableFunc(reminders, func(a, b domain.Reminder) int {
		return strings.Compare(a.Date+" "+a.Time, b.Date+" "+b.Time)
	})
	return reminders
}
