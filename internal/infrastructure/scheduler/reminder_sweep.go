// Package scheduler runs periodic housekeeping on a cron schedule.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/metrics"
)

const DefaultSweepSchedule = "@every 1m"

// ReminderSweep periodically classifies stored reminders as upcoming or past
// and publishes the counts as metrics. Reminders are never dispatched.
type ReminderSweep struct {
	cron      *cron.Cron
	reminders ports.ReminderService
	log       zerolog.Logger
}

// NewReminderSweep registers the sweep under schedule (standard cron spec or
// a descriptor such as "@every 30s").
func NewReminderSweep(schedule string, reminders ports.ReminderService, log zerolog.Logger) (*ReminderSweep, error) {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	s := &ReminderSweep{
		cron:      cron.New(),
		reminders: reminders,
		log:       log,
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("reminder sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs one sweep immediately and then follows the schedule.
func (s *ReminderSweep) Start(ctx context.Context) {
	s.Sweep(ctx)
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep, bounded by ctx.
func (s *ReminderSweep) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Sweep counts reminders by state.
func (s *ReminderSweep) Sweep(ctx context.Context) (upcoming, past int) {
	for _, r := range s.reminders.List(ctx) {
		if r.Past {
			past++
		} else {
			upcoming++
		}
	}
	metrics.Reminders.WithLabelValues("upcoming").Set(float64(upcoming))
	metrics.Reminders.WithLabelValues("past").Set(float64(past))

	s.log.Debug().Int("upcoming", upcoming).Int("past", past).Msg("reminder sweep")
	return upcoming, past
}
