package service

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

const (
	dashboardReminders = 3
	dashboardReviews   = 5
)

// DashboardService implements ports.DashboardService.
type DashboardService struct {
	store     ports.StateStore
	reminders ports.ReminderService
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(store ports.StateStore, reminders ports.ReminderService) *DashboardService {
	return &DashboardService{store: store, reminders: reminders}
}

// Summary requires an active user. Stats count what the dashboard lists.
func (s *DashboardService) Summary(ctx context.Context) (*ports.Dashboard, error) {
	user := s.store.User()
	if user == nil {
		return nil, domain.ErrNoActiveUser
	}

	upcoming := s.reminders.Upcoming(ctx, dashboardReminders)
	reviews := recentReviews(s.store.Providers(), dashboardReviews)
	favorites := favoriteProviders(s.store)

	return &ports.Dashboard{
		User: *user,
		Stats: ports.DashboardStats{
			Reminders: len(upcoming),
			Favorites: len(favorites),
			Reviews:   len(reviews),
		},
		UpcomingReminders: upcoming,
		RecentReviews:     reviews,
		Favorites:         favorites,
	}, nil
}

// recentReviews flattens reviews across providers in catalog order and keeps
// the first limit.
func recentReviews(providers []domain.Provider, limit int) []ports.DashboardReview {
	out := make([]ports.DashboardReview, 0, limit)
	for _, p := range providers {
		for _, r := range p.Reviews {
			if len(out) == limit {
				return out
			}
			out = append(out, ports.DashboardReview{
				Review:       r,
				ProviderID:   p.ID,
				ProviderName: p.Name,
				ServiceType:  p.ServiceType,
			})
		}
	}
	return out
}
