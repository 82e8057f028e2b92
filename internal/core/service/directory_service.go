package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
	"github.com/homeservices/directory/internal/metrics"
)

const featuredCount = 4

// DirectoryService implements ports.DirectoryService.
type DirectoryService struct {
	store    ports.StateStore
	notifier ports.Notifier
	clock    ports.Clock
	log      zerolog.Logger
}

var _ ports.DirectoryService = (*DirectoryService)(nil)

func NewDirectoryService(store ports.StateStore, notifier ports.Notifier, clock ports.Clock, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{store: store, notifier: notifier, clock: clock, log: log}
}

// ListProviders returns the providers of one category that pass the filters,
// in catalog order.
func (s *DirectoryService) ListProviders(_ context.Context, in ports.ListProvidersInput) (*ports.ListProvidersResult, error) {
	category, ok := domain.LookupCategory(in.Category)
	if !ok {
		return nil, fmt.Errorf("list providers %q: %w", in.Category, domain.ErrUnknownCategory)
	}

	all := s.store.Providers()
	return &ports.ListProvidersResult{
		Category: category,
		Providers: domain.FilterProviders(all, domain.ProviderFilter{
			Category:  category.Name,
			Query:     strings.TrimSpace(in.Query),
			MinRating: in.MinRating,
			City:      in.City,
		}),
		Cities: domain.Cities(all),
	}, nil
}

func (s *DirectoryService) GetProvider(_ context.Context, id string) (*domain.Provider, error) {
	p, ok := s.store.Provider(id)
	if !ok {
		return nil, domain.ErrProviderNotFound
	}
	return &p, nil
}

func (s *DirectoryService) Cities(context.Context) []string {
	return domain.Cities(s.store.Providers())
}

// RegisterProvider lists a new provider with no reviews. The rating defaults
// to the seed rating and the photo to a generated avatar.
func (s *DirectoryService) RegisterProvider(ctx context.Context, in ports.RegisterProviderInput) (*ports.RegisterProviderResult, error) {
	if blank(in.Name, in.ServiceType, in.City, in.Contact) || in.Experience == nil {
		s.notifier.Publish(domain.ErrorToast(domain.MsgRequiredFields))
		return nil, domain.ErrMissingFields
	}
	if *in.Experience < 0 {
		return nil, domain.ErrInvalidExperience
	}

	category, ok := domain.LookupCategory(in.ServiceType)
	if !ok {
		return nil, fmt.Errorf("register provider: %w", domain.ErrUnknownCategory)
	}

	rating := in.Rating
	if rating == 0 {
		rating = domain.DefaultSeedRating
	}
	if !slices.Contains(domain.SeedRatings, rating) {
		return nil, domain.ErrInvalidSeedRating
	}

	photo := strings.TrimSpace(in.Photo)
	if photo == "" {
		photo = domain.DefaultPhotoURL(in.Name)
	}

	p := domain.Provider{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		ServiceType: category.Name,
		City:        strings.TrimSpace(in.City),
		Contact:     strings.TrimSpace(in.Contact),
		Experience:  *in.Experience,
		Photo:       photo,
		Rating:      rating,
		Reviews:     []domain.Review{},
	}
	s.store.AddProvider(ctx, p)

	metrics.ProvidersRegisteredTotal.WithLabelValues(category.Slug).Inc()
	s.log.Info().Str("provider_id", p.ID).Str("service_type", p.ServiceType).Msg("provider registered")
	s.notifier.Publish(domain.SuccessToast(domain.MsgProviderRegistered))

	return &ports.RegisterProviderResult{
		Provider:    p,
		ListingPath: ListingPath(category),
	}, nil
}

// AddReview appends a dated review and returns the provider with its
// recomputed rating. A zero rating means the form default of 5.
func (s *DirectoryService) AddReview(ctx context.Context, in ports.AddReviewInput) (*domain.Provider, error) {
	if blank(in.Name, in.Comment) {
		s.notifier.Publish(domain.ErrorToast(domain.MsgRequiredFields))
		return nil, domain.ErrMissingFields
	}

	rating := in.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	review := domain.Review{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(in.Name),
		Rating:  rating,
		Comment: strings.TrimSpace(in.Comment),
		Date:    s.clock.Now().Format(domain.ReminderDateLayout),
	}

	updated, err := s.store.AddReview(ctx, in.ProviderID, review)
	if err != nil {
		return nil, err
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(rating)).Inc()
	s.log.Info().
		Str("provider_id", updated.ID).
		Int("rating", rating).
		Float64("new_rating", updated.Rating).
		Msg("review submitted")
	s.notifier.Publish(domain.SuccessToast(domain.MsgReviewSubmitted))

	return &updated, nil
}

// Overview summarises every category, including empty ones.
func (s *DirectoryService) Overview(context.Context) []ports.CategorySummary {
	providers := s.store.Providers()
	out := make([]ports.CategorySummary, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		sum := ports.CategorySummary{Category: c}
		for _, p := range providers {
			if !p.InCategory(c.Name) {
				continue
			}
			sum.ProviderCount++
			sum.TopRating = max(sum.TopRating, p.Rating)
		}
		out = append(out, sum)
	}
	return out
}

// Catalog is the overview plus the highest rated providers. Ties keep
// catalog order.
func (s *DirectoryService) Catalog(ctx context.Context) *ports.Catalog {
	featured := s.store.Providers()
	slices.SortStableFunc(featured, func(a, b domain.Provider) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}
	return &ports.Catalog{
		Categories: s.Overview(ctx),
		Featured:   featured,
	}
}

// ListingPath is the API route of a category listing.
func ListingPath(c domain.Category) string {
	return "/v1/services/" + c.Slug + "/providers"
}

func blank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}
