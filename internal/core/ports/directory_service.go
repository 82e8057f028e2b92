package ports

import (
	"context"

	"github.com/homeservices/directory/internal/core/domain"
)

// ListProvidersInput carries the listing filters of a category page.
type ListProvidersInput struct {
	Category  string
	Query     string
	MinRating float64
	City      string
}

// ListProvidersResult is a filtered category listing.
type ListProvidersResult struct {
	Category  domain.Category
	Providers []domain.Provider
	// Cities lists every known city, for the city filter.
	Cities []string
}

// RegisterProviderInput is the provider self-registration form.
type RegisterProviderInput struct {
	Name        string
	ServiceType string
	City        string
	Contact     string
	// Experience is nil when the field was left empty.
	Experience *int
	Rating     float64
	Photo      string
}

// RegisterProviderResult is the newly listed provider and where it can be found.
type RegisterProviderResult struct {
	Provider    domain.Provider
	ListingPath string
}

// AddReviewInput is the review form for one provider.
type AddReviewInput struct {
	ProviderID string
	Name       string
	Rating     int
	Comment    string
}

// CategorySummary is one entry of the services overview.
type CategorySummary struct {
	domain.Category
	ProviderCount int     `json:"providerCount"`
	TopRating     float64 `json:"topRating"`
}

// Catalog is the landing page content.
type Catalog struct {
	Categories []CategorySummary
	Featured   []domain.Provider
}

// DirectoryService covers browsing, self-registration and reviews.
type DirectoryService interface {
	ListProviders(ctx context.Context, in ListProvidersInput) (*ListProvidersResult, error)
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)
	Cities(ctx context.Context) []string
	RegisterProvider(ctx context.Context, in RegisterProviderInput) (*RegisterProviderResult, error)
	AddReview(ctx context.Context, in AddReviewInput) (*domain.Provider, error)
	Overview(ctx context.Context) []CategorySummary
	Catalog(ctx context.Context) *Catalog
}
