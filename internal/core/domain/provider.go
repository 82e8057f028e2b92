package domain

import (
	"errors"
	"math"
	"net/url"
	"strings"
)

// DefaultSeedRating is the rating a newly registered provider starts with
// until the first review arrives.
const DefaultSeedRating = 5.0

var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrUnknownCategory   = errors.New("unknown service category")
	ErrInvalidRating     = errors.New("review rating must be between 1 and 5")
	ErrInvalidSeedRating = errors.New("rating must be one of 3, 3.5, 4, 4.5 or 5")
	ErrInvalidExperience = errors.New("experience must not be negative")
)

// Review is a single customer rating attached to exactly one provider.
// Reviews are appended and never edited or removed.
type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Provider is a listed service professional.
type Provider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ServiceType string   `json:"serviceType"`
	City        string   `json:"city"`
	Contact     string   `json:"contact"`
	Experience  int      `json:"experience"`
	Photo       string   `json:"photo"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews"`
}

// SeedRatings are the ratings a provider may pick when registering.
var SeedRatings = []float64{5, 4.5, 4, 3.5, 3}

// AddReview appends r and recomputes the aggregate rating from every review.
func (p *Provider) AddReview(r Review) {
	p.Reviews = append(p.Reviews, r)
	p.Rating = AverageRating(p.Reviews, p.Rating)
}

// InCategory reports whether the provider belongs to category, which may be
// given as a display name ("AC Service") or a slug ("ac-service").
func (p Provider) InCategory(category string) bool {
	return NormalizeCategory(p.ServiceType) == NormalizeCategory(category)
}

// Clone returns a deep copy so callers never share the reviews slice.
func (p Provider) Clone() Provider {
	c := p
	if p.Reviews != nil {
		c.Reviews = make([]Review, len(p.Reviews))
		copy(c.Reviews, p.Reviews)
	}
	return c
}

// AverageRating returns the arithmetic mean of the review ratings rounded to
// one decimal place. With no reviews the seed value is returned unchanged.
func AverageRating(reviews []Review, seed float64) float64 {
	if len(reviews) == 0 {
		return seed
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return RoundRating(float64(sum) / float64(len(reviews)))
}

// RoundRating rounds to one decimal, half away from zero.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// DefaultPhotoURL builds the generated avatar used when a provider registers
// without a photo.
func DefaultPhotoURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(strings.TrimSpace(name)) +
		"&size=400&background=4FC3F7&color=fff"
}
