package domain

import "strings"

// ProviderFilter narrows a provider listing. Zero values disable a criterion,
// except Category which is always applied.
type ProviderFilter struct {
	Category  string
	Query     string
	MinRating float64
	City      string
}

// Match reports whether p satisfies every criterion of the filter.
func (f ProviderFilter) Match(p Provider) bool {
	if !p.InCategory(f.Category) {
		return false
	}
	if q := strings.ToLower(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.City), q) {
			return false
		}
	}
	if p.Rating < f.MinRating {
		return false
	}
	if f.City != "" && p.City != f.City {
		return false
	}
	return true
}

// FilterProviders returns the subsequence of providers matching f, in order.
func FilterProviders(providers []Provider, f ProviderFilter) []Provider {
	out := make([]Provider, 0, len(providers))
	for _, p := range providers {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Cities returns the distinct provider cities in first-seen order.
func Cities(providers []Provider) []string {
	seen := make(map[string]struct{}, len(providers))
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		if _, ok := seen[p.City]; ok {
			continue
		}
		seen[p.City] = struct{}{}
		out = append(out, p.City)
	}
	return out
}
