package domain

import "strings"

// Category is one of the fixed service categories of the directory.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

const (
	CategoryElectrician = "Electrician"
	CategoryACService   = "AC Service"
	CategoryPlumber     = "Plumber"
	CategoryCleaning    = "Cleaning"
)

var categories = []Category{
	{Name: CategoryElectrician, Slug: "electrician", Title: "Electrician Near Me"},
	{Name: CategoryACService, Slug: "ac-service", Title: "AC Service Near Me"},
	{Name: CategoryPlumber, Slug: "plumber", Title: "Plumber Near Me"},
	{Name: CategoryCleaning, Slug: "cleaning", Title: "Cleaning Services"},
}

// Categories returns the service categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory resolves a display name or slug, ignoring case and hyphens.
func LookupCategory(s string) (Category, bool) {
	key := NormalizeCategory(s)
	for _, c := range categories {
		if NormalizeCategory(c.Name) == key {
			return c, true
		}
	}
	return Category{}, false
}

// NormalizeCategory lower-cases s and turns hyphens into spaces so that
// "ac-service", "AC Service" and "Ac-Service" compare equal.
func NormalizeCategory(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", " ")
}
