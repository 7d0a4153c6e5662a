package travel

import (
	"context"
	"strings"
)

// Category identifies which slice of the dataset a query targets.
type Category int

// Category values. CategoryNone is the zero value and means the query
// matched no keyword (free-text country search, or nothing at all).
const (
	CategoryNone Category = iota
	CategoryCountries
	CategoryBeaches
	CategoryTemples
)

// String returns the display token for the category.
func (c Category) String() string {
	switch c {
	case CategoryCountries:
		return "countries"
	case CategoryBeaches:
		return "beaches"
	case CategoryTemples:
		return "temples"
	}
	return ""
}

// DisplayItem is the normalized shape produced for every matched
// destination, regardless of source category.
type DisplayItem struct {
	Name        string
	Description string
	ImageURL    string
}

// Normalize classifies raw search input. The input is lowercased and
// trimmed, then checked for category keywords in a fixed order (beach,
// temple, country), so input mentioning several keywords resolves to
// the first match. Input matching no keyword returns CategoryNone with
// the normalized text, to be treated as a free-text country query.
func Normalize(raw string) (Category, string) {
	term := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(term, "beach"):
		return CategoryBeaches, term
	case strings.Contains(term, "temple"):
		return CategoryTemples, term
	case strings.Contains(term, "country"):
		return CategoryCountries, term
	}
	return CategoryNone, term
}

// Search filters the dataset for the given raw input and reports which
// category the results belong to.
//
// Beach and temple queries return the corresponding catalog slice
// verbatim. The country keyword returns every city from every country;
// free text selects countries whose name contains the text
// (case-insensitive substring, no fuzzy matching) and returns their
// cities. Result order is catalog order throughout. Empty input that
// matches no keyword yields no results rather than all countries.
func Search(ds *Dataset, raw string) ([]DisplayItem, Category) {
	category, term := Normalize(raw)

	switch category {
	case CategoryBeaches:
		return toDisplayItems(ds.Beaches), CategoryBeaches
	case CategoryTemples:
		return toDisplayItems(ds.Temples), CategoryTemples
	}

	if category != CategoryCountries && term == "" {
		return nil, CategoryNone
	}

	var items []DisplayItem
	for _, country := range ds.Countries {
		if category != CategoryCountries && !strings.Contains(strings.ToLower(country.Name), term) {
			continue
		}
		items = append(items, toDisplayItems(country.Cities)...)
	}
	return items, CategoryCountries
}

func toDisplayItems(places []Place) []DisplayItem {
	items := make([]DisplayItem, 0, len(places))
	for _, p := range places {
		items = append(items, DisplayItem{
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}
	return items
}

// SearchService runs search actions against a loaded dataset and
// produces render-ready views.
type SearchService interface {
	// Search ensures the dataset is available, filters it for the raw
	// input, and assembles the result view.
	Search(ctx context.Context, raw string) (ResultView, error)
}
