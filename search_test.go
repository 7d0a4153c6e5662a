package travel_test

import (
	"testing"

	travel "github.com/Vnwedo/Travel-Recommendation"
	"github.com/stretchr/testify/assert"
)

func testDataset() *travel.Dataset {
	return &travel.Dataset{
		Countries: []travel.Country{
			{
				Name: "Japan",
				Cities: []travel.Place{
					{Name: "Tokyo, Japan", Description: "Neon skyline", ImageURL: "tokyo.jpg"},
					{Name: "Kyoto, Japan", Description: "Old capital", ImageURL: "kyoto.jpg"},
				},
			},
			{
				Name: "Brazil",
				Cities: []travel.Place{
					{Name: "Rio de Janeiro, Brazil", Description: "Carnival city", ImageURL: "rio.jpg"},
				},
			},
		},
		Beaches: []travel.Place{
			{Name: "Bora Bora, French Polynesia", Description: "Lagoon", ImageURL: "borabora.jpg"},
			{Name: "Copacabana Beach, Brazil", Description: "Famous shore", ImageURL: "copacabana.jpg"},
		},
		Temples: []travel.Place{
			{Name: "Angkor Wat, Cambodia", Description: "Temple complex", ImageURL: "angkor.jpg"},
		},
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		category travel.Category
		term     string
	}{
		{"plural keyword", "Beaches", travel.CategoryBeaches, "beaches"},
		{"keyword inside phrase", "  best beach ", travel.CategoryBeaches, "best beach"},
		{"uppercase keyword", "BEACH", travel.CategoryBeaches, "beach"},
		{"temple phrase", "ancient temple", travel.CategoryTemples, "ancient temple"},
		{"country keyword", "Country", travel.CategoryCountries, "country"},
		{"plural country keyword", "countries", travel.CategoryCountries, "countries"},
		{"free text stays free text", "japan", travel.CategoryNone, "japan"},
		{"free text is lowercased", "  JAPAN  ", travel.CategoryNone, "japan"},
		{"beach wins over temple", "beach temple", travel.CategoryBeaches, "beach temple"},
		{"empty input", "", travel.CategoryNone, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			category, term := travel.Normalize(tt.raw)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.term, term)
		})
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("free text matches country and returns its cities in order", func(t *testing.T) {
		t.Parallel()

		items, category := travel.Search(testDataset(), "japan")

		assert.Equal(t, travel.CategoryCountries, category)
		names := itemNames(items)
		assert.Equal(t, []string{"Tokyo, Japan", "Kyoto, Japan"}, names)
	})

	t.Run("country keyword returns every city from every country", func(t *testing.T) {
		t.Parallel()

		items, category := travel.Search(testDataset(), "countries")

		assert.Equal(t, travel.CategoryCountries, category)
		names := itemNames(items)
		assert.Equal(t, []string{"Tokyo, Japan", "Kyoto, Japan", "Rio de Janeiro, Brazil"}, names)
	})

	t.Run("beach keyword returns beaches slice verbatim", func(t *testing.T) {
		t.Parallel()

		ds := testDataset()
		items, category := travel.Search(ds, "beach")

		assert.Equal(t, travel.CategoryBeaches, category)
		assert.Equal(t, itemNames(items), placeNames(ds.Beaches))
		assert.Equal(t, "Lagoon", items[0].Description)
	})

	t.Run("temple keyword returns temples slice", func(t *testing.T) {
		t.Parallel()

		items, category := travel.Search(testDataset(), "visit a temple")

		assert.Equal(t, travel.CategoryTemples, category)
		assert.Equal(t, []string{"Angkor Wat, Cambodia"}, itemNames(items))
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		items, category := travel.Search(testDataset(), "BRA")

		assert.Equal(t, travel.CategoryCountries, category)
		assert.Equal(t, []string{"Rio de Janeiro, Brazil"}, itemNames(items))
	})

	t.Run("empty input yields no results and no category", func(t *testing.T) {
		t.Parallel()

		items, category := travel.Search(testDataset(), "   ")

		assert.Empty(t, items)
		assert.Equal(t, travel.CategoryNone, category)
		assert.Equal(t, "", category.String())
	})

	t.Run("unmatched free text yields empty countries result", func(t *testing.T) {
		t.Parallel()

		items, category := travel.Search(testDataset(), "atlantis")

		assert.Empty(t, items)
		assert.Equal(t, travel.CategoryCountries, category)
	})
}

func itemNames(items []travel.DisplayItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func placeNames(places []travel.Place) []string {
	names := make([]string, 0, len(places))
	for _, p := range places {
		names = append(names, p.Name)
	}
	return names
}
