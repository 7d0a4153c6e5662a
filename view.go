package travel

// PlaceholderImageURL is the sentinel value some catalog records carry
// in place of a real image URL.
const PlaceholderImageURL = "enter_your_image_url"

// PlaceholderImageRef is the asset reference renderers substitute when
// a record supplies no usable image. Renderers fall back to it a second
// time at display time if the real image resource fails to load.
const PlaceholderImageRef = "images/placeholder.png"

// NoResultsNotice is the message shown when a search matches nothing.
const NoResultsNotice = "No results found."

// Card is a single render-ready result card.
type Card struct {
	Name        string
	Description string
	ImageURL    string // never empty; the placeholder asset when no real image exists
	Placeholder bool   // true when ImageURL is the placeholder asset
	LocalTime   string // empty = omit the time annotation
}

// ResultView is everything a renderer needs to draw one search outcome.
type ResultView struct {
	Query    string
	Category Category
	Cards    []Card
	Notice   string // set when Cards is empty
}

// BuildView assembles the render-ready view for a search outcome.
// The annotator runs only for country-category items (cities); beaches
// and temples never carry a time. A nil annotator disables annotation.
func BuildView(query string, items []DisplayItem, category Category, annotate TimeAnnotator) ResultView {
	view := ResultView{Query: query, Category: category}
	if len(items) == 0 {
		view.Notice = NoResultsNotice
		return view
	}

	view.Cards = make([]Card, 0, len(items))
	for _, item := range items {
		card := Card{
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    item.ImageURL,
		}
		if card.ImageURL == "" || card.ImageURL == PlaceholderImageURL {
			card.ImageURL = PlaceholderImageRef
			card.Placeholder = true
		}
		if category == CategoryCountries && annotate != nil {
			card.LocalTime = annotate.CurrentTime(item.Name)
		}
		view.Cards = append(view.Cards, card)
	}
	return view
}

// Renderer presents a ResultView on some output surface.
type Renderer interface {
	// Render draws the view.
	Render(view ResultView) error

	// Reset returns the surface to its empty default state. It does not
	// touch the loaded dataset.
	Reset() error
}
