// Package timezone annotates known destinations with their current
// local time, resolved from a static place-to-IANA-zone table.
package timezone

import (
	"sync"
	"time"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

// Layout is the 12-hour wall-clock layout used for annotations.
const Layout = "Jan 2, 2006, 3:04:05 PM"

// defaultZones maps destination names from the catalog to IANA timezone
// identifiers. The table is a fixed constant, not derived from the
// dataset; not every destination is listed, so lookups may miss.
var defaultZones = map[string]string{
	"Sydney, Australia":      "Australia/Sydney",
	"Melbourne, Australia":   "Australia/Melbourne",
	"Tokyo, Japan":           "Asia/Tokyo",
	"Kyoto, Japan":           "Asia/Tokyo",
	"Rio de Janeiro, Brazil": "America/Sao_Paulo",
	"São Paulo, Brazil":      "America/Sao_Paulo",
}

// Ensure Annotator implements travel.TimeAnnotator at compile time.
var _ travel.TimeAnnotator = (*Annotator)(nil)

// Annotator resolves current local times for destinations present in
// its zone table. Resolved locations are cached for the lifetime of the
// annotator.
type Annotator struct {
	clock travel.Clock
	zones map[string]string

	mu        sync.Mutex
	locations map[string]*time.Location
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithClock pins the time source. Defaults to the system clock.
func WithClock(c travel.Clock) Option {
	return func(a *Annotator) {
		a.clock = c
	}
}

// WithZones replaces the destination zone table.
func WithZones(zones map[string]string) Option {
	return func(a *Annotator) {
		a.zones = zones
	}
}

// NewAnnotator creates a new Annotator with the built-in zone table.
func NewAnnotator(opts ...Option) *Annotator {
	a := &Annotator{
		clock:     systemClock{},
		zones:     defaultZones,
		locations: make(map[string]*time.Location),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CurrentTime returns the formatted local time for the destination.
// It returns the empty string when the destination is unmapped or the
// zone cannot be resolved; that failure is silent and the caller omits
// the annotation.
func (a *Annotator) CurrentTime(placeName string) string {
	zone, ok := a.zones[placeName]
	if !ok {
		return ""
	}

	loc, err := a.location(zone)
	if err != nil {
		return ""
	}

	return a.clock.Now().In(loc).Format(Layout)
}

func (a *Annotator) location(zone string) (*time.Location, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if loc, ok := a.locations[zone]; ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	a.locations[zone] = loc
	return loc, nil
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
