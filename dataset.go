package travel

import (
	"context"
	"encoding/json"

	"github.com/cespare/xxhash/v2"
)

// Place represents a single recommendable destination: a city, a beach,
// or a temple.
type Place struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Country groups the cities that belong to it. Every city in the
// catalog belongs to exactly one country.
type Country struct {
	Name   string  `json:"name"`
	Cities []Place `json:"cities"`
}

// Dataset is the search universe: the full recommendation catalog as
// decoded from the source document. It is immutable after load; slice
// order is the document order and is preserved through search.
type Dataset struct {
	Countries []Country `json:"countries"`
	Beaches   []Place   `json:"beaches"`
	Temples   []Place   `json:"temples"`
}

// Validate returns an error if the dataset contains no destinations.
// Individual records are not validated; malformed entries pass through
// to rendering as-is.
func (d *Dataset) Validate() error {
	if len(d.Countries) == 0 && len(d.Beaches) == 0 && len(d.Temples) == 0 {
		return Errorf(EINVALID, "dataset contains no destinations")
	}
	return nil
}

// Fingerprint returns a stable hash of the dataset contents, suitable
// for logging and for detecting catalog revisions without comparing
// structures.
func (d *Dataset) Fingerprint() uint64 {
	b, err := json.Marshal(d)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(b)
}

// DatasetLoader loads the recommendation catalog from its source.
// Implementations hide the transport (HTTP vs local file).
type DatasetLoader interface {
	// Load retrieves and decodes the dataset.
	// The context controls timeout and cancellation.
	Load(ctx context.Context) (*Dataset, error)
}
