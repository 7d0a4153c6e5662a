// Package fs provides a file-based implementation of
// travel.DatasetLoader for reading the recommendation catalog from
// local disk.
package fs

import (
	"context"
	"encoding/json"
	"os"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

// Ensure Loader implements travel.DatasetLoader at compile time.
var _ travel.DatasetLoader = (*Loader)(nil)

// Loader reads the dataset document from a file on disk.
type Loader struct {
	path string
}

// NewLoader creates a new Loader that reads from the given path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and decodes the dataset document.
func (l *Loader) Load(ctx context.Context) (*travel.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, travel.Errorf(travel.ENOTFOUND, "dataset file %q not found", l.path)
		}
		return nil, travel.Errorf(travel.EUNAVAILABLE, "dataset read failed: %v", err)
	}

	var ds travel.Dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, travel.Errorf(travel.EINVALID, "malformed dataset document: %v", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	return &ds, nil
}
