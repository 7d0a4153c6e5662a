// Package http provides an HTTP-based implementation of
// travel.DatasetLoader for fetching the recommendation catalog from a
// remote JSON document.
package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	travel "github.com/Vnwedo/Travel-Recommendation"
)

// DefaultLoadTimeout is the default timeout for the dataset fetch.
const DefaultLoadTimeout = 10 * time.Second

// Ensure Loader implements travel.DatasetLoader at compile time.
var _ travel.DatasetLoader = (*Loader)(nil)

// Loader retrieves the dataset document over HTTP. The request is a
// plain GET with no headers, auth, or query parameters.
type Loader struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the timeout for the dataset fetch.
// Defaults to DefaultLoadTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// NewLoader creates a new HTTP-based Loader for the given dataset URL.
func NewLoader(url string, opts ...Option) *Loader {
	l := &Loader{
		url:     url,
		timeout: DefaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// Load fetches and decodes the dataset document. Transport and status
// failures return EUNAVAILABLE; decode failures return EINVALID. There
// is no retry; the caller decides whether a fresh attempt is warranted.
func (l *Loader) Load(ctx context.Context) (*travel.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, travel.Errorf(travel.EUNAVAILABLE, "dataset fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, travel.Errorf(travel.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, l.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
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
