// Package engine coordinates dataset loading and searching for a
// single session. It owns the memoized dataset mandated by the
// write-once-then-read lifecycle: the first successful load wins, and
// every later search reads the cached copy without refetching.
package engine

import (
	"context"
	"sync"

	travel "github.com/Vnwedo/Travel-Recommendation"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// State describes the dataset lifecycle within a session.
type State int

// Lifecycle states. A session starts Uninitialized, moves to Loading on
// the first search, and settles in Ready or Failed. A Failed session
// may move back through Loading when a later search reattempts the load.
const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

// String returns the display name for the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "uninitialized"
}

// DefaultReloadLimit caps how often a failed load may be reattempted.
// Reattempts only ever happen on a user-initiated search; the engine
// never schedules one on its own, so this is a guard against hammering
// a dead source, not a retry policy.
const DefaultReloadLimit = rate.Limit(1)

// Ensure Engine implements travel.SearchService at compile time.
var _ travel.SearchService = (*Engine)(nil)

// Engine owns the memoized dataset and runs searches against it.
// The zero value is not usable; use New.
type Engine struct {
	id       string
	loader   travel.DatasetLoader
	annotate travel.TimeAnnotator
	reload   *rate.Limiter

	group singleflight.Group

	mu      sync.Mutex
	state   State
	dataset *travel.Dataset
	loadErr error
}

// Option configures an Engine.
type Option func(*Engine)

// WithAnnotator sets the time annotator applied to city results.
// Without one, results carry no time annotation.
func WithAnnotator(a travel.TimeAnnotator) Option {
	return func(e *Engine) {
		e.annotate = a
	}
}

// WithReloadLimit overrides the failed-load reattempt limit.
func WithReloadLimit(l rate.Limit) Option {
	return func(e *Engine) {
		e.reload = rate.NewLimiter(l, 1)
	}
}

// New creates a new Engine backed by the given loader.
func New(loader travel.DatasetLoader, opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.NewString(),
		loader: loader,
		reload: rate.NewLimiter(DefaultReloadLimit, 1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID identifies the session in logs.
func (e *Engine) ID() string { return e.id }

// State reports the dataset lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Dataset returns the loaded dataset.
// Returns ENOTFOUND if no load has succeeded yet.
func (e *Engine) Dataset() (*travel.Dataset, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dataset == nil {
		return nil, travel.Errorf(travel.ENOTFOUND, "dataset not loaded")
	}
	return e.dataset, nil
}

// Search runs one search action: it ensures the dataset is available,
// loading it on first use, then filters the catalog and assembles the
// view. A search that arrives while a load is in flight awaits that
// same load instead of issuing a duplicate fetch.
func (e *Engine) Search(ctx context.Context, raw string) (travel.ResultView, error) {
	ds, err := e.ensureDataset(ctx)
	if err != nil {
		return travel.ResultView{}, err
	}

	items, category := travel.Search(ds, raw)
	return travel.BuildView(raw, items, category, e.annotate), nil
}

// Reset returns the empty default view for the render surface. The
// cached dataset survives a reset; only presentation state is cleared.
func (e *Engine) Reset() travel.ResultView {
	return travel.ResultView{}
}

// ensureDataset returns the cached dataset, loading it if necessary.
// A previous failure is surfaced as-is when the reattempt limiter
// denies a fresh load.
func (e *Engine) ensureDataset(ctx context.Context) (*travel.Dataset, error) {
	e.mu.Lock()
	if e.dataset != nil {
		ds := e.dataset
		e.mu.Unlock()
		return ds, nil
	}
	if e.state == StateFailed && !e.reload.Allow() {
		err := e.loadErr
		e.mu.Unlock()
		return nil, err
	}
	e.state = StateLoading
	e.mu.Unlock()

	v, err, _ := e.group.Do("load", func() (any, error) {
		ds, err := e.loader.Load(ctx)

		e.mu.Lock()
		defer e.mu.Unlock()
		if err != nil {
			e.state = StateFailed
			e.loadErr = err
			return nil, err
		}
		e.state = StateReady
		e.dataset = ds
		e.loadErr = nil
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*travel.Dataset), nil
}
