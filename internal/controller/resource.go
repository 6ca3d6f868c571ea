package controller

import (
	"context"
	"log"
	"sync"
)

// State is the lifecycle of a page's data.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// DemoBanner is shown whenever fallback data replaced a failed fetch.
const DemoBanner = "Backend unreachable, showing demo data."

// FetchFunc loads the current value of a resource from the backend.
type FetchFunc[V any] func(ctx context.Context) (V, error)

// FallbackProvider returns a fixed dataset shaped like the real one.
type FallbackProvider[V any] func() V

// Snapshot is a consistent copy of a Resource's state.
type Snapshot[V any] struct {
	State  State
	Value  V
	Banner string
	Demo   bool
	Err    error
}

// Resource runs the idle -> loading -> ready|error cycle for one page.
//
// Overlapping loads are neither deduplicated nor cancelled: whichever fetch
// finishes last decides the stored value.
type Resource[V any] struct {
	mu       sync.RWMutex
	name     string
	fetch    FetchFunc[V]
	fallback FallbackProvider[V]
	empty    V

	state  State
	value  V
	banner string
	demo   bool
	err    error
}

// Option configures a Resource.
type Option[V any] func(*Resource[V])

// WithFallback substitutes provider's data when a fetch fails.
func WithFallback[V any](provider FallbackProvider[V]) Option[V] {
	return func(r *Resource[V]) { r.fallback = provider }
}

// WithEmpty sets the value shown when a fetch fails and no fallback exists.
func WithEmpty[V any](empty V) Option[V] {
	return func(r *Resource[V]) {
		r.empty = empty
		r.value = empty
	}
}

// NewResource creates an idle resource named for logging.
func NewResource[V any](name string, fetch FetchFunc[V], opts ...Option[V]) *Resource[V] {
	r := &Resource[V]{name: name, fetch: fetch, state: StateIdle}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load fetches the resource and settles into ready or error. It never
// returns an error; failures are recorded in the snapshot.
func (r *Resource[V]) Load(ctx context.Context) Snapshot[V] {
	r.mu.Lock()
	r.state = StateLoading
	r.mu.Unlock()

	value, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		r.state = StateReady
		r.value = value
		r.banner = ""
		r.demo = false
		r.err = nil
		return r.snapshotLocked()
	}

	log.Printf("%s: fetch failed: %v", r.name, err)
	r.err = err
	if r.fallback != nil {
		r.state = StateReady
		r.value = r.fallback()
		r.banner = DemoBanner
		r.demo = true
		return r.snapshotLocked()
	}
	r.state = StateError
	r.value = r.empty
	r.banner = ""
	r.demo = false
	return r.snapshotLocked()
}

// LoadIfIdle loads only when nothing has been fetched yet.
func (r *Resource[V]) LoadIfIdle(ctx context.Context) Snapshot[V] {
	r.mu.RLock()
	idle := r.state == StateIdle
	r.mu.RUnlock()
	if idle {
		return r.Load(ctx)
	}
	return r.Snapshot()
}

// Refetch reloads after a mutation. Fetch failures stay in the snapshot.
func (r *Resource[V]) Refetch(ctx context.Context) error {
	r.Load(ctx)
	return nil
}

// Snapshot returns the current state.
func (r *Resource[V]) Snapshot() Snapshot[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Resource[V]) snapshotLocked() Snapshot[V] {
	return Snapshot[V]{
		State:  r.state,
		Value:  r.value,
		Banner: r.banner,
		Demo:   r.demo,
		Err:    r.err,
	}
}
