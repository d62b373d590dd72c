// Package paging drives sequential page loads for a query and decides
// whether another page is worth requesting.
package paging

import (
	"context"
	"sync"

	"github.com/s0up4200/reelscout/fetch"
)

// DefaultPageSize is the page size both providers are queried with
const DefaultPageSize = 10

// Query is a set of search/filter parameters with a stable cache key
type Query interface {
	Key() string
}

// Strategy selects how HasMore is decided
type Strategy int

const (
	// ByTotalPages trusts the provider's page count
	ByTotalPages Strategy = iota
	// ByPageSize assumes a full page means more may follow. An exactly full
	// last page costs one extra empty request.
	ByPageSize
)

// Loader requests one page of q
type Loader[Q Query] func(ctx context.Context, q Q, page int)

// Prober reports the accumulated progress for a query key
type Prober func(key string) fetch.Progress

// Controller owns the page counter for one feed
type Controller[Q Query] struct {
	load     Loader[Q]
	probe    Prober
	strategy Strategy
	pageSize int

	mu     sync.Mutex
	query  Q
	active bool
	page   int
}

// Option configures a Controller
type Option func(*settings)

type settings struct {
	strategy Strategy
	pageSize int
}

// WithStrategy sets the HasMore strategy
func WithStrategy(strategy Strategy) Option {
	return func(s *settings) {
		s.strategy = strategy
	}
}

// WithPageSize sets the expected page size
func WithPageSize(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewController creates a controller that loads through load and reads
// progress through probe
func NewController[Q Query](load Loader[Q], probe Prober, opts ...Option) *Controller[Q] {
	s := settings{strategy: ByTotalPages, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&s)
	}

	return &Controller[Q]{
		load:     load,
		probe:    probe,
		strategy: s.strategy,
		pageSize: s.pageSize,
	}
}

// Reset starts q over from page 1, replacing anything cached for it
func (c *Controller[Q]) Reset(ctx context.Context, q Q) {
	c.mu.Lock()
	c.query = q
	c.active = true
	c.page = 1
	c.mu.Unlock()

	c.load(ctx, q, 1)
}

// Apply resets only when q differs from the current query. It reports
// whether a load was issued.
func (c *Controller[Q]) Apply(ctx context.Context, q Q) bool {
	c.mu.Lock()
	same := c.active && c.query.Key() == q.Key()
	c.mu.Unlock()

	if same {
		return false
	}
	c.Reset(ctx, q)
	return true
}

// LoadNext requests the page after the current one, keeping earlier pages.
// It returns the page number requested, or 0 when no query is active.
func (c *Controller[Q]) LoadNext(ctx context.Context) int {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return 0
	}
	c.page++
	page := c.page
	q := c.query
	c.mu.Unlock()

	c.load(ctx, q, page)
	return page
}

// Retry requests the current page again with the current query. It returns
// the page number requested, or 0 when no query is active.
func (c *Controller[Q]) Retry(ctx context.Context) int {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return 0
	}
	page := c.page
	q := c.query
	c.mu.Unlock()

	c.load(ctx, q, page)
	return page
}

// HasMore reports whether another page is likely to exist
func (c *Controller[Q]) HasMore() bool {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return false
	}
	key := c.query.Key()
	page := c.page
	c.mu.Unlock()

	p := c.probe(key)
	if p.Error != "" || !p.Received || p.Count == 0 {
		return false
	}
	// a short page is the last one whatever the provider's page count says
	if p.LastPageSize < c.pageSize {
		return false
	}

	if c.strategy == ByTotalPages && p.TotalPages > 0 {
		return page < p.TotalPages
	}
	return true
}

// Page returns the current page number, 0 before the first load
func (c *Controller[Q]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// Query returns the active query and whether one is set
func (c *Controller[Q]) Query() (Q, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query, c.active
}

// Clear forgets the active query; HasMore is false until the next Reset
func (c *Controller[Q]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero Q
	c.query = zero
	c.active = false
	c.page = 0
}
