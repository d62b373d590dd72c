package browse

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/paging"
)

// DefaultConcurrency bounds parallel collection and detail loads
const DefaultConcurrency = 5

// Theme is the colour scheme preference
type Theme string

// Supported themes
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	}
	return "", false
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// SearchQuery is a keyword search
type SearchQuery struct {
	Text string
}

// Key identifies the search by its trimmed text
func (q SearchQuery) Key() string {
	return strings.TrimSpace(q.Text)
}

// NavQuery is a discovery query: a content type narrowed by a filter
type NavQuery struct {
	Type   string
	Filter filter.State
}

// Key identifies the query by type and filter
func (q NavQuery) Key() string {
	return q.Type + "|" + q.Filter.Key()
}

// Option configures an App
type Option func(*appOptions)

type appOptions struct {
	logger      zerolog.Logger
	concurrency int
	theme       Theme
}

// WithLogger sets the logger passed to every store
func WithLogger(logger zerolog.Logger) Option {
	return func(o *appOptions) {
		o.logger = logger
	}
}

// WithConcurrency bounds parallel loads
func WithConcurrency(n int) Option {
	return func(o *appOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithTheme sets the initial theme
func WithTheme(t Theme) Option {
	return func(o *appOptions) {
		if t != "" {
			o.theme = t
		}
	}
}

// App holds the state of one browsing session: every store, the
// favourites, the authorization flag, the filter and the theme
type App struct {
	Search      *Feed[SearchQuery]
	Navigate    *Feed[NavQuery]
	Favourites  *Favourites
	collections *collectionStore
	details     *detailStore

	logger      zerolog.Logger
	concurrency int

	mu         sync.RWMutex
	authorized bool
	theme      Theme
	navType    string
	navFilter  filter.State
}

// New creates a session around the two providers
func New(catalog Catalog, source DetailSource, opts ...Option) *App {
	o := appOptions{
		logger:      zerolog.Nop(),
		concurrency: DefaultConcurrency,
		theme:       ThemeDark,
	}
	for _, opt := range opts {
		opt(&o)
	}

	pageSize := catalog.PageSize()

	return &App{
		Search: newFeed("search", "The films didn't sink in",
			func(ctx context.Context, q SearchQuery, page int) (*kinopoisk.Page, error) {
				return catalog.Search(ctx, q.Key(), page)
			},
			o.logger,
			paging.WithStrategy(paging.ByTotalPages),
			paging.WithPageSize(pageSize),
		),
		Navigate: newFeed("navigate", "The films didn't sink in",
			func(ctx context.Context, q NavQuery, page int) (*kinopoisk.Page, error) {
				return catalog.Discover(ctx, q.Filter.Apply(q.Type, page, pageSize))
			},
			o.logger,
			paging.WithStrategy(paging.ByPageSize),
			paging.WithPageSize(pageSize),
		),
		Favourites:  &Favourites{},
		collections: newCollectionStore(catalog, o),
		details:     newDetailStore(source, o),
		logger:      o.logger,
		concurrency: o.concurrency,
		theme:       o.theme,
		navType:     kinopoisk.TypeMovie,
	}
}

// RunSearch shows the results for text, loading page 1 unless the same
// search is already showing
func (a *App) RunSearch(ctx context.Context, text string) {
	a.Search.Open(ctx, SearchQuery{Text: text})
}

// ClearSearch drops every cached search result
func (a *App) ClearSearch() {
	a.Search.Clear()
}

// Browse shows contentType narrowed by f
func (a *App) Browse(ctx context.Context, contentType string, f filter.State) {
	a.mu.Lock()
	a.navType = contentType
	a.navFilter = f
	a.mu.Unlock()

	a.Navigate.Open(ctx, NavQuery{Type: contentType, Filter: f})
}

// SwitchType shows another content type; the filter is cleared when the
// type changes
func (a *App) SwitchType(ctx context.Context, contentType string) {
	a.mu.RLock()
	f := a.navFilter
	if contentType != a.navType {
		f = f.Clear()
	}
	a.mu.RUnlock()

	a.Browse(ctx, contentType, f)
}

// ApplyFilter narrows the current content type by f
func (a *App) ApplyFilter(ctx context.Context, f filter.State) {
	a.Browse(ctx, a.NavType(), f)
}

// ClearFilter shows the current content type unfiltered
func (a *App) ClearFilter(ctx context.Context) {
	a.ApplyFilter(ctx, filter.State{})
}

// NavType returns the content type being browsed
func (a *App) NavType() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.navType
}

// Filter returns the active filter
func (a *App) Filter() filter.State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.navFilter
}

// Login sets the authorization flag
func (a *App) Login() {
	a.mu.Lock()
	a.authorized = true
	a.mu.Unlock()
	a.logger.Debug().Msg("Session authorized")
}

// Logout clears the authorization flag
func (a *App) Logout() {
	a.mu.Lock()
	a.authorized = false
	a.mu.Unlock()
	a.logger.Debug().Msg("Session logged out")
}

// Authorized reports whether the session is logged in
func (a *App) Authorized() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authorized
}

// AddFavourite adds id to the favourites; it requires login
func (a *App) AddFavourite(id string) (bool, error) {
	if !a.Authorized() {
		return false, ErrUnauthorized
	}
	return a.Favourites.Add(strings.TrimSpace(id)), nil
}

// RemoveFavourite removes id from the favourites; it requires login
func (a *App) RemoveFavourite(id string) (bool, error) {
	if !a.Authorized() {
		return false, ErrUnauthorized
	}
	return a.Favourites.Remove(strings.TrimSpace(id)), nil
}

// Theme returns the current theme
func (a *App) Theme() Theme {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.theme
}

// SetTheme changes the theme
func (a *App) SetTheme(t Theme) {
	a.mu.Lock()
	a.theme = t
	a.mu.Unlock()
}
