package browse

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/paging"
)

// pageRequest carries a query and the page wanted from it
type pageRequest[Q paging.Query] struct {
	Query Q
	Page  int
}

type pageFetcher[Q paging.Query] func(ctx context.Context, q Q, page int) (*kinopoisk.Page, error)

// Feed is a paged list of titles: a store keyed by query plus the
// controller that walks its pages
type Feed[Q paging.Query] struct {
	store *fetch.Store[string, pageRequest[Q], fetch.PagedList[kinopoisk.Movie]]
	ctrl  *paging.Controller[Q]
}

func newFeed[Q paging.Query](name, fallback string, get pageFetcher[Q], logger zerolog.Logger, opts ...paging.Option) *Feed[Q] {
	f := &Feed[Q]{}
	f.store = fetch.New(name,
		func(ctx context.Context, _ string, r pageRequest[Q]) (fetch.PagedList[kinopoisk.Movie], error) {
			page, err := get(ctx, r.Query, r.Page)
			if err != nil {
				return fetch.PagedList[kinopoisk.Movie]{}, err
			}
			return fetch.PagedList[kinopoisk.Movie]{
				Items:        page.Docs,
				Page:         r.Page,
				TotalPages:   page.Pages,
				LastPageSize: len(page.Docs),
			}, nil
		},
		fetch.WithMerge[string, pageRequest[Q]](fetch.MergePages(kinopoisk.Movie.HasIMDbID)),
		fetch.WithFallback[string, pageRequest[Q], fetch.PagedList[kinopoisk.Movie]](fallback),
		fetch.WithLogger[string, pageRequest[Q], fetch.PagedList[kinopoisk.Movie]](logger),
	)

	f.ctrl = paging.NewController(
		func(ctx context.Context, q Q, page int) {
			f.store.Load(ctx, q.Key(), pageRequest[Q]{Query: q, Page: page})
		},
		func(k string) fetch.Progress {
			return fetch.Select(f.store, fetch.ProgressOf[string, kinopoisk.Movie](k))
		},
		opts...,
	)

	return f
}

// Open shows q, loading its first page unless q is already showing
func (f *Feed[Q]) Open(ctx context.Context, q Q) {
	f.ctrl.Apply(ctx, q)
}

// Reload loads the first page of q again, replacing what was cached
func (f *Feed[Q]) Reload(ctx context.Context, q Q) {
	f.ctrl.Reset(ctx, q)
}

// More loads the next page; it returns the page number requested or 0
// when no query is showing
func (f *Feed[Q]) More(ctx context.Context) int {
	return f.ctrl.LoadNext(ctx)
}

// Retry loads the current page again
func (f *Feed[Q]) Retry(ctx context.Context) int {
	return f.ctrl.Retry(ctx)
}

// HasMore reports whether another page is worth requesting
func (f *Feed[Q]) HasMore() bool {
	return f.ctrl.HasMore()
}

// Page returns the last requested page
func (f *Feed[Q]) Page() int {
	return f.ctrl.Page()
}

// Query returns the showing query
func (f *Feed[Q]) Query() (Q, bool) {
	return f.ctrl.Query()
}

// Items returns the titles accumulated for the showing query
func (f *Feed[Q]) Items() []kinopoisk.Movie {
	q, ok := f.ctrl.Query()
	if !ok {
		return []kinopoisk.Movie{}
	}
	return fetch.Select(f.store, fetch.Items[string, kinopoisk.Movie](q.Key()))
}

// Info returns the feed's status and error
func (f *Feed[Q]) Info() fetch.Info {
	return fetch.Select(f.store, fetch.InfoOf[string, fetch.PagedList[kinopoisk.Movie]]())
}

// Clear drops every cached page and forgets the showing query
func (f *Feed[Q]) Clear() {
	f.store.Reset()
	f.ctrl.Clear()
}
