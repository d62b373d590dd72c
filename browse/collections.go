package browse

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/kinopoisk"
)

// Collection is a predefined discovery query shown on the home screen
type Collection struct {
	Title  string
	Type   string
	Rating string
	Genre  string
}

// Key identifies the collection as type-rating[-genre]
func (c Collection) Key() string {
	key := c.Type + "-" + c.Rating
	if c.Genre != "" {
		key += "-" + c.Genre
	}
	return key
}

func (c Collection) params(limit int) kinopoisk.DiscoverParams {
	p := kinopoisk.DiscoverParams{
		Page:   1,
		Limit:  limit,
		Type:   c.Type,
		Rating: c.Rating,
	}
	if c.Genre != "" {
		p.Genres = []string{c.Genre}
	}
	return p
}

// HomeCollections are the collections shown on the home screen
var HomeCollections = []Collection{
	{Title: "Best animation", Type: kinopoisk.TypeCartoon, Rating: "8-10"},
	{Title: "Best series", Type: kinopoisk.TypeTVSeries, Rating: "8-10"},
	{Title: "Best movies", Type: kinopoisk.TypeMovie, Rating: "8-10"},
	{Title: "Best detective series", Type: kinopoisk.TypeTVSeries, Rating: "8-10", Genre: "детектив"},
	{Title: "Best comedy movies", Type: kinopoisk.TypeTVSeries, Rating: "8-10", Genre: "комедия"},
}

type collectionStore = fetch.Store[string, Collection, []kinopoisk.Movie]

func newCollectionStore(catalog Catalog, opts appOptions) *collectionStore {
	return fetch.New("collections",
		func(ctx context.Context, _ string, c Collection) ([]kinopoisk.Movie, error) {
			page, err := catalog.Discover(ctx, c.params(catalog.PageSize()))
			if err != nil {
				return nil, err
			}
			return page.Docs, nil
		},
		fetch.WithMerge[string, Collection](fetch.MergeList(kinopoisk.Movie.HasIMDbID)),
		fetch.WithFallback[string, Collection, []kinopoisk.Movie]("The collection did not load"),
		fetch.WithLogger[string, Collection, []kinopoisk.Movie](opts.logger),
	)
}

// EnsureCollection loads c unless it is cached or a collection load is
// running. It reports whether a load was issued.
func (a *App) EnsureCollection(ctx context.Context, c Collection) bool {
	if fetch.Select(a.collections, fetch.Has[string, []kinopoisk.Movie](c.Key())) {
		return false
	}
	if fetch.Select(a.collections, fetch.StatusOf[string, []kinopoisk.Movie]()) == fetch.StatusLoading {
		return false
	}
	a.collections.Load(ctx, c.Key(), c)
	return true
}

// LoadHome loads every home collection that is not cached yet, in parallel
func (a *App) LoadHome(ctx context.Context) {
	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for _, c := range HomeCollections {
		if fetch.Select(a.collections, fetch.Has[string, []kinopoisk.Movie](c.Key())) {
			continue
		}
		g.Go(func() error {
			a.collections.Load(ctx, c.Key(), c)
			return nil
		})
	}

	g.Wait()
}

// CollectionItems returns the cached titles of c, empty when not loaded
func (a *App) CollectionItems(c Collection) []kinopoisk.Movie {
	return fetch.Select(a.collections, fetch.List[string, kinopoisk.Movie](c.Key()))
}

// CollectionsInfo returns the status and error of the collection store
func (a *App) CollectionsInfo() fetch.Info {
	return fetch.Select(a.collections, fetch.InfoOf[string, []kinopoisk.Movie]())
}
