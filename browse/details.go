package browse

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/omdb"
)

type detailStore = fetch.Store[string, struct{}, omdb.Movie]

func newDetailStore(source DetailSource, opts appOptions) *detailStore {
	var group singleflight.Group

	return fetch.New("details",
		func(ctx context.Context, id string, _ struct{}) (omdb.Movie, error) {
			// concurrent loads of one id share a single request
			v, err, _ := group.Do(id, func() (any, error) {
				return source.GetMovie(ctx, id)
			})
			if err != nil {
				return omdb.Movie{}, err
			}
			return *v.(*omdb.Movie), nil
		},
		fetch.WithLogger[string, struct{}, omdb.Movie](opts.logger),
	)
}

// LoadDetails fetches the detailed record of id, replacing any cached one
func (a *App) LoadDetails(ctx context.Context, id string) {
	a.details.Load(ctx, strings.TrimSpace(id), struct{}{})
}

// EnsureDetails loads id only when it is not cached yet. It reports whether
// a load was issued.
func (a *App) EnsureDetails(ctx context.Context, id string) bool {
	id = strings.TrimSpace(id)
	if fetch.Select(a.details, fetch.Has[string, omdb.Movie](id)) {
		return false
	}
	a.details.Load(ctx, id, struct{}{})
	return true
}

// EnsureAllDetails makes sure every id is cached, fetching the missing ones
// concurrently
func (a *App) EnsureAllDetails(ctx context.Context, ids []string) {
	var g errgroup.Group
	g.SetLimit(a.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			a.EnsureDetails(ctx, id)
			return nil
		})
	}

	g.Wait()
}

// Details returns the cached record of id
func (a *App) Details(id string) (omdb.Movie, bool) {
	c := fetch.Select(a.details, fetch.Entry[string, omdb.Movie](strings.TrimSpace(id)))
	return c.Value, c.OK
}

// DetailsFor returns the cached records of ids in order, skipping the
// ones that are not cached
func (a *App) DetailsFor(ids []string) []omdb.Movie {
	out := make([]omdb.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := a.Details(id); ok {
			out = append(out, m)
		}
	}
	return out
}

// DetailsInfo returns the status and error of the detail cache
func (a *App) DetailsInfo() fetch.Info {
	return fetch.Select(a.details, fetch.InfoOf[string, omdb.Movie]())
}
