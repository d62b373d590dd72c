package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/render"
)

// listing is the read side of a feed
type listing interface {
	Items() []kinopoisk.Movie
	Info() fetch.Info
	HasMore() bool
	More(ctx context.Context) int
}

// loadPages keeps requesting pages until pages have been requested or the
// feed runs out
func loadPages(ctx context.Context, l listing, pages int) {
	for loaded := 1; loaded < pages && l.HasMore(); loaded++ {
		l.More(ctx)
	}
}

// printListing renders l, narrowed by the where expression when one is given
func printListing(ctx context.Context, w io.Writer, heading string, l listing, where string) error {
	items := l.Items()
	info := l.Info()

	if where != "" && info.Status != fetch.StatusRejected {
		var err error
		items, err = refine(ctx, items, where)
		if err != nil {
			return err
		}
	}

	fmt.Fprint(w, formatter().FormatList(render.ListView{
		Heading:     heading,
		Items:       items,
		Info:        info,
		HasMore:     l.HasMore(),
		IsFavourite: favouriteMarker(),
	}))
	return nil
}

func favouriteMarker() func(string) bool {
	if !app.Authorized() {
		return nil
	}
	return app.Favourites.Contains
}

// resolveExpression expands @name to the named expression from the config
func resolveExpression(where string) (string, error) {
	name, ok := strings.CutPrefix(strings.TrimSpace(where), "@")
	if !ok {
		return where, nil
	}
	expression, found := cfg.Filters[name]
	if !found {
		return "", fmt.Errorf("filter '%s' not found in config", name)
	}
	return expression, nil
}

// refine fetches details for every title and keeps the ones the expression
// matches. Titles whose details fail to load are dropped.
func refine(ctx context.Context, movies []kinopoisk.Movie, where string) ([]kinopoisk.Movie, error) {
	source, err := resolveExpression(where)
	if err != nil {
		return nil, err
	}

	expression, err := compiler.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("invalid --where expression: %w", err)
	}

	ids := make([]string, len(movies))
	for i, m := range movies {
		ids[i] = m.IMDbID()
	}
	app.EnsureAllDetails(ctx, ids)

	kept := make([]kinopoisk.Movie, 0, len(movies))
	for _, m := range movies {
		detail, ok := app.Details(m.IMDbID())
		if !ok {
			logger.Warn().Str("imdb_id", m.IMDbID()).Msg("No details, skipping title")
			continue
		}

		match, err := expression.Match(detail)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to evaluate expression")
			continue
		}
		if match {
			kept = append(kept, m)
		}
	}

	logger.Debug().
		Str("where", expression.String()).
		Int("total", len(movies)).
		Int("kept", len(kept)).
		Msg("Refined titles")

	return kept, nil
}

// printDetails renders the cached details of id or the detail error
func printDetails(w io.Writer, id string) {
	m, ok := app.Details(id)
	if !ok {
		info := app.DetailsInfo()
		reason := info.Error
		if reason == "" {
			reason = fetch.DefaultFallback
		}
		fmt.Fprint(w, formatter().FormatError(reason))
		return
	}
	fmt.Fprint(w, formatter().FormatDetails(m, app.Authorized() && app.Favourites.Contains(id)))
}

// parseFilter builds a filter state from user input for contentType
func parseFilter(contentType string, genres []string, country, years, rating string) (filter.State, error) {
	var s filter.State

	for _, g := range genres {
		opt, err := filter.ResolveGenre(contentType, g)
		if err != nil {
			return filter.State{}, err
		}
		s = s.WithGenre(opt.Value)
	}

	if country != "" {
		opt, err := filter.ResolveCountry(country)
		if err != nil {
			return filter.State{}, err
		}
		s.Country = opt.Value
	}

	var err error
	if s.Years, err = filter.ParseYears(years); err != nil {
		return filter.State{}, err
	}
	if s.Rating, err = filter.ParseRating(rating); err != nil {
		return filter.State{}, err
	}

	return s, nil
}
