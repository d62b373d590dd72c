package browse

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/omdb"
)

type fakeCatalog struct {
	mu        sync.Mutex
	pages     map[string][]kinopoisk.Page
	searches  []string
	discovers []kinopoisk.DiscoverParams
	err       error
}

func (c *fakeCatalog) Search(_ context.Context, text string, page int) (*kinopoisk.Page, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searches = append(c.searches, fmt.Sprintf("%s#%d", text, page))
	if c.err != nil {
		return nil, c.err
	}
	return c.page(text, page), nil
}

func (c *fakeCatalog) Discover(_ context.Context, p kinopoisk.DiscoverParams) (*kinopoisk.Page, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.discovers = append(c.discovers, p)
	if c.err != nil {
		return nil, c.err
	}
	key := p.Type + "-" + p.Rating
	if len(p.Genres) > 0 {
		key += "-" + strings.Join(p.Genres, ",")
	}
	return c.page(key, p.Page), nil
}

func (c *fakeCatalog) PageSize() int { return 10 }

func (c *fakeCatalog) page(key string, page int) *kinopoisk.Page {
	pages := c.pages[key]
	if page > len(pages) {
		return &kinopoisk.Page{Page: page, Pages: len(pages)}
	}
	p := pages[page-1]
	return &p
}

func (c *fakeCatalog) discoverCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.discovers)
}

func movies(prefix string, n int) []kinopoisk.Movie {
	out := make([]kinopoisk.Movie, n)
	for i := range out {
		out[i] = kinopoisk.Movie{
			ID:         int64(i + 1),
			Name:       fmt.Sprintf("%s %d", prefix, i+1),
			ExternalID: &kinopoisk.ExternalID{IMDb: fmt.Sprintf("tt%s%05d", prefix, i+1)},
		}
	}
	return out
}

type fakeDetails struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string][]error
}

func newFakeDetails() *fakeDetails {
	return &fakeDetails{calls: map[string]int{}, fail: map[string][]error{}}
}

func (d *fakeDetails) GetMovie(_ context.Context, id string) (*omdb.Movie, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls[id]++
	if errs := d.fail[id]; len(errs) > 0 {
		d.fail[id] = errs[1:]
		return nil, errs[0]
	}
	return &omdb.Movie{IMDbID: id, Title: "Title " + id, Genre: "Drama", IMDbRating: "8.1"}, nil
}

func TestApp_SearchBatmanScenario(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{pages: map[string][]kinopoisk.Page{
		"batman": {
			{Docs: movies("a", 10), Page: 1, Pages: 3},
			{Docs: movies("b", 10), Page: 2, Pages: 3},
			{Docs: movies("c", 4), Page: 3, Pages: 3},
		},
	}}
	app := New(catalog, newFakeDetails())

	app.RunSearch(ctx, "batman")
	assert.Len(t, app.Search.Items(), 10)
	assert.True(t, app.Search.HasMore())
	assert.Equal(t, fetch.StatusReceived, app.Search.Info().Status)

	app.Search.More(ctx)
	assert.Len(t, app.Search.Items(), 20)
	assert.True(t, app.Search.HasMore())

	app.Search.More(ctx)
	assert.Len(t, app.Search.Items(), 24)
	assert.False(t, app.Search.HasMore())

	// same text does not reload
	app.RunSearch(ctx, " batman ")
	assert.Equal(t, []string{"batman#1", "batman#2", "batman#3"}, catalog.searches)
}

func TestApp_SearchDropsRecordsWithoutIMDbID(t *testing.T) {
	ctx := context.Background()
	docs := movies("a", 10)
	docs[3].ExternalID = nil
	docs[7].ExternalID = &kinopoisk.ExternalID{TMDb: 42}

	catalog := &fakeCatalog{pages: map[string][]kinopoisk.Page{
		"alien": {{Docs: docs, Page: 1, Pages: 2}},
	}}
	app := New(catalog, newFakeDetails())

	app.RunSearch(ctx, "alien")
	assert.Len(t, app.Search.Items(), 8)
	// paging still counts the raw page
	assert.True(t, app.Search.HasMore())
}

func TestApp_SearchFailureAndClear(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{err: &kinopoisk.APIError{StatusCode: 403, Message: "Daily limit reached"}}
	app := New(catalog, newFakeDetails())

	app.RunSearch(ctx, "batman")
	info := app.Search.Info()
	assert.Equal(t, fetch.StatusRejected, info.Status)
	assert.Equal(t, "Daily limit reached", info.Error)
	assert.False(t, app.Search.HasMore())
	assert.Empty(t, app.Search.Items())
	assert.NotNil(t, app.Search.Items())

	catalog.err = fmt.Errorf("boom")
	app.Search.Retry(ctx)
	assert.Equal(t, "The films didn't sink in", app.Search.Info().Error)

	app.ClearSearch()
	assert.Equal(t, fetch.StatusIdle, app.Search.Info().Status)
	assert.Empty(t, app.Search.Info().Error)
	_, ok := app.Search.Query()
	assert.False(t, ok)
}

func TestApp_NavigateHeuristicAndFilter(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{pages: map[string][]kinopoisk.Page{
		"movie-": {
			{Docs: movies("a", 10), Page: 1, Pages: 5},
		},
	}}
	app := New(catalog, newFakeDetails())

	app.Browse(ctx, kinopoisk.TypeMovie, filter.State{})
	assert.Len(t, app.Navigate.Items(), 10)
	assert.True(t, app.Navigate.HasMore())

	// the exactly-full page costs one empty round trip
	app.Navigate.More(ctx)
	assert.Len(t, app.Navigate.Items(), 10)
	assert.False(t, app.Navigate.HasMore())

	f := filter.State{Country: "США"}.WithGenre("драма")
	app.ApplyFilter(ctx, f)
	require.Equal(t, 3, catalog.discoverCount())
	last := catalog.discovers[2]
	assert.Equal(t, 1, last.Page)
	assert.Equal(t, kinopoisk.TypeMovie, last.Type)
	assert.Equal(t, []string{"драма"}, last.Genres)
	assert.Equal(t, "США", last.Country)
	assert.Equal(t, f, app.Filter())
}

func TestApp_SwitchTypeClearsFilter(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{}
	app := New(catalog, newFakeDetails())

	app.Browse(ctx, kinopoisk.TypeMovie, filter.State{}.WithGenre("драма"))
	app.SwitchType(ctx, kinopoisk.TypeMovie)
	assert.Equal(t, []string{"драма"}, app.Filter().Genres)
	assert.Equal(t, 1, catalog.discoverCount())

	app.SwitchType(ctx, kinopoisk.TypeCartoon)
	assert.True(t, app.Filter().IsZero())
	assert.Equal(t, kinopoisk.TypeCartoon, app.NavType())
	assert.Equal(t, 2, catalog.discoverCount())

	app.ApplyFilter(ctx, filter.State{}.WithGenre("комедия"))
	app.ClearFilter(ctx)
	assert.True(t, app.Filter().IsZero())
}

func TestApp_LoadHome(t *testing.T) {
	ctx := context.Background()
	pages := map[string][]kinopoisk.Page{}
	for _, c := range HomeCollections {
		docs := movies("h", 10)
		docs[0].ExternalID = nil
		pages[c.Key()] = []kinopoisk.Page{{Docs: docs, Page: 1, Pages: 1}}
	}
	catalog := &fakeCatalog{pages: pages}
	app := New(catalog, newFakeDetails())

	app.LoadHome(ctx)
	assert.Equal(t, len(HomeCollections), catalog.discoverCount())
	for _, c := range HomeCollections {
		assert.Len(t, app.CollectionItems(c), 9, c.Title)
	}
	assert.Equal(t, fetch.StatusReceived, app.CollectionsInfo().Status)

	// cached collections are not requested again
	app.LoadHome(ctx)
	assert.False(t, app.EnsureCollection(ctx, HomeCollections[0]))
	assert.Equal(t, len(HomeCollections), catalog.discoverCount())
}

func TestApp_CollectionFailure(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{err: fmt.Errorf("decode failed")}
	app := New(catalog, newFakeDetails())

	c := HomeCollections[3]
	assert.Equal(t, "tv-series-8-10-детектив", c.Key())
	assert.True(t, app.EnsureCollection(ctx, c))

	info := app.CollectionsInfo()
	assert.Equal(t, fetch.StatusRejected, info.Status)
	assert.Equal(t, "The collection did not load", info.Error)
	assert.Empty(t, app.CollectionItems(c))

	// a failed collection is not cached, so it may be requested again
	assert.True(t, app.EnsureCollection(ctx, c))
}

func TestApp_DetailsRetryScenario(t *testing.T) {
	ctx := context.Background()
	details := newFakeDetails()
	details.fail["tt0000001"] = []error{&omdb.APIError{StatusCode: 500, Message: "Internal error"}}
	app := New(&fakeCatalog{}, details)

	app.LoadDetails(ctx, "tt0000001")
	info := app.DetailsInfo()
	assert.Equal(t, fetch.StatusRejected, info.Status)
	assert.Equal(t, "Internal error", info.Error)
	_, ok := app.Details("tt0000001")
	assert.False(t, ok)

	app.LoadDetails(ctx, "tt0000001")
	info = app.DetailsInfo()
	assert.Equal(t, fetch.StatusReceived, info.Status)
	assert.Empty(t, info.Error)

	m, ok := app.Details("tt0000001")
	require.True(t, ok)
	assert.Equal(t, "Title tt0000001", m.Title)
}

func TestApp_EnsureDetails(t *testing.T) {
	ctx := context.Background()
	details := newFakeDetails()
	app := New(&fakeCatalog{}, details)

	ids := []string{"tt0000001", "tt0000002", "tt0000003"}
	app.EnsureAllDetails(ctx, ids)

	assert.Len(t, app.DetailsFor(ids), 3)
	assert.False(t, app.EnsureDetails(ctx, "tt0000002"))
	for _, id := range ids {
		assert.Equal(t, 1, details.calls[id], id)
	}

	// unknown ids are skipped
	assert.Len(t, app.DetailsFor([]string{"tt0000001", "tt9999999"}), 1)
}

func TestApp_FavouritesScenario(t *testing.T) {
	app := New(&fakeCatalog{}, newFakeDetails())

	_, err := app.AddFavourite("tt0000001")
	assert.ErrorIs(t, err, ErrUnauthorized)

	app.Login()
	require.True(t, app.Authorized())

	changed, err := app.AddFavourite("tt0000001")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = app.AddFavourite("tt0000001")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"tt0000001"}, app.Favourites.List())

	changed, err = app.RemoveFavourite("tt0000001")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, app.Favourites.List())
	assert.NotNil(t, app.Favourites.List())

	changed, err = app.RemoveFavourite("tt0000001")
	require.NoError(t, err)
	assert.False(t, changed)

	app.Logout()
	_, err = app.RemoveFavourite("tt0000001")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFavourites_Order(t *testing.T) {
	var f Favourites
	f.Add("tt3")
	f.Add("tt1")
	f.Add("tt2")
	f.Remove("tt1")
	f.Add("tt1")

	assert.Equal(t, []string{"tt3", "tt2", "tt1"}, f.List())
	assert.True(t, f.Contains("tt2"))
	assert.Equal(t, 3, f.Len())
}

func TestTheme(t *testing.T) {
	app := New(&fakeCatalog{}, newFakeDetails())
	assert.Equal(t, ThemeDark, app.Theme())

	app.SetTheme(app.Theme().Toggle())
	assert.Equal(t, ThemeLight, app.Theme())

	theme, ok := ParseTheme(" LIGHT ")
	assert.True(t, ok)
	assert.Equal(t, ThemeLight, theme)
	_, ok = ParseTheme("sepia")
	assert.False(t, ok)

	app = New(&fakeCatalog{}, newFakeDetails(), WithTheme(ThemeLight))
	assert.Equal(t, ThemeLight, app.Theme())
}
