package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/omdb"
)

func sampleMovies() []kinopoisk.Movie {
	return []kinopoisk.Movie{
		{Name: "Бэтмен", AlternativeName: "Batman", Year: 1989, Rating: kinopoisk.Rating{IMDb: 7.5}, ExternalID: &kinopoisk.ExternalID{IMDb: "tt0096895"}},
		{Name: "Batman Begins", Year: 2005, ExternalID: &kinopoisk.ExternalID{IMDb: "tt0372784"}},
	}
}

func TestFormatList(t *testing.T) {
	f := NewConsoleFormatter("dark")

	out := f.FormatList(ListView{
		Heading:     "Search",
		Items:       sampleMovies(),
		Info:        fetch.Info{Status: fetch.StatusReceived},
		HasMore:     true,
		IsFavourite: func(id string) bool { return id == "tt0372784" },
	})

	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "Batman (1989)")
	assert.Contains(t, out, "Rating: 7.5")
	assert.Contains(t, out, "Batman Begins (2005) ★")
	assert.Contains(t, out, "More results available")
}

func TestFormatList_ErrorHidesMore(t *testing.T) {
	f := NewConsoleFormatter("light")

	out := f.FormatList(ListView{
		Items:   sampleMovies(),
		Info:    fetch.Info{Status: fetch.StatusRejected, Error: "Daily limit reached"},
		HasMore: true,
	})

	assert.Contains(t, out, "Can't fetch data: Daily limit reached")
	assert.NotContains(t, out, "More results available")
	assert.NotContains(t, out, "Batman")
}

func TestFormatList_Empty(t *testing.T) {
	out := NewConsoleFormatter("dark").FormatList(ListView{Info: fetch.Info{Status: fetch.StatusReceived}})
	assert.Contains(t, out, "No titles found")
}

func TestFormatDetails(t *testing.T) {
	out := NewConsoleFormatter("dark").FormatDetails(omdb.Movie{
		Title:        "Breaking Bad",
		Year:         "2008–2013",
		Genre:        "Crime, Drama",
		IMDbRating:   "9.5",
		TotalSeasons: "5",
		IMDbID:       "tt0903747",
		Poster:       "N/A",
		Plot:         "A chemistry teacher...",
	}, true)

	assert.Contains(t, out, "Breaking Bad ★")
	assert.Contains(t, out, "9.5")
	assert.Contains(t, out, "Seasons: 5")
	assert.NotContains(t, out, "Poster")
	assert.Contains(t, out, "A chemistry teacher...")
}

func TestFormatFilter(t *testing.T) {
	f := NewConsoleFormatter("dark")

	assert.Equal(t, "Filter for movie: none\n", f.FormatFilter(kinopoisk.TypeMovie, filter.State{}))

	s := filter.State{Country: "США", Rating: filter.Range{From: 8, To: 10}}.WithGenre("драма")
	out := f.FormatFilter(kinopoisk.TypeMovie, s)
	assert.Contains(t, out, "genres=Drama")
	assert.Contains(t, out, "country=United States")
	assert.Contains(t, out, "rating=8-10")
}
