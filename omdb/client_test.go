package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMovie = `{
	"Title": "Breaking Bad",
	"Year": "2008–2013",
	"Runtime": "49 min",
	"Genre": "Crime, Drama, Thriller",
	"Plot": "A chemistry teacher diagnosed with cancer...",
	"Poster": "https://example.com/bb.jpg",
	"imdbRating": "9.5",
	"imdbID": "tt0903747",
	"Type": "series",
	"totalSeasons": "5",
	"Response": "True"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "test-key", time.Second, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	_, err := NewClient("", "", 0, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	client, err := NewClient("", "key", 0, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("tt0903747"))
	assert.True(t, ValidID("tt0000001"))
	assert.False(t, ValidID("0903747"))
	assert.False(t, ValidID("tt12"))
	assert.False(t, ValidID("tt09a3747"))
	assert.False(t, ValidID(""))
}

func TestGetMovie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "tt0903747", r.URL.Query().Get("i"))
		w.Write([]byte(sampleMovie))
	})

	movie, err := client.GetMovie(context.Background(), " tt0903747 ")
	require.NoError(t, err)

	assert.Equal(t, "Breaking Bad", movie.Title)
	assert.Equal(t, 9.5, movie.Rating())
	assert.Equal(t, 2008, movie.StartYear())
	assert.Equal(t, []string{"Crime", "Drama", "Thriller"}, movie.Genres())
	assert.Equal(t, 5, movie.Seasons())
	assert.True(t, movie.HasPoster())
}

func TestGetMovie_InvalidID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.GetMovie(context.Background(), "batman")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGetMovie_Errors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantMessage  string
		wantNotFound bool
	}{
		{
			name:        "server error with message",
			status:      http.StatusInternalServerError,
			body:        `{"message":"server error"}`,
			wantMessage: "server error",
		},
		{
			name:        "server error without body",
			status:      http.StatusBadGateway,
			wantMessage: "Bad Gateway",
		},
		{
			name:         "response false",
			status:       http.StatusOK,
			body:         `{"Response":"False","Error":"Incorrect IMDb ID."}`,
			wantMessage:  "Incorrect IMDb ID.",
			wantNotFound: true,
		},
		{
			name:        "invalid key",
			status:      http.StatusUnauthorized,
			body:        `{"Response":"False","Error":"Invalid API key!"}`,
			wantMessage: "Invalid API key!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.GetMovie(context.Background(), "tt0000001")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantMessage, apiErr.PublicMessage())
			assert.Equal(t, tt.wantNotFound, apiErr.IsNotFound())
		})
	}
}

func TestGetMovie_ConnectionErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client, err := NewClient(base, "secret-key", time.Second, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.GetMovie(context.Background(), "tt0000001")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConnection)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestMovieHelpers_NotAvailable(t *testing.T) {
	m := Movie{Year: "N/A", Genre: "N/A", IMDbRating: "N/A", TotalSeasons: "N/A", Poster: "N/A"}
	assert.Equal(t, 0, m.StartYear())
	assert.Equal(t, 0.0, m.Rating())
	assert.Empty(t, m.Genres())
	assert.NotNil(t, m.Genres())
	assert.Equal(t, 0, m.Seasons())
	assert.False(t, m.HasPoster())
}
