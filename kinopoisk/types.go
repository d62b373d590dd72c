package kinopoisk

import "strings"

// Content types accepted by the type filter
const (
	TypeMovie    = "movie"
	TypeTVSeries = "tv-series"
	TypeCartoon  = "cartoon"
	TypeAnime    = "anime"
)

// ExternalID holds the identifiers other providers know a title by
type ExternalID struct {
	IMDb string `json:"imdb"`
	TMDb int64  `json:"tmdb"`
	KpHD string `json:"kpHD"`
}

// Rating holds per-source ratings
type Rating struct {
	Kp   float64 `json:"kp"`
	IMDb float64 `json:"imdb"`
}

// Name is a named reference such as a genre or country
type Name struct {
	Name string `json:"name"`
}

// Movie is a summary record returned by search and discovery.
// Discovery only selects ExternalID, so the other fields may be empty there.
type Movie struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	AlternativeName string      `json:"alternativeName"`
	Year            int         `json:"year"`
	Type            string      `json:"type"`
	Rating          Rating      `json:"rating"`
	Genres          []Name      `json:"genres"`
	Countries       []Name      `json:"countries"`
	ExternalID      *ExternalID `json:"externalId"`
}

// IMDbID returns the external IMDb id, empty when the record has none
func (m Movie) IMDbID() string {
	if m.ExternalID == nil {
		return ""
	}
	return strings.TrimSpace(m.ExternalID.IMDb)
}

// HasIMDbID reports whether the record can be cross-referenced
func (m Movie) HasIMDbID() bool {
	return m.IMDbID() != ""
}

// Title returns the best display title
func (m Movie) Title() string {
	if m.AlternativeName != "" {
		return m.AlternativeName
	}
	return m.Name
}

// Page is one page of a paged response
type Page struct {
	Docs  []Movie `json:"docs"`
	Total int     `json:"total"`
	Limit int     `json:"limit"`
	Page  int     `json:"page"`
	Pages int     `json:"pages"`
}

// DiscoverParams are the filters of the discovery endpoint. Genres encode as
// one genres.name parameter per value.
type DiscoverParams struct {
	Page          int      `url:"page"`
	Limit         int      `url:"limit"`
	NotNullFields string   `url:"notNullFields,omitempty"`
	SelectFields  string   `url:"selectFields,omitempty"`
	Type          string   `url:"type,omitempty"`
	Genres        []string `url:"genres.name,omitempty"`
	Country       string   `url:"countries.name,omitempty"`
	Year          string   `url:"year,omitempty"`
	Rating        string   `url:"rating.imdb,omitempty"`
}

// searchParams are the parameters of the keyword search endpoint
type searchParams struct {
	Page  int    `url:"page"`
	Limit int    `url:"limit"`
	Query string `url:"query"`
}

type errorBody struct {
	Message any    `json:"message"`
	Error   string `json:"error"`
}

// text flattens the message field, which the API sends either as a string
// or as a list of validation messages
func (b errorBody) text() string {
	switch m := b.Message.(type) {
	case string:
		return m
	case []any:
		parts := make([]string, 0, len(m))
		for _, p := range m {
			if s, ok := p.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	}
	return b.Error
}
