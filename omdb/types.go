package omdb

import (
	"strconv"
	"strings"
)

// Movie is the detailed OMDb record for one title
type Movie struct {
	Title        string `json:"Title"`
	Year         string `json:"Year"`
	Runtime      string `json:"Runtime"`
	Genre        string `json:"Genre"`
	Plot         string `json:"Plot"`
	Poster       string `json:"Poster"`
	IMDbRating   string `json:"imdbRating"`
	IMDbID       string `json:"imdbID"`
	Type         string `json:"Type"`
	TotalSeasons string `json:"totalSeasons"`
	Country      string `json:"Country"`
	Director     string `json:"Director"`
	Actors       string `json:"Actors"`
}

// notAvailable is how OMDb marks missing values
const notAvailable = "N/A"

// Rating returns the IMDb rating, 0 when not available
func (m Movie) Rating() float64 {
	r, err := strconv.ParseFloat(m.IMDbRating, 64)
	if err != nil {
		return 0
	}
	return r
}

// StartYear returns the first year of the Year field ("2008–2013" → 2008)
func (m Movie) StartYear() int {
	year := m.Year
	if len(year) > 4 {
		year = year[:4]
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return y
}

// Genres splits the comma separated genre list
func (m Movie) Genres() []string {
	return splitList(m.Genre)
}

// Seasons returns the season count for series, 0 otherwise
func (m Movie) Seasons() int {
	n, err := strconv.Atoi(m.TotalSeasons)
	if err != nil {
		return 0
	}
	return n
}

// HasPoster reports whether a poster URL is available
func (m Movie) HasPoster() bool {
	return m.Poster != "" && m.Poster != notAvailable
}

func splitList(s string) []string {
	if s == "" || s == notAvailable {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envelope carries the success flag OMDb adds to every body
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Message  string `json:"message"`
}
