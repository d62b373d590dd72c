package filter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/s0up4200/reelscout/kinopoisk"
)

// Bounds accepted for range filters
const (
	MinYear   = 1874
	MinRating = 1
	MaxRating = 10
)

// MaxYear is the current calendar year
func MaxYear() int {
	return time.Now().Year()
}

// Range is an inclusive numeric range; the zero value means unset
type Range struct {
	From float64
	To   float64
}

// IsZero reports whether the range is unset
func (r Range) IsZero() bool {
	return r.From == 0 && r.To == 0
}

// String formats the range the way the catalog API expects, "from-to"
func (r Range) String() string {
	if r.IsZero() {
		return ""
	}
	return formatNumber(r.From) + "-" + formatNumber(r.To)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseRange parses "from-to" or a single value, rejecting values outside
// [lo, hi]. A single value becomes a one-point range.
func ParseRange(s string, lo, hi float64) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, nil
	}

	fromStr, toStr, found := strings.Cut(s, "-")
	if !found {
		toStr = fromStr
	}

	from, err := strconv.ParseFloat(strings.TrimSpace(fromStr), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	to, err := strconv.ParseFloat(strings.TrimSpace(toStr), 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	if from > to {
		return Range{}, fmt.Errorf("%w: %q starts after it ends", ErrInvalidRange, s)
	}
	if from < lo || to > hi {
		return Range{}, fmt.Errorf("%w: %q outside %s-%s", ErrInvalidRange, s, formatNumber(lo), formatNumber(hi))
	}

	return Range{From: from, To: to}, nil
}

// ParseYears parses a year range bounded by MinYear and the current year
func ParseYears(s string) (Range, error) {
	return ParseRange(s, MinYear, float64(MaxYear()))
}

// ParseRating parses a rating range bounded by MinRating and MaxRating
func ParseRating(s string) (Range, error) {
	return ParseRange(s, MinRating, MaxRating)
}

// State is the user's discovery filter. Genres form a set.
type State struct {
	Genres  []string
	Country string
	Years   Range
	Rating  Range
}

// WithGenre returns a copy with genre added; adding twice is a no-op
func (s State) WithGenre(genre string) State {
	if genre == "" || slices.Contains(s.Genres, genre) {
		return s
	}
	s.Genres = append(slices.Clone(s.Genres), genre)
	return s
}

// WithoutGenre returns a copy with genre removed
func (s State) WithoutGenre(genre string) State {
	if !slices.Contains(s.Genres, genre) {
		return s
	}
	s.Genres = slices.DeleteFunc(slices.Clone(s.Genres), func(g string) bool { return g == genre })
	return s
}

// IsZero reports whether no filter is set
func (s State) IsZero() bool {
	return len(s.Genres) == 0 && s.Country == "" && s.Years.IsZero() && s.Rating.IsZero()
}

// Clear returns the empty filter
func (s State) Clear() State {
	return State{}
}

// Key identifies the filter independently of genre order
func (s State) Key() string {
	genres := slices.Clone(s.Genres)
	slices.Sort(genres)
	return fmt.Sprintf("genres=%s;country=%s;year=%s;rating=%s",
		strings.Join(genres, ","), s.Country, s.Years, s.Rating)
}

// Apply copies the filter onto discovery parameters for contentType
func (s State) Apply(contentType string, page, limit int) kinopoisk.DiscoverParams {
	return kinopoisk.DiscoverParams{
		Page:    page,
		Limit:   limit,
		Type:    contentType,
		Genres:  slices.Clone(s.Genres),
		Country: s.Country,
		Year:    s.Years.String(),
		Rating:  s.Rating.String(),
	}
}
