package filter

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/s0up4200/reelscout/kinopoisk"
)

// Option is a selectable filter value: Value is what the API expects,
// Label is what the user sees
type Option struct {
	Value string
	Label string
}

var movieGenres = []Option{
	{"боевик", "Action"},
	{"приключения", "Adventure"},
	{"мультфильм", "Animation"},
	{"биография", "Biography"},
	{"комедия", "Comedy"},
	{"криминал", "Crime"},
	{"драма", "Drama"},
	{"документальный", "Documentary"},
	{"семейный", "Family"},
	{"фэнтези", "Fantasy"},
	{"исторический", "History"},
	{"ужасы", "Horror"},
	{"музыка", "Music"},
	{"мюзикл", "Musical"},
	{"мелодрама", "Romance"},
	{"научный", "Sci-Fi"},
	{"спорт", "Sport"},
	{"триллер", "Thriller"},
	{"военный", "War"},
	{"вестерн", "Western"},
	{"детектив", "Mystery"},
}

var cartoonGenres = []Option{
	{"приключения", "Adventure"},
	{"анимация", "Animation"},
	{"комедия", "Comedy"},
	{"семейный", "Family"},
	{"фэнтези", "Fantasy"},
	{"фантастика", "Sci-Fi"},
	{"ужасы", "Horror"},
	{"мюзикл", "Musical"},
}

var countries = []Option{
	{"США", "United States"},
	{"Россия", "Russia"},
	{"Великобритания", "UK"},
	{"Франция", "France"},
	{"Германия", "Germany"},
	{"Южная Корея", "South Korea"},
	{"Япония", "Japan"},
	{"Китай", "China"},
	{"Индия", "India"},
}

// Genres returns the genre catalog for a content type. Movies and series
// share the full catalog; everything else gets the cartoon catalog.
func Genres(contentType string) []Option {
	var src []Option
	switch contentType {
	case kinopoisk.TypeMovie, kinopoisk.TypeTVSeries:
		src = movieGenres
	default:
		src = cartoonGenres
	}
	return append([]Option(nil), src...)
}

// Countries returns the country catalog
func Countries() []Option {
	return append([]Option(nil), countries...)
}

// ResolveGenre maps user input to a catalog genre for contentType
func ResolveGenre(contentType, input string) (Option, error) {
	opt, err := resolve(Genres(contentType), input)
	if err != nil {
		return Option{}, fmt.Errorf("genre %q: %w", input, err)
	}
	return opt, nil
}

// ResolveCountry maps user input to a catalog country
func ResolveCountry(input string) (Option, error) {
	opt, err := resolve(countries, input)
	if err != nil {
		return Option{}, fmt.Errorf("country %q: %w", input, err)
	}
	return opt, nil
}

// resolve matches input against values and labels, exactly first and then
// fuzzily. A fuzzy match must be unambiguous.
func resolve(options []Option, input string) (Option, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Option{}, ErrUnknownOption
	}

	for _, opt := range options {
		if strings.EqualFold(opt.Value, input) || strings.EqualFold(opt.Label, input) {
			return opt, nil
		}
	}

	candidates := make([]string, 0, len(options)*2)
	for _, opt := range options {
		candidates = append(candidates, strings.ToLower(opt.Label), strings.ToLower(opt.Value))
	}

	matches := fuzzy.Find(strings.ToLower(input), candidates)
	if len(matches) == 0 {
		return Option{}, ErrUnknownOption
	}

	best := options[matches[0].Index/2]
	for _, m := range matches[1:] {
		if m.Score < matches[0].Score {
			break
		}
		if options[m.Index/2] != best {
			return Option{}, fmt.Errorf("%w: matches both %s and %s", ErrAmbiguousOption, best.Label, options[m.Index/2].Label)
		}
	}

	return best, nil
}

// LabelFor returns the display label of a genre or country value
func LabelFor(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
