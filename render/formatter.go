package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/omdb"
)

// NoData is shown in place of a list whose load failed
const NoData = "Can't fetch data"

type palette struct {
	heading lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	err     lipgloss.Style
}

func newPalette(theme string) palette {
	if theme == "light" {
		return palette{
			heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			title:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")),
			muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			err:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		}
	}
	return palette{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		title:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// ListView is one paged list as the formatter needs it
type ListView struct {
	Heading string
	Items   []kinopoisk.Movie
	Info    fetch.Info
	HasMore bool
	// IsFavourite marks favourite titles, nil when favourites are unavailable
	IsFavourite func(imdbID string) bool
}

// ConsoleFormatter provides themed console output
type ConsoleFormatter struct {
	p palette
}

// NewConsoleFormatter creates a formatter for the "dark" or "light" theme
func NewConsoleFormatter(theme string) *ConsoleFormatter {
	return &ConsoleFormatter{p: newPalette(theme)}
}

// FormatError renders a failed load. The pagination hint is never shown
// alongside it.
func (f *ConsoleFormatter) FormatError(reason string) string {
	return f.p.err.Render(fmt.Sprintf("%s: %s", NoData, reason)) + "\n"
}

// FormatList formats a list of titles for console display
func (f *ConsoleFormatter) FormatList(v ListView) string {
	var sb strings.Builder

	if v.Heading != "" {
		fmt.Fprintf(&sb, "\n%s (%d):\n\n", f.p.heading.Render(v.Heading), len(v.Items))
	}

	if v.Info.Status == fetch.StatusRejected {
		sb.WriteString(f.FormatError(v.Info.Error))
		return sb.String()
	}

	if len(v.Items) == 0 {
		sb.WriteString(f.p.muted.Render("No titles found") + "\n")
		return sb.String()
	}

	for i, m := range v.Items {
		isLast := i == len(v.Items)-1
		prefix := "\u251c"
		indent := "\u2502   "
		if isLast {
			prefix = "\u2570"
			indent = "    "
		}

		line := f.p.title.Render(m.Title())
		if m.Year > 0 {
			line += fmt.Sprintf(" (%d)", m.Year)
		}
		if v.IsFavourite != nil && v.IsFavourite(m.IMDbID()) {
			line += " " + f.p.accent.Render("\u2605")
		}
		fmt.Fprintf(&sb, "%s\u2500\u2500 %s\n", prefix, line)

		var parts []string
		parts = append(parts, "IMDb: "+m.IMDbID())
		if m.Rating.IMDb > 0 {
			parts = append(parts, fmt.Sprintf("Rating: %.1f", m.Rating.IMDb))
		}
		if m.Type != "" {
			parts = append(parts, "Type: "+m.Type)
		}
		fmt.Fprintf(&sb, "%s%s\n", indent, f.p.muted.Render(strings.Join(parts, " | ")))
	}

	if v.HasMore {
		sb.WriteString("\n" + f.p.accent.Render("More results available") + "\n")
	}

	return sb.String()
}

// FormatDetails formats a detailed record
func (f *ConsoleFormatter) FormatDetails(m omdb.Movie, favourite bool) string {
	var sb strings.Builder

	heading := f.p.heading.Render(m.Title)
	if favourite {
		heading += " " + f.p.accent.Render("\u2605")
	}
	fmt.Fprintf(&sb, "\n%s\n", heading)

	row := func(label, value string) {
		if value == "" || value == "N/A" {
			return
		}
		fmt.Fprintf(&sb, "  %s %s\n", f.p.muted.Render(label+":"), value)
	}

	row("Year", m.Year)
	row("Type", m.Type)
	row("Runtime", m.Runtime)
	row("Genre", m.Genre)
	row("Country", m.Country)
	row("Director", m.Director)
	row("Actors", m.Actors)
	if r := m.Rating(); r > 0 {
		row("IMDb rating", fmt.Sprintf("%.1f", r))
	}
	if s := m.Seasons(); s > 0 {
		row("Seasons", fmt.Sprintf("%d", s))
	}
	if m.HasPoster() {
		row("Poster", m.Poster)
	}
	row("IMDb", m.IMDbID)
	if m.Plot != "" && m.Plot != "N/A" {
		fmt.Fprintf(&sb, "\n  %s\n", m.Plot)
	}

	return sb.String()
}

// FormatOptions formats a catalog of genres or countries
func (f *ConsoleFormatter) FormatOptions(heading string, options []filter.Option) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s:\n", f.p.heading.Render(heading))
	for _, opt := range options {
		fmt.Fprintf(&sb, "  %-16s %s\n", opt.Label, f.p.muted.Render(opt.Value))
	}
	return sb.String()
}

// FormatFilter describes an active filter, "none" when empty
func (f *ConsoleFormatter) FormatFilter(contentType string, s filter.State) string {
	if s.IsZero() {
		return fmt.Sprintf("Filter for %s: none\n", contentType)
	}

	genres := filter.Genres(contentType)
	var parts []string
	if len(s.Genres) > 0 {
		labels := make([]string, len(s.Genres))
		for i, g := range s.Genres {
			labels[i] = filter.LabelFor(genres, g)
		}
		parts = append(parts, "genres="+strings.Join(labels, ","))
	}
	if s.Country != "" {
		parts = append(parts, "country="+filter.LabelFor(filter.Countries(), s.Country))
	}
	if !s.Years.IsZero() {
		parts = append(parts, "years="+s.Years.String())
	}
	if !s.Rating.IsZero() {
		parts = append(parts, "rating="+s.Rating.String())
	}
	return fmt.Sprintf("Filter for %s: %s\n", contentType, strings.Join(parts, " "))
}
