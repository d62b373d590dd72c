package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscout/browse"
	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/omdb"
)

const shellHelp = `Commands:
  search <text>        search by keyword
  browse <type>        browse movie, tv-series or cartoon (clears the filter on type change)
  genre <name>         add a genre to the filter
  ungenre <name>       remove a genre from the filter
  country <name|->     set or clear the country
  years <from-to|->    set or clear the release years
  rating <from-to|->   set or clear the IMDb rating
  filter [clear]       show or clear the filter
  more                 load the next page of the last list
  retry                load the last page again
  clear                clear the search results
  home                 show the home collections
  details <imdb-id>    show title details
  login | logout       toggle authorization
  fav add|rm <id>      change favourites (login required)
  fav list             list favourites (login required)
  theme [dark|light|toggle]
  help | quit
`

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive browsing session",
	Long: `Start an interactive session. Search results, collections, details,
favourites and the filter live for the whole session.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	return newSession(cmd.OutOrStdout()).run(context.Background(), os.Stdin)
}

// errQuit ends the session
var errQuit = errors.New("quit")

type session struct {
	out     io.Writer
	current listing
	heading string
}

func newSession(out io.Writer) *session {
	return &session{out: out}
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	fmt.Fprint(s.out, "Type 'help' for commands.\n")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		err := s.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// exec runs one command line
func (s *session) exec(ctx context.Context, line string) error {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	name = strings.ToLower(name)
	rest = strings.TrimSpace(rest)

	switch name {
	case "":
		return nil
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
	case "quit", "exit", "q":
		return errQuit

	case "search":
		if rest == "" {
			return fmt.Errorf("usage: search <text>")
		}
		app.RunSearch(ctx, rest)
		return s.show(ctx, fmt.Sprintf("Results for %q", rest), app.Search)
	case "clear":
		app.ClearSearch()
		if s.current == listing(app.Search) {
			s.current = nil
		}
		fmt.Fprintln(s.out, "Search cleared")

	case "browse":
		if rest == "" {
			rest = app.NavType()
		}
		app.SwitchType(ctx, rest)
		return s.showNavigate(ctx)
	case "genre", "ungenre":
		opt, err := filter.ResolveGenre(app.NavType(), rest)
		if err != nil {
			return err
		}
		f := app.Filter().WithGenre(opt.Value)
		if name == "ungenre" {
			f = app.Filter().WithoutGenre(opt.Value)
		}
		app.ApplyFilter(ctx, f)
		return s.showNavigate(ctx)
	case "country":
		f := app.Filter()
		f.Country = ""
		if rest != "-" {
			opt, err := filter.ResolveCountry(rest)
			if err != nil {
				return err
			}
			f.Country = opt.Value
		}
		app.ApplyFilter(ctx, f)
		return s.showNavigate(ctx)
	case "years", "rating":
		f := app.Filter()
		if rest == "-" {
			rest = ""
		}
		var err error
		if name == "years" {
			f.Years, err = filter.ParseYears(rest)
		} else {
			f.Rating, err = filter.ParseRating(rest)
		}
		if err != nil {
			return err
		}
		app.ApplyFilter(ctx, f)
		return s.showNavigate(ctx)
	case "filter":
		if rest == "clear" {
			app.ClearFilter(ctx)
			return s.showNavigate(ctx)
		}
		fmt.Fprint(s.out, formatter().FormatFilter(app.NavType(), app.Filter()))

	case "more", "retry":
		if s.current == nil {
			return fmt.Errorf("nothing to page, run search or browse first")
		}
		if name == "retry" {
			s.retry(ctx)
		} else if !s.current.HasMore() {
			fmt.Fprintln(s.out, "No more results")
			return nil
		} else {
			s.current.More(ctx)
		}
		return printListing(ctx, s.out, s.heading, s.current, "")

	case "home":
		app.LoadHome(ctx)
		for _, c := range browse.HomeCollections {
			fmt.Fprintf(s.out, "%s: %d titles\n", c.Title, len(app.CollectionItems(c)))
		}
		if info := app.CollectionsInfo(); info.Error != "" {
			fmt.Fprint(s.out, formatter().FormatError(info.Error))
		}
	case "details":
		if !omdb.ValidID(rest) {
			return fmt.Errorf("usage: details <imdb-id>")
		}
		app.EnsureDetails(ctx, rest)
		printDetails(s.out, rest)

	case "login":
		app.Login()
		fmt.Fprintln(s.out, "Logged in")
	case "logout":
		app.Logout()
		fmt.Fprintln(s.out, "Logged out")
	case "fav":
		return s.favourites(ctx, rest)

	case "theme":
		if rest != "" {
			if err := changeTheme(rest); err != nil {
				return err
			}
		}
		fmt.Fprintf(s.out, "Theme: %s\n", app.Theme())

	default:
		return fmt.Errorf("unknown command %q, type 'help'", name)
	}
	return nil
}

func (s *session) show(ctx context.Context, heading string, l listing) error {
	s.current = l
	s.heading = heading
	return printListing(ctx, s.out, heading, l, "")
}

func (s *session) showNavigate(ctx context.Context) error {
	fmt.Fprint(s.out, formatter().FormatFilter(app.NavType(), app.Filter()))
	return s.show(ctx, "Titles", app.Navigate)
}

func (s *session) retry(ctx context.Context) {
	switch s.current {
	case listing(app.Search):
		app.Search.Retry(ctx)
	case listing(app.Navigate):
		app.Navigate.Retry(ctx)
	}
}

func (s *session) favourites(ctx context.Context, args string) error {
	action, id, _ := strings.Cut(args, " ")
	id = strings.TrimSpace(id)

	switch action {
	case "add", "rm":
		if !omdb.ValidID(id) {
			return fmt.Errorf("usage: fav %s <imdb-id>", action)
		}
		var (
			changed bool
			err     error
		)
		if action == "add" {
			changed, err = app.AddFavourite(id)
		} else {
			changed, err = app.RemoveFavourite(id)
		}
		if err != nil {
			return err
		}
		if !changed {
			fmt.Fprintln(s.out, "Favourites unchanged")
			return nil
		}
		fmt.Fprintf(s.out, "Favourites: %d\n", app.Favourites.Len())
	case "list", "":
		if !app.Authorized() {
			return browse.ErrUnauthorized
		}
		ids := app.Favourites.List()
		if len(ids) == 0 {
			fmt.Fprintln(s.out, "No favourites yet")
			return nil
		}
		app.EnsureAllDetails(ctx, ids)
		for _, id := range ids {
			title := id
			if m, ok := app.Details(id); ok {
				title = fmt.Sprintf("%s (%s) %s", m.Title, m.Year, id)
			}
			fmt.Fprintf(s.out, "★ %s\n", title)
		}
	default:
		return fmt.Errorf("usage: fav add|rm <imdb-id> or fav list")
	}
	return nil
}
