package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscout/kinopoisk"
)

var (
	contentType string
	genres      []string
	country     string
	years       string
	rating      string
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse titles by type and filter",
	Long: `Browse movies, series or cartoons, optionally filtered by genre, country,
release years and IMDb rating. Genres and countries accept the English label
or the catalog value and are matched fuzzily; see 'reelscout genres'.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&contentType, "type", "t", kinopoisk.TypeMovie, "content type (movie, tv-series, cartoon)")
	browseCmd.Flags().StringSliceVarP(&genres, "genre", "g", nil, "genre, may be repeated")
	browseCmd.Flags().StringVarP(&country, "country", "c", "", "country")
	browseCmd.Flags().StringVarP(&years, "years", "y", "", "release years, from-to")
	browseCmd.Flags().StringVarP(&rating, "rating", "r", "", "IMDb rating, from-to")
	browseCmd.Flags().IntVarP(&pages, "pages", "n", 1, "number of pages to load")
	browseCmd.Flags().StringVarP(&where, "where", "w", "", "refine expression or @name of a configured filter")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, err := parseFilter(contentType, genres, country, years, rating)
	if err != nil {
		return err
	}

	logger.Info().Str("type", contentType).Str("filter", f.Key()).Msg("Browsing titles")

	app.Browse(ctx, contentType, f)
	loadPages(ctx, app.Navigate, pages)

	w := cmd.OutOrStdout()
	fmt.Fprint(w, formatter().FormatFilter(contentType, f))
	return printListing(ctx, w, "Titles", app.Navigate, where)
}
