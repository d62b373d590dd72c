package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	pages int
	where string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search titles by keyword",
	Long: `Search Kinopoisk by keyword. Titles without an IMDb id are left out.

Use --where to narrow the results with an expression evaluated against each
title's OMDb details, for example:
  reelscout search batman --where 'Rating >= 7 and Year < 2000'
  reelscout search batman --where @dramas`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&pages, "pages", "n", 1, "number of pages to load")
	searchCmd.Flags().StringVarP(&where, "where", "w", "", "refine expression or @name of a configured filter")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	text := strings.Join(args, " ")

	logger.Info().Str("query", text).Msg("Searching titles")

	app.RunSearch(ctx, text)
	loadPages(ctx, app.Search, pages)

	return printListing(ctx, cmd.OutOrStdout(), fmt.Sprintf("Results for %q", text), app.Search, where)
}
