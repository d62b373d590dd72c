package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/render"
)

var listCountries bool

// genresCmd represents the genres command
var genresCmd = &cobra.Command{
	Use:               "genres",
	Short:             "List the genres (or countries) accepted by browse",
	PersistentPreRunE: skipInit,
	RunE:              runGenres,
}

func init() {
	rootCmd.AddCommand(genresCmd)

	genresCmd.Flags().StringVarP(&contentType, "type", "t", kinopoisk.TypeMovie, "content type (movie, tv-series, cartoon)")
	genresCmd.Flags().BoolVar(&listCountries, "countries", false, "list countries instead")
}

func runGenres(cmd *cobra.Command, args []string) error {
	f := render.NewConsoleFormatter("dark")
	if listCountries {
		fmt.Fprint(cmd.OutOrStdout(), f.FormatOptions("Countries", filter.Countries()))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), f.FormatOptions("Genres for "+contentType, filter.Genres(contentType)))
	return nil
}
