package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscout/omdb"
)

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details <imdb-id>...",
	Short: "Show title details from OMDb",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}

func runDetails(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	for _, id := range args {
		if !omdb.ValidID(id) {
			return fmt.Errorf("%q is not an IMDb id (expected tt followed by digits)", id)
		}
	}

	app.EnsureAllDetails(ctx, args)
	for _, id := range args {
		printDetails(cmd.OutOrStdout(), id)
	}
	return nil
}
