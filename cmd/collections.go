package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscout/browse"
	"github.com/s0up4200/reelscout/fetch"
	"github.com/s0up4200/reelscout/render"
)

// collectionsCmd represents the collections command
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Show the home collections",
	RunE:  runCollections,
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections(cmd *cobra.Command, args []string) error {
	app.LoadHome(context.Background())
	printCollections(cmd)
	return nil
}

func printCollections(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	info := app.CollectionsInfo()

	for _, c := range browse.HomeCollections {
		items := app.CollectionItems(c)

		view := render.ListView{
			Heading:     c.Title,
			Items:       items,
			Info:        fetch.Info{Status: fetch.StatusReceived},
			IsFavourite: favouriteMarker(),
		}
		// the store keeps one error for all collections; show it where
		// nothing arrived
		if len(items) == 0 && info.Status == fetch.StatusRejected {
			view.Info = info
		}
		fmt.Fprint(w, formatter().FormatList(view))
	}
}
