package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscout/browse"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the colour theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := changeTheme(args[0]); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", app.Theme())
	return nil
}

// changeTheme applies and saves a theme name or "toggle"
func changeTheme(name string) error {
	theme := app.Theme().Toggle()
	if name != "toggle" {
		var ok bool
		if theme, ok = browse.ParseTheme(name); !ok {
			return fmt.Errorf("unknown theme %q (expected dark, light or toggle)", name)
		}
	}

	app.SetTheme(theme)
	if err := prefStore.SetTheme(string(theme)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	logger.Debug().Str("theme", string(theme)).Msg("Theme changed")
	return nil
}
