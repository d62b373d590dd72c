package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/reelscout/browse"
	"github.com/s0up4200/reelscout/config"
	"github.com/s0up4200/reelscout/filter"
	"github.com/s0up4200/reelscout/kinopoisk"
	"github.com/s0up4200/reelscout/omdb"
	"github.com/s0up4200/reelscout/prefs"
	"github.com/s0up4200/reelscout/render"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	app       *browse.App
	prefStore *prefs.Store
	compiler  = filter.NewCompiler(32)
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reelscout",
	Short: "Browse movies, series and cartoons from the terminal",
	Long: `reelscout searches and browses movies, series and cartoons from Kinopoisk,
shows title details from OMDb and keeps a session favourites list.

Both API keys are read from the config file or from the environment
(REELSCOUT_KINOPOISK_API_KEY, REELSCOUT_OMDB_API_KEY).`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp loads the configuration and builds the browsing session
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	catalog, err := kinopoisk.NewClient(cfg.Kinopoisk.URL, cfg.Kinopoisk.APIKey, logger,
		kinopoisk.WithTimeout(cfg.HTTP.Timeout),
		kinopoisk.WithPageSize(cfg.Kinopoisk.PageSize),
	)
	if err != nil {
		return fmt.Errorf("failed to create Kinopoisk client: %w", err)
	}

	details, err := omdb.NewClient(cfg.OMDb.URL, cfg.OMDb.APIKey, cfg.HTTP.Timeout, logger)
	if err != nil {
		return fmt.Errorf("failed to create OMDb client: %w", err)
	}

	prefStore, err = prefs.Open(cfg.State.Path)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open preference file, keeping preferences in memory")
		prefStore, _ = prefs.Open("")
	}

	app = browse.New(catalog, details,
		browse.WithLogger(logger),
		browse.WithConcurrency(cfg.Browse.Concurrency),
		browse.WithTheme(savedTheme()),
	)

	return nil
}

func closeApp(cmd *cobra.Command, args []string) error {
	if prefStore != nil {
		return prefStore.Close()
	}
	return nil
}

// skipInit is used by commands that need neither config nor network
func skipInit(cmd *cobra.Command, args []string) error {
	return nil
}

func savedTheme() browse.Theme {
	name, err := prefStore.Theme(string(browse.ThemeDark))
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read saved theme")
	}
	theme, ok := browse.ParseTheme(name)
	if !ok {
		return browse.ThemeDark
	}
	return theme
}

func formatter() *render.ConsoleFormatter {
	return render.NewConsoleFormatter(string(app.Theme()))
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
