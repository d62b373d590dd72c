package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. REELSCOUT_OMDB_API_KEY
const EnvPrefix = "REELSCOUT"

// Load loads the configuration from file and environment. A missing file is
// not an error: the API keys may come from the environment alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".reelscout"))
		}
		v.AddConfigPath("/etc/reelscout/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path must exist
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.State.Path = expandHome(cfg.State.Path)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key gets a default
// so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("kinopoisk.url", "https://api.kinopoisk.dev")
	v.SetDefault("kinopoisk.api_key", "")
	v.SetDefault("kinopoisk.page_size", 10)

	v.SetDefault("omdb.url", "https://www.omdbapi.com")
	v.SetDefault("omdb.api_key", "")

	v.SetDefault("http.timeout", "30s")

	v.SetDefault("state.path", "~/.reelscout/state.db")

	v.SetDefault("browse.concurrency", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// validate checks if the configuration is valid. Messages name the key,
// never its value.
func validate(cfg *Config) error {
	if cfg.Kinopoisk.URL == "" {
		return fmt.Errorf("kinopoisk.url is required")
	}
	if cfg.Kinopoisk.APIKey == "" || cfg.Kinopoisk.APIKey == "your-api-key-here" {
		return fmt.Errorf("kinopoisk.api_key must be set to a valid API key")
	}
	if cfg.Kinopoisk.PageSize <= 0 || cfg.Kinopoisk.PageSize > 250 {
		return fmt.Errorf("kinopoisk.page_size must be between 1 and 250")
	}

	if cfg.OMDb.URL == "" {
		return fmt.Errorf("omdb.url is required")
	}
	if cfg.OMDb.APIKey == "" || cfg.OMDb.APIKey == "your-api-key-here" {
		return fmt.Errorf("omdb.api_key must be set to a valid API key")
	}

	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}

	if cfg.Browse.Concurrency <= 0 {
		return fmt.Errorf("browse.concurrency must be positive")
	}

	for name, expression := range cfg.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filters.%s is empty", name)
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
