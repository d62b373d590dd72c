package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Kinopoisk KinopoiskConfig `mapstructure:"kinopoisk"`
	OMDb      OMDbConfig      `mapstructure:"omdb"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	State     StateConfig     `mapstructure:"state"`
	Browse    BrowseConfig    `mapstructure:"browse"`
	Filters   FilterConfig    `mapstructure:"filters"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// KinopoiskConfig holds Kinopoisk API connection details
type KinopoiskConfig struct {
	URL      string `mapstructure:"url"`
	APIKey   string `mapstructure:"api_key"`
	PageSize int    `mapstructure:"page_size"`
}

// OMDbConfig holds OMDb API connection details
type OMDbConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// HTTPConfig contains settings shared by both API clients
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// StateConfig locates the preference file; an empty path keeps
// preferences in memory
type StateConfig struct {
	Path string `mapstructure:"path"`
}

// BrowseConfig tunes the browsing session
type BrowseConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// FilterConfig maps names to refine expressions usable as --where @name
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
