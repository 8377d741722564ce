package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Account AccountConfig `mapstructure:"account"`
	Filters FilterConfig  `mapstructure:"filters"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Telegraph endpoint and HTTP settings
type APIConfig struct {
	URL       string        `mapstructure:"url"`
	UploadURL string        `mapstructure:"upload_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// AccountConfig holds the default account used by commands that need a token
type AccountConfig struct {
	AccessToken string `mapstructure:"access_token"`
	ShortName   string `mapstructure:"short_name"`
	AuthorName  string `mapstructure:"author_name"`
	AuthorURL   string `mapstructure:"author_url"`
}

// FilterConfig maps filter names to page filter expressions
type FilterConfig map[string]string

// OutputConfig controls how command results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
