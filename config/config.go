// Package config loads CLI settings from a config file, the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/telegraph/telegraph"
)

// EnvPrefix prefixes every environment override, e.g. TELEGRAPH_ACCOUNT_ACCESS_TOKEN
const EnvPrefix = "TELEGRAPH"

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Load loads the configuration. An explicit configPath must exist; otherwise
// config.yaml is looked up in the standard locations and may be absent.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
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
			v.AddConfigPath(filepath.Join(home, ".telegraph"))
		}
		v.AddConfigPath("/etc/telegraph/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadEnv loads variables from the given .env files (default ".env") into the
// process environment without overriding variables that are already set.
// Missing files are ignored.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading %s: %w", p, err)
		}
	}
	return nil
}

// setDefaults sets default configuration values. Every key needs a default so
// AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", telegraph.DefaultBaseURL)
	v.SetDefault("api.upload_url", telegraph.DefaultUploadURL)
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.user_agent", telegraph.DefaultUserAgent)

	v.SetDefault("account.access_token", "")
	v.SetDefault("account.short_name", "")
	v.SetDefault("account.author_name", "")
	v.SetDefault("account.author_url", "")

	v.SetDefault("output.format", FormatJSON)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if err := validateURL("api.url", cfg.API.URL); err != nil {
		return err
	}
	if err := validateURL("api.upload_url", cfg.API.UploadURL); err != nil {
		return err
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative: %s", cfg.API.Timeout)
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

	if cfg.Output.Format != FormatJSON && cfg.Output.Format != FormatYAML {
		return fmt.Errorf("invalid output.format: %s (must be '%s' or '%s')", cfg.Output.Format, FormatJSON, FormatYAML)
	}

	for name, expression := range cfg.Filters {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter %q has an empty expression", name)
		}
	}

	return nil
}

func validateURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid %s: %s (must be an absolute http(s) URL)", key, raw)
	}
	return nil
}
