package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/telegraph/telegraph"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:       telegraph.DefaultBaseURL,
			UploadURL: telegraph.DefaultUploadURL,
		},
		Output:  OutputConfig{Format: FormatJSON},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		errContains string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "yaml output", modify: func(c *Config) { c.Output.Format = FormatYAML }},
		{name: "missing api url", modify: func(c *Config) { c.API.URL = "" }, errContains: "api.url is required"},
		{name: "relative api url", modify: func(c *Config) { c.API.URL = "api.telegra.ph" }, errContains: "invalid api.url"},
		{name: "ftp upload url", modify: func(c *Config) { c.API.UploadURL = "ftp://telegra.ph/upload" }, errContains: "invalid api.upload_url"},
		{name: "negative timeout", modify: func(c *Config) { c.API.Timeout = -time.Second }, errContains: "api.timeout"},
		{name: "bad level", modify: func(c *Config) { c.Logging.Level = "trace" }, errContains: "invalid logging level"},
		{name: "bad log format", modify: func(c *Config) { c.Logging.Format = "xml" }, errContains: "invalid logging format"},
		{name: "bad output", modify: func(c *Config) { c.Output.Format = "toml" }, errContains: "invalid output.format"},
		{name: "empty filter", modify: func(c *Config) { c.Filters = FilterConfig{"popular": " "} }, errContains: `filter "popular"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  timeout: 5s
account:
  access_token: file-token
  short_name: Sandbox
filters:
  popular: Views > 100
output:
  format: yaml
logging:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, telegraph.DefaultBaseURL, cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "file-token", cfg.Account.AccessToken)
	assert.Equal(t, "Sandbox", cfg.Account.ShortName)
	assert.Equal(t, "Views > 100", cfg.Filters["popular"])
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  access_token: file-token\n"), 0o600))
	t.Setenv("TELEGRAPH_ACCOUNT_ACCESS_TOKEN", "env-token")
	t.Setenv("TELEGRAPH_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Account.AccessToken)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TELEGRAPH_TEST_DOTENV=from-file\nTELEGRAPH_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("TELEGRAPH_TEST_PRESET", "from-env")
	t.Cleanup(func() { os.Unsetenv("TELEGRAPH_TEST_DOTENV") })

	require.NoError(t, LoadEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("TELEGRAPH_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("TELEGRAPH_TEST_PRESET"))
}
