package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Host: "media.local", Port: 8096},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: media.example.com
  https: true
  device_id: laptop-1
session:
  user_id: u1
  user_name: alice
  token: tok
filter:
  presets:
    unwatched:
      description: Movies not yet played
      expression: 'Type == "Movie" && !Played'
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "media.example.com", cfg.Server.Host)
	assert.Equal(t, 8096, cfg.Server.Port)
	assert.True(t, cfg.Server.HTTPS)
	assert.Equal(t, "laptop-1", cfg.Server.DeviceID)
	assert.Equal(t, 60*time.Second, cfg.Server.ParsedTimeout())
	assert.Equal(t, "tok", cfg.Session.Token)
	assert.Equal(t, "en-gb", cfg.Artwork.Locale)
	assert.Equal(t, `Type == "Movie" && !Played`, cfg.Filter.Presets["unwatched"].Expression)
	assert.Equal(t, 64, cfg.Filter.CacheSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  host: media.example.com\n")
	t.Setenv("ABJC_SERVER_PORT", "8920")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8920, cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:   "missing host",
			mutate: func(c *Config) { c.Server.Host = "" },
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port",
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "invalid timeout",
			mutate:  func(c *Config) { c.Server.Timeout = "soon" },
			wantErr: "server.timeout",
		},
		{
			name:    "user without token",
			mutate:  func(c *Config) { c.Session.UserID = "u1" },
			wantErr: "session.token",
		},
		{
			name: "blank preset expression",
			mutate: func(c *Config) {
				c.Filter.Presets = map[string]PresetFilter{"x": {Expression: "   "}}
			},
			wantErr: "filter.presets.x.expression",
		},
		{
			name:    "invalid artwork url",
			mutate:  func(c *Config) { c.Artwork.BaseURL = "not a url" },
			wantErr: "artwork.base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithoutServer(t *testing.T) {
	path := writeConfig(t, "artwork:\n  locale: de-de\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de-de", cfg.Artwork.Locale)

	err = cfg.RequireServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.host")

	cfg.Server.Host = "media.local"
	assert.NoError(t, cfg.RequireServer())
}

func TestSaveSession(t *testing.T) {
	path := writeConfig(t, "server:\n  host: media.example.com\nlogging:\n  level: warn\n")

	err := SaveSession(path, SessionConfig{UserID: "u1", UserName: "alice", ServerID: "srv", Token: "tok"}, "dev-9")
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "u1", cfg.Session.UserID)
	assert.Equal(t, "tok", cfg.Session.Token)
	assert.Equal(t, "dev-9", cfg.Server.DeviceID)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "media.example.com", cfg.Server.Host)
}
