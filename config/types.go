package config

// Config represents the complete configuration structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Artwork ArtworkConfig `mapstructure:"artwork"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Path is the file the configuration was read from
	Path string `mapstructure:"-"`
}

// ServerConfig identifies the Jellyfin/Emby server and this client
type ServerConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port" validate:"min=1,max=65535"`
	HTTPS         bool   `mapstructure:"https"`
	DeviceID      string `mapstructure:"device_id"`
	ClientName    string `mapstructure:"client_name"`
	DeviceName    string `mapstructure:"device_name"`
	ClientVersion string `mapstructure:"client_version"`
	Timeout       string `mapstructure:"timeout" validate:"omitempty,duration"`
}

// SessionConfig holds a previously authenticated user so commands can run
// without logging in again
type SessionConfig struct {
	UserID   string `mapstructure:"user_id"`
	UserName string `mapstructure:"user_name"`
	ServerID string `mapstructure:"server_id"`
	Token    string `mapstructure:"token" validate:"required_with=UserID"`
}

// ArtworkConfig configures the external artwork catalog
type ArtworkConfig struct {
	BaseURL    string `mapstructure:"base_url" validate:"omitempty,url"`
	Storefront string `mapstructure:"storefront"`
	Locale     string `mapstructure:"locale"`
	Token      string `mapstructure:"token"`
}

// FilterConfig contains filter definitions
type FilterConfig struct {
	Presets   map[string]PresetFilter `mapstructure:"presets" validate:"dive"`
	CacheSize int                     `mapstructure:"cache_size" validate:"min=0"`
}

// PresetFilter is a named, reusable filter expression
type PresetFilter struct {
	Description string `mapstructure:"description"`
	Expression  string `mapstructure:"expression" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
}

// MetricsConfig toggles Prometheus instrumentation
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
