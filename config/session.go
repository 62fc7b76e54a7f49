package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SaveSession writes an authenticated session into the config file at path,
// keeping every other setting.
func SaveSession(path string, session SessionConfig, deviceID string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}

	v.Set("session.user_id", session.UserID)
	v.Set("session.user_name", session.UserName)
	v.Set("session.server_id", session.ServerID)
	v.Set("session.token", session.Token)
	if deviceID != "" {
		v.Set("server.device_id", deviceID)
	}

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}
