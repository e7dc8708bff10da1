// Package config loads client credentials and settings from the environment
// and an optional config file. The core client never reads configuration
// itself; it only receives the resulting values.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "pantryctl"
	configFileType = "yaml"

	// Config keys. Environment variables use the uppercased key names
	// (NOTION_TOKEN, NOTION_DATABASE_ID, ...) and take precedence over the
	// config file.
	cfgKeyToken      = "notion_token"
	cfgKeyDatabaseID = "notion_database_id"
	cfgKeyBaseURL    = "notion_base_url"
	cfgKeyPageSize   = "notion_page_size"
	cfgKeyLogLevel   = "log_level"
	cfgKeyLogPretty  = "log_pretty"

	defaultPageSize = 100
	defaultLogLevel = "info"
)

// Settings holds the resolved configuration for one client invocation.
type Settings struct {
	Token      string
	DatabaseID string
	// BaseURL overrides the public API endpoint; empty keeps the default.
	BaseURL   string
	PageSize  int
	LogLevel  string
	LogPretty bool
}

// Load resolves settings from pantryctl.yaml in dir (if present) and the
// environment. A missing config file is not an error; missing credentials
// are caught by Validate.
func Load(dir string) (Settings, error) {
	v := viper.New()
	v.SetDefault(cfgKeyPageSize, defaultPageSize)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogPretty, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
		// Missing pantryctl.yaml is fine; env vars carry the settings.
	}

	return Settings{
		Token:      v.GetString(cfgKeyToken),
		DatabaseID: v.GetString(cfgKeyDatabaseID),
		BaseURL:    v.GetString(cfgKeyBaseURL),
		PageSize:   v.GetInt(cfgKeyPageSize),
		LogLevel:   v.GetString(cfgKeyLogLevel),
		LogPretty:  v.GetBool(cfgKeyLogPretty),
	}, nil
}

// Validate checks that the settings can authenticate a client.
func (s Settings) Validate() error {
	if s.Token == "" {
		return fmt.Errorf("NOTION_TOKEN is required")
	}
	if s.DatabaseID == "" {
		return fmt.Errorf("NOTION_DATABASE_ID is required")
	}
	return nil
}
