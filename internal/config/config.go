package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port           int
	ZulipServerURL string
	ZulipBotEmail  string
	ZulipBotAPIKey string
	ZulipStream    string
}

// Load reads configuration from an optional YAML config file and from
// environment variables. Environment variables take precedence over the
// file. Callers apply any flag overrides and then run Validate.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 3000)
	v.SetDefault("zulip_stream", "buildkite")

	v.BindEnv("port", "PORT")
	v.BindEnv("zulip_server_url", "ZULIP_SERVER_URL")
	v.BindEnv("zulip_bot_email", "ZULIP_BOT_EMAIL")
	v.BindEnv("zulip_bot_api_key", "ZULIP_BOT_API_KEY")
	v.BindEnv("zulip_stream", "ZULIP_STREAM")

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{
		Port:           v.GetInt("port"),
		ZulipServerURL: v.GetString("zulip_server_url"),
		ZulipBotEmail:  v.GetString("zulip_bot_email"),
		ZulipBotAPIKey: v.GetString("zulip_bot_api_key"),
		ZulipStream:    v.GetString("zulip_stream"),
	}, nil
}

// Validate checks that the settings required to reach Zulip are present.
func (c *Config) Validate() error {
	if c.ZulipServerURL == "" {
		return fmt.Errorf("ZULIP_SERVER_URL is required")
	}
	if c.ZulipBotEmail == "" {
		return fmt.Errorf("ZULIP_BOT_EMAIL is required")
	}
	if c.ZulipBotAPIKey == "" {
		return fmt.Errorf("ZULIP_BOT_API_KEY is required")
	}
	if c.ZulipStream == "" {
		return fmt.Errorf("ZULIP_STREAM is required")
	}
	return nil
}
