package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ServerConfig is read from the environment, optionally seeded by a .env file.
type ServerConfig struct {
	Host         string `envconfig:"API_HOST" default:"0.0.0.0"`
	Port         string `envconfig:"API_PORT" default:"5001"`
	DBPath       string `envconfig:"DB_PATH" default:"./data/translation_ratings.db"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"text"`
	FrontendURLs string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	StatsWindow  int    `envconfig:"STATS_WINDOW_DAYS" default:"7"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads .env files (missing ones are ignored) and then the environment.
func Load(envFiles ...string) (*ServerConfig, error) {
	_ = godotenv.Load(envFiles...)

	var cfg ServerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.StatsWindow <= 0 {
		return nil, fmt.Errorf("STATS_WINDOW_DAYS must be positive, got %d", cfg.StatsWindow)
	}
	if len(cfg.AllowedOrigins()) == 0 {
		return nil, fmt.Errorf("FRONTEND_URL must list at least one origin, got %q", cfg.FrontendURLs)
	}
	return &cfg, nil
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.FrontendURLs, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *ServerConfig) JSONLogs() bool {
	return strings.EqualFold(c.LogFormat, "json")
}
