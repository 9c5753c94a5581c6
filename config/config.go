package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config carries all process-wide settings, populated from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"portfolio.db"`

	// AdminAPIKey is the single static credential gating all mutations.
	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// AllowedOrigins is a comma-separated origin allow-list; a literal "*"
	// enables all origins.
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173"`

	// AssetRoot is the directory under which all uploaded files live.
	AssetRoot string `env:"ASSET_ROOT" envDefault:"./assets"`

	ReadTimeoutSeconds  int `env:"READ_TIMEOUT_SECONDS" envDefault:"180"`
	WriteTimeoutSeconds int `env:"WRITE_TIMEOUT_SECONDS" envDefault:"180"`
	IdleTimeoutSeconds  int `env:"IDLE_TIMEOUT_SECONDS" envDefault:"180"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AllowedOriginList splits the configured origins into exact entries.
func (c Config) AllowedOriginList() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "*" {
		return []string{"*"}
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
