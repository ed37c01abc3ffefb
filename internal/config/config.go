// Package config loads server settings from the environment. A local .env
// file is honored in development; real deployments set variables directly.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything tunable about the server process.
type Config struct {
	Addr           string        `env:"ADDR" envDefault:":8787"`
	RoomTTL        time.Duration `env:"ROOM_TTL" envDefault:"8h"`
	StaticDir      string        `env:"STATIC_DIR" envDefault:"./web"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
