// Package config loads runtime settings from the environment. A .env
// file in the working directory is picked up when present.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the game reads from its environment. Seed
// zero means a time-derived seed; Chronicle and LogFile are off when
// empty.
type Config struct {
	Seed       int64         `env:"EMBERSTONE_SEED"`
	TextDelay  time.Duration `env:"EMBERSTONE_TEXT_DELAY" envDefault:"30ms"`
	ContentDir string        `env:"EMBERSTONE_CONTENT_DIR" envDefault:"content"`
	Chronicle  string        `env:"EMBERSTONE_CHRONICLE"`
	LogLevel   string        `env:"EMBERSTONE_LOG_LEVEL" envDefault:"info"`
	LogFormat  string        `env:"EMBERSTONE_LOG_FORMAT" envDefault:"text"`
	LogFile    string        `env:"EMBERSTONE_LOG_FILE"`
}

// Load reads the .env file if one exists, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
