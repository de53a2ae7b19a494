package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/etnz/capgains/date"
	"github.com/joho/godotenv"
)

// Config holds the defaults read from the environment.
type Config struct {
	Ledger    string `env:"CGS_LEDGER"    envDefault:"Account.csv"`
	Year      int    `env:"CGS_YEAR"`
	Period    string `env:"CGS_PERIOD"    envDefault:"all"`
	OrderKey  string `env:"CGS_ORDER_KEY" envDefault:"truncate"`
	LogLevel  string `env:"LOG_LEVEL"     envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT"    envDefault:"console"`
}

// LoadConfig reads the configuration from the environment, after loading the
// .env file of the current directory when there is one.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Year == 0 {
		cfg.Year = date.Today().Year() - 1
	}
	return cfg, nil
}
