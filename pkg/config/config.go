package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// StorePath is the SQLite file backing the local key-value store.
	StorePath   string `env:"CART_STORE_PATH" envDefault:"cart.db"`
	StorageKey  string `env:"CART_STORAGE_KEY" envDefault:"cart"`
	CatalogPath string `env:"CATALOG_PATH"`
	Currency    string `env:"CART_CURRENCY" envDefault:"USD"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
