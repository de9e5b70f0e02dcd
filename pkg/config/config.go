// Package config loads service configuration from an optional TOML file,
// with environment variables taking precedence. A .env file in the working
// directory is honored for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// CacheBackendSQLite stores responses in a local SQLite file.
	CacheBackendSQLite = "sqlite"
	// CacheBackendRedis shares responses through a Redis instance.
	CacheBackendRedis = "redis"
	// CacheBackendNone disables response caching.
	CacheBackendNone = "none"
)

type Config struct {
	PokeAPI struct {
		BaseURL        string `toml:"base_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"pokeapi"`
	Cache struct {
		Backend  string `toml:"backend"`
		Path     string `toml:"path"`
		Endpoint string `toml:"endpoint"`
	} `toml:"cache"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Read loads configuration from the file named by POKEDEX_CONFIG (default
// "pokedex.toml" if present), then applies environment overrides. A missing
// config file is not an error; defaults cover every field.
func Read() (*Config, error) {
	// Ignore a missing .env; it only exists in development setups.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Cache.Backend = CacheBackendSQLite
	cfg.Cache.Path = "pokedex_cache.db"
	cfg.Log.Level = "info"

	path := os.Getenv("POKEDEX_CONFIG")
	explicit := path != ""
	if path == "" {
		path = "pokedex.toml"
	}

	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not read config file %q: %w", path, err)
		}
	}

	applyEnv(cfg)

	switch cfg.Cache.Backend {
	case CacheBackendSQLite, CacheBackendRedis, CacheBackendNone:
	default:
		return nil, fmt.Errorf("unrecognized cache backend %q", cfg.Cache.Backend)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("POKEDEX_API_BASE_URL"); v != "" {
		cfg.PokeAPI.BaseURL = v
	}
	if v := os.Getenv("POKEDEX_API_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			cfg.PokeAPI.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv("POKEDEX_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = v
	}
	if v := os.Getenv("POKEDEX_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("POKEDEX_CACHE_ENDPOINT"); v != "" {
		cfg.Cache.Endpoint = v
	}
	if v := os.Getenv("POKEDEX_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
