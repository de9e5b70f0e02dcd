package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mlvn23/pokedex/pkg/config"
	"github.com/mlvn23/pokedex/pkg/provider"
	"github.com/mlvn23/pokedex/pkg/report"
)

// app wires config, logging, cache, provider, and assembler for a single
// invocation.
type app struct {
	logger    *slog.Logger
	assembler *report.Assembler

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("invocation", uuid.NewString())

	a := &app{logger: logger}

	cache, err := a.buildCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	prov, err := provider.NewPokeAPI(&provider.PokeAPIConfig{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: time.Duration(cfg.PokeAPI.TimeoutSeconds) * time.Second,
		Cache:       cache,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not build provider: %w", err)
	}

	assembler, err := report.New(&report.Config{Provider: prov})
	if err != nil {
		return nil, fmt.Errorf("could not build assembler: %w", err)
	}
	a.assembler = assembler

	return a, nil
}

func (a *app) buildCache(ctx context.Context, cfg *config.Config) (provider.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendSQLite:
		cache, err := provider.NewSQLiteCache(ctx, cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite cache: %w", err)
		}
		a.closers = append(a.closers, cache.Close)
		return cache, nil
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Cache.Endpoint})
		a.closers = append(a.closers, client.Close)
		cache, err := provider.NewRedisCache(&provider.RedisCacheConfig{Client: client})
		if err != nil {
			return nil, fmt.Errorf("could not build redis cache: %w", err)
		}
		return cache, nil
	default:
		return provider.NopCache{}, nil
	}
}

func (a *app) close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

// run handles the shared lifecycle of every subcommand: wire the app, call
// the operation, print the report as JSON.
func run[T any](ctx context.Context, op func(context.Context, *app) (T, error)) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	result, err := op(ctx, a)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
