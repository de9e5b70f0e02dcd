package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache persists raw responses in a local SQLite database so repeated
// invocations across processes skip the network entirely.
type SQLiteCache struct {
	db *sqlx.DB
}

const cacheSchema = /* sql */ `
	CREATE TABLE IF NOT EXISTS response_cache (
		url        TEXT PRIMARY KEY,
		body       BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	)
`

// NewSQLiteCache opens (or creates) the cache database at path. The special
// path ":memory:" yields a process-local cache.
func NewSQLiteCache(ctx context.Context, path string) (*SQLiteCache, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read from cache database: %w", err)
	}

	_, err = db.ExecContext(ctx, cacheSchema)
	if err != nil {
		return nil, fmt.Errorf("could not create cache table: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body []byte
	err := c.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT body
		FROM response_cache
		WHERE url = ?
	`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error while reading cached response: %w", err)
	}

	return body, true, nil
}

func (c *SQLiteCache) Set(ctx context.Context, key string, body []byte) error {
	_, err := c.db.ExecContext(ctx,
		/* sql */ `
		INSERT INTO response_cache (url, body, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT (url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
	`, key, body, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("error while caching response: %w", err)
	}

	return nil
}
