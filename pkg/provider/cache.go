package provider

import "context"

// Cache stores raw HTTP response bodies keyed by URL. Implementations must
// be safe for concurrent use; the client treats every cache failure on read
// as a miss and refetches.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

// NopCache disables caching. Useful for tests and one-shot invocations.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NopCache) Set(context.Context, string, []byte) error { return nil }
