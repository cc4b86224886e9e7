package driven

import (
	"context"
	"encoding/json"
)

// FetchFunc produces a value on a cache miss.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// ResponseCache maps a request identity to the response it produced.
// Entries never expire. A single instance is shared for the process lifetime.
type ResponseCache interface {
	// GetOrFetch returns the stored value for key, or calls fetch, stores
	// its result and persists the cache. A fetch error stores nothing.
	GetOrFetch(ctx context.Context, key string, fetch FetchFunc) (json.RawMessage, error)

	// Len returns the number of entries.
	Len() int

	// Keys returns all keys in sorted order.
	Keys() []string

	// Clear removes every entry and persists the empty cache.
	Clear() error

	// Path returns the backing file location.
	Path() string
}
