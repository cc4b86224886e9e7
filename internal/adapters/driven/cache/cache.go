// Package cache provides a persistent response cache backed by a single
// JSON file. The whole file is read when the cache is opened and rewritten
// whenever an entry is added. Entries never expire.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// Ensure FileCache implements the interface.
var _ driven.ResponseCache = (*FileCache)(nil)

// FileCache is a JSON-file implementation of driven.ResponseCache.
// Reads are lock-free through go-cache; misses and writes to disk are
// serialised so each key is fetched at most once.
type FileCache struct {
	mu    sync.Mutex
	items *gocache.Cache
	path  string
}

// Open loads the cache file at path, creating its directory if needed.
// If path is empty, defaults to ~/.lenscout/data/cache.json.
// A missing or unparsable file yields an empty cache.
func Open(path string) (*FileCache, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".lenscout", "data", domain.DefaultCacheFile)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	c := &FileCache{
		items: gocache.New(gocache.NoExpiration, 0),
		path:  path,
	}
	c.load()

	return c, nil
}

// load fills the in-memory map from disk. Failures leave the cache empty.
func (c *FileCache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("response cache unreadable, starting empty", "path", c.path, "error", err)
		}
		return
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Debug("response cache unparsable, starting empty", "path", c.path, "error", err)
		return
	}

	for key, value := range entries {
		c.items.Set(key, value, gocache.NoExpiration)
	}
	logger.Debug("response cache loaded", "path", c.path, "entries", len(entries))
}

func (c *FileCache) get(key string) (json.RawMessage, bool) {
	v, ok := c.items.Get(key)
	if !ok {
		return nil, false
	}
	raw, ok := v.(json.RawMessage)
	return raw, ok
}

// GetOrFetch returns the cached value for key or fetches and stores it.
func (c *FileCache) GetOrFetch(ctx context.Context, key string, fetch driven.FetchFunc) (json.RawMessage, error) {
	if v, ok := c.get(key); ok {
		logger.Debug("cache hit", "key", key)
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have filled the key while we waited.
	if v, ok := c.get(key); ok {
		logger.Debug("cache hit", "key", key)
		return v, nil
	}

	logger.Debug("cache miss", "key", key)
	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !json.Valid(value) {
		return nil, fmt.Errorf("caching %s: value is not valid JSON", key)
	}

	c.items.Set(key, value, gocache.NoExpiration)
	if err := c.save(); err != nil {
		// Memory must not hold entries the file lacks.
		c.items.Delete(key)
		return nil, fmt.Errorf("persisting response cache: %w", err)
	}

	return value, nil
}

// Len returns the number of cached entries.
func (c *FileCache) Len() int {
	return c.items.ItemCount()
}

// Keys returns all cached keys in sorted order.
func (c *FileCache) Keys() []string {
	items := c.items.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes every entry and rewrites the file.
func (c *FileCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items.Flush()
	return c.save()
}

// Close writes the current state to disk.
func (c *FileCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

// Path returns the cache file location.
func (c *FileCache) Path() string {
	return c.path
}

// save rewrites the whole cache file (caller must hold lock).
func (c *FileCache) save() error {
	items := c.items.Items()
	entries := make(map[string]json.RawMessage, len(items))
	for k, item := range items {
		if raw, ok := item.Object.(json.RawMessage); ok {
			entries[k] = raw
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, c.path)
}
