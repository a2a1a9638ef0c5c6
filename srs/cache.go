package srs

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/internal/options"
)

// Cache memoizes Loader results per SRID.
//
// Concurrent misses for the same SRID share one load. Failed loads are not
// cached, so a transient database error is retried on the next Get.
//
// A Cache is safe for concurrent use.
type Cache struct {
	loader  Loader
	logger  *slog.Logger
	mu      sync.RWMutex
	entries map[int32]Entry
	group   singleflight.Group
}

// CacheOption configures a Cache.
type CacheOption = options.Option[*Cache]

// WithLogger sets the logger used for load and invalidation events.
func WithLogger(logger *slog.Logger) CacheOption {
	return options.NoError(func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithEntries preloads entries so they never reach the loader.
func WithEntries(entries ...Entry) CacheOption {
	return options.NoError(func(c *Cache) {
		for _, e := range entries {
			c.entries[e.SRID] = e
		}
	})
}

// NewCache creates an empty cache in front of loader.
//
// Returns errs.ErrNilLoader if loader is nil.
func NewCache(loader Loader, opts ...CacheOption) (*Cache, error) {
	if loader == nil {
		return nil, errs.ErrNilLoader
	}

	c := &Cache{
		loader:  loader,
		logger:  slog.Default(),
		entries: make(map[int32]Entry),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Get returns the entry for srid, loading it on a miss.
func (c *Cache) Get(ctx context.Context, srid int32) (Entry, error) {
	c.mu.RLock()
	e, ok := c.entries[srid]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	v, err, _ := c.group.Do(strconv.FormatInt(int64(srid), 10), func() (any, error) {
		// another caller may have stored it between the miss and Do
		c.mu.RLock()
		e, ok := c.entries[srid]
		c.mu.RUnlock()
		if ok {
			return e, nil
		}

		e, err := c.loader.LoadSRS(ctx, srid)
		if err != nil {
			return Entry{}, err
		}

		c.mu.Lock()
		c.entries[srid] = e
		c.mu.Unlock()
		c.logger.Debug("srs loaded", "srid", srid, "name", e.Name())

		return e, nil
	})
	if err != nil {
		return Entry{}, fmt.Errorf("get srs %d: %w", srid, err)
	}

	entry, _ := v.(Entry)

	return entry, nil
}

// Invalidate drops the cached entry for srid, if any.
func (c *Cache) Invalidate(srid int32) {
	c.mu.Lock()
	_, ok := c.entries[srid]
	delete(c.entries, srid)
	c.mu.Unlock()

	if ok {
		c.logger.Debug("srs invalidated", "srid", srid)
	}
}

// Reset drops every cached entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	n := len(c.entries)
	c.entries = make(map[int32]Entry)
	c.mu.Unlock()

	c.logger.Debug("srs cache reset", "dropped", n)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
