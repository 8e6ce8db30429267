// Package querycache is the read-path cache between the usecase layer and
// the platform API. Reads are keyed strings; a fresh entry is served
// directly, a stale entry is served immediately while one background
// revalidation runs, and concurrent fetches of the same key collapse into a
// single upstream call. Results apply in issue order, so a slow early fetch
// can never overwrite a newer one.
package querycache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"dashboard/config"
)

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
	// issue is the global sequence number of the fetch that produced the
	// value. A result with a lower issue than the stored one is discarded.
	issue uint64
}

// Cache holds the keyed read results. One instance is shared by every
// usecase; keys are namespaced by resource prefix ("users/", "trips/", ...).
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	ttl        time.Duration
	maxEntries int
	nextIssue  uint64

	group  singleflight.Group
	logger *slog.Logger
}

// New builds the cache from the configured TTL and capacity.
func New(cfg *config.Config, logger *slog.Logger) *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		ttl:        cfg.Cache.TTL,
		maxEntries: cfg.Cache.MaxEntries,
		logger:     logger,
	}
}

// Fetch returns the cached value for key, fetching through fn on a miss.
// A stale hit is returned immediately and revalidated in the background.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error)) (T, error) {
	untyped := func(ctx context.Context) (any, error) { return fn(ctx) }

	value, err := c.fetch(ctx, key, untyped)
	if err != nil {
		var zero T

		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		// Two callers shared a key with different types; treat the cached
		// value as a miss and fetch fresh.
		value, err = c.refetch(ctx, key, untyped)
		if err != nil {
			var zero T

			return zero, err
		}
		typed = value.(T)
	}

	return typed, nil
}

func (c *Cache) fetch(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !e.stale && time.Since(e.fetchedAt) < c.ttl {
		value := e.value
		c.mu.Unlock()

		return value, nil
	}
	if ok {
		// Serve stale, revalidate behind the caller's back.
		value := e.value
		c.mu.Unlock()
		c.revalidate(ctx, key, fn)

		return value, nil
	}
	c.mu.Unlock()

	return c.refetch(ctx, key, fn)
}

// refetch performs a deduplicated synchronous fetch and stores the result.
func (c *Cache) refetch(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	issue := c.issueNumber()

	value, err, _ := c.group.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return nil, err
	}

	c.apply(key, issue, value)

	return value, nil
}

// revalidate refreshes a stale key without blocking the caller. Failures
// are logged and the stale value stays; the next read tries again.
func (c *Cache) revalidate(ctx context.Context, key string, fn func(context.Context) (any, error)) {
	issue := c.issueNumber()
	detached := context.WithoutCancel(ctx)

	go func() {
		value, err, _ := c.group.Do(key, func() (any, error) {
			return fn(detached)
		})
		if err != nil {
			c.logger.Debug("background revalidation failed",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return
		}
		c.apply(key, issue, value)
	}()
}

func (c *Cache) issueNumber() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextIssue++

	return c.nextIssue
}

// apply stores a fetch result unless a later-issued fetch already landed.
func (c *Cache) apply(key string, issue uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.issue > issue {
		return
	}
	c.entries[key] = &entry{value: value, fetchedAt: time.Now(), issue: issue}
	c.evictLocked()
}

// evictLocked drops the oldest entries once the cap is exceeded.
func (c *Cache) evictLocked() {
	for len(c.entries) > c.maxEntries {
		oldestKey := ""
		var oldest time.Time
		for key, e := range c.entries {
			if oldestKey == "" || e.fetchedAt.Before(oldest) {
				oldestKey = key
				oldest = e.fetchedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}

// Invalidate marks every key under the given prefixes stale. The data stays
// servable; the next read returns it and triggers a refresh.
func (c *Cache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				e.stale = true

				break
			}
		}
	}
}

// Drop removes every key under the given prefixes. Unlike Invalidate the
// data is gone: the next read blocks on a fresh fetch.
func (c *Cache) Drop(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)

				break
			}
		}
	}
}

// Flush empties the cache entirely, used on logout so no data outlives the
// session that fetched it.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
