// Package fragcache caches rendered fragments together with the cache
// metadata their subtrees contributed.
//
// Entries are msgpack-encoded blobs, so the same layout works against
// byte-oriented remote stores; the built-in store is an in-memory map
// with a per-tag index. A stored entry goes stale at the earliest expiry
// its subtree aggregated, bounded by the cache-wide TTL, and can be
// dropped ahead of time by invalidating any of its tags.
package fragcache

import (
	"fmt"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Entry is one cached fragment plus the metadata its subtree contributed.
type Entry struct {
	Fragment string    `msgpack:"f"`
	Tags     []string  `msgpack:"t"`
	Expire   time.Time `msgpack:"e"`
	StoredAt time.Time `msgpack:"s"`
}

// Cache is a tag-aware TTL cache for rendered fragments. Safe for
// concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[string][]byte
	info       map[string]entryInfo
	byTag      map[string]map[string]struct{}
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	metrics    *cacheMetrics
}

// entryInfo is the decoded bookkeeping kept beside the encoded blob, so
// eviction and tag invalidation never have to unmarshal entries.
type entryInfo struct {
	storedAt time.Time
	tags     []string
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL bounds entry lifetime even when a subtree contributed no
// expiry of its own. Zero means no bound.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) { c.ttl = d }
}

// WithMaxEntries caps the number of live entries; the oldest entry is
// evicted when the cap would be exceeded. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(c *Cache) { c.maxEntries = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New builds a cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string][]byte),
		info:    make(map[string]entryInfo),
		byTag:   make(map[string]map[string]struct{}),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the entry stored under key when present and still fresh.
// Stale entries are dropped on access and count as misses.
func (c *Cache) Get(key string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.entries[key]
	if !ok {
		c.metrics.miss()
		return nil, false
	}
	var e Entry
	if err := msgpack.Unmarshal(raw, &e); err != nil {
		c.removeLocked(key)
		c.metrics.miss()
		c.metrics.evicted(1, len(c.entries))
		return nil, false
	}
	if c.staleLocked(&e) {
		c.removeLocked(key)
		c.metrics.miss()
		c.metrics.evicted(1, len(c.entries))
		return nil, false
	}
	c.metrics.hit()
	return &e, true
}

func (c *Cache) staleLocked(e *Entry) bool {
	now := c.now()
	if !e.Expire.IsZero() && !e.Expire.After(now) {
		return true
	}
	if c.ttl > 0 && e.StoredAt.Add(c.ttl).Before(now) {
		return true
	}
	return false
}

// Set stores entry under key and indexes its tags. A zero StoredAt is
// stamped with the cache clock. Storing over an existing key replaces
// the entry and reindexes it.
func (c *Cache) Set(key string, e *Entry) error {
	if e.StoredAt.IsZero() {
		stamped := *e
		stamped.StoredAt = c.now()
		e = &stamped
	}
	raw, err := msgpack.Marshal(e)
	if err != nil {
		return fmt.Errorf("fragcache: encode entry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.removeLocked(key)
	}
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = raw
	c.info[key] = entryInfo{storedAt: e.StoredAt, tags: append([]string(nil), e.Tags...)}
	for _, tag := range e.Tags {
		keys := c.byTag[tag]
		if keys == nil {
			keys = make(map[string]struct{})
			c.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
	c.metrics.set(len(c.entries))
	return nil
}

// InvalidateTags drops every entry indexed under any of tags and returns
// the number of entries removed. Catalog mutations call this with the
// tags of the nodes they touched.
func (c *Cache) InvalidateTags(tags ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, tag := range tags {
		for key := range c.byTag[tag] {
			c.removeLocked(key)
			removed++
		}
	}
	if removed > 0 {
		c.metrics.evicted(removed, len(c.entries))
	}
	return removed
}

// Purge drops everything.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string][]byte)
	c.info = make(map[string]entryInfo)
	c.byTag = make(map[string]map[string]struct{})
	if n > 0 {
		c.metrics.evicted(n, 0)
	}
}

// Len returns the number of stored entries. Stale entries count until
// their next access drops them.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) removeLocked(key string) {
	inf, ok := c.info[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	delete(c.info, key)
	for _, tag := range inf.tags {
		if keys := c.byTag[tag]; keys != nil {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.byTag, tag)
			}
		}
	}
}

func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, inf := range c.info {
		if oldestKey == "" || inf.storedAt.Before(oldest) {
			oldestKey = key
			oldest = inf.storedAt
		}
	}
	if oldestKey != "" {
		c.removeLocked(oldestKey)
		c.metrics.evicted(1, len(c.entries))
	}
}
