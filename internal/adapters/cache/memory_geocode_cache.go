package cache

import (
	"sync"
	"time"

	"moving-quote-service/internal/domain"
)

type memEntry struct {
	coords    domain.Coordinates
	expiresAt time.Time
}

// MemoryGeocodeCache is an in-process TTL cache for geocode results, keyed by
// normalized address text. It bounds provider request volume within one
// process; the clock is injected so expiry is testable deterministically.
//
// Safe for concurrent use. Concurrent writers racing to populate the same key
// store equivalent values, so last-writer-wins is fine.
type MemoryGeocodeCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memEntry
}

func NewMemoryGeocodeCache(ttl time.Duration, now func() time.Time) *MemoryGeocodeCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryGeocodeCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]memEntry),
	}
}

// Get returns the cached coordinates for address if present and unexpired.
func (c *MemoryGeocodeCache) Get(address string) (domain.Coordinates, bool) {
	c.mu.RLock()
	e, ok := c.entries[address]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return domain.Coordinates{}, false
	}
	return e.coords, true
}

// Put stores coordinates for address with a fresh TTL. Expired entries for
// other keys are dropped opportunistically to keep the map from growing
// without bound.
func (c *MemoryGeocodeCache) Put(address string, coords domain.Coordinates) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[address] = memEntry{coords: coords, expiresAt: now.Add(c.ttl)}
}
