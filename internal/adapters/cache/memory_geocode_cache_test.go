package cache

import (
	"testing"
	"time"

	"moving-quote-service/internal/domain"
)

func TestMemoryGeocodeCacheHit(t *testing.T) {
	c := NewMemoryGeocodeCache(time.Hour, nil)
	coords := domain.Coordinates{Lon: -112.0, Lat: 33.4}

	c.Put("100 n 1st st", coords)

	got, ok := c.Get("100 n 1st st")
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != coords {
		t.Errorf("got %+v, want %+v", got, coords)
	}
}

func TestMemoryGeocodeCacheMiss(t *testing.T) {
	c := NewMemoryGeocodeCache(time.Hour, nil)
	if _, ok := c.Get("never stored"); ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestMemoryGeocodeCacheExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := NewMemoryGeocodeCache(time.Hour, clock)
	c.Put("addr", domain.Coordinates{Lon: 1, Lat: 2})

	now = now.Add(59 * time.Minute)
	if _, ok := c.Get("addr"); !ok {
		t.Error("entry expired before its TTL elapsed")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("addr"); ok {
		t.Error("entry survived past its TTL")
	}
}

func TestMemoryGeocodeCachePutEvictsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := NewMemoryGeocodeCache(time.Hour, clock)
	c.Put("old", domain.Coordinates{Lon: 1, Lat: 2})

	now = now.Add(2 * time.Hour)
	c.Put("fresh", domain.Coordinates{Lon: 3, Lat: 4})

	if _, ok := c.entries["old"]; ok {
		t.Error("expired entry not evicted on write")
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry missing after eviction pass")
	}
}
