package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"moving-quote-service/internal/platform/obs"
	"moving-quote-service/internal/ports"
)

// PGRouteCache is a Postgres-backed cache for point-to-point route results,
// keyed by normalized coordinate strings produced by the routing adapter.
type PGRouteCache struct {
	DB *sql.DB
}

func NewPGRouteCache(db *sql.DB) *PGRouteCache {
	return &PGRouteCache{DB: db}
}

// Get fetches the cached route for one origin/destination pair.
// The second return value reports whether the pair was present.
func (s *PGRouteCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return ports.RouteResult{}, false, errors.New("get route cache: origin and destination must be non-empty")
	}

	q := `
	SELECT distance_meters, duration_seconds
    FROM route_cache
    WHERE origin = $1
        AND destination = $2;
	`

	var meters, seconds int
	row := s.DB.QueryRowContext(ctx, q, origin, destination)
	if err := row.Scan(&meters, &seconds); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.RouteResult{}, false, nil
		}
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: scan row: %w", err)
	}

	return ports.RouteResult{DistanceMeters: meters, DurationSeconds: seconds}, true, nil
}

// Put stores one route result, replacing any existing entry for the pair.
func (s *PGRouteCache) Put(ctx context.Context, origin, destination string, r ports.RouteResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert route cache: origin and destination must be non-empty")
	}

	q := `
	INSERT INTO route_cache (origin, destination, distance_meters, duration_seconds)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, r.DistanceMeters, r.DurationSeconds); err != nil {
		return fmt.Errorf("insert route cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}
