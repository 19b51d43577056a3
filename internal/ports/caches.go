package ports

import (
	"context"

	"moving-quote-service/internal/domain"
)

// GeocodeCache is the persistent layer under the in-process TTL cache.
// Keys are expected to be normalized by the caller.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// RouteCache stores point-to-point route results keyed by normalized
// coordinate strings.
type RouteCache interface {
	Get(ctx context.Context, origin, destination string) (RouteResult, bool, error)
	Put(ctx context.Context, origin, destination string, r RouteResult) error
}
