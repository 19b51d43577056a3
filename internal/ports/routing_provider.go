package ports

import (
	"context"

	"moving-quote-service/internal/domain"
)

// RouteResult carries driving distance and travel duration between two points.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// RoutingProvider is the boundary to the external geocoding/routing service.
// Failures surface as *domain.GeocodeError / *domain.RoutingError; they are
// retryable by the caller and never auto-retried at this level.
type RoutingProvider interface {
	// Resolve a free-text address to coordinates.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
	// Return driving distance and duration between two coordinate pairs.
	Route(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
