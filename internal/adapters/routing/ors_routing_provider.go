package routing

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"moving-quote-service/internal/adapters/cache"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
)

// ORSRoutingProvider implements RoutingProvider using OpenRouteService.
//
// It coordinates:
//   - Address normalization
//   - A layered geocode cache (in-process TTL, then persistent)
//   - Persistent route caching
//   - External API calls with bounded retry/backoff for transient failures
//
// The provider is safe for concurrent use. Semantic failures (no results,
// no route) are never retried here; they surface as GeocodeError/RoutingError
// and the decision to retry belongs to the caller.
type ORSRoutingProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	country      string
	memCache     *cache.MemoryGeocodeCache
	geocodeCache ports.GeocodeCache
	routeCache   ports.RouteCache
}

func NewORSRoutingProvider(
	apiKey string,
	memCache *cache.MemoryGeocodeCache,
	geocodeCache ports.GeocodeCache,
	routeCache ports.RouteCache,
) (*ORSRoutingProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	provider := &ORSRoutingProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		profile:      "driving-car",
		country:      "US",
		memCache:     memCache,
		geocodeCache: geocodeCache,
		routeCache:   routeCache,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSRoutingProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// coordKey renders coordinates as a stable cache key. Six decimal places is
// roughly 10cm of precision, well past geocoder accuracy.
func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lon, c.Lat)
}
