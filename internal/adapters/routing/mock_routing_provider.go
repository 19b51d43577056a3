package routing

import (
	"context"
	"fmt"

	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
)

// MockRoutingProvider is an in-memory RoutingProvider for tests.
// Addresses map to fixed coordinates, coordinate pairs map to fixed routes,
// and either call can be forced to fail.
type MockRoutingProvider struct {
	Coords     map[string]domain.Coordinates
	Routes     map[[2]domain.Coordinates]ports.RouteResult
	GeocodeErr error
	RouteErr   error
}

func NewMockRoutingProvider() *MockRoutingProvider {
	return &MockRoutingProvider{
		Coords: make(map[string]domain.Coordinates),
		Routes: make(map[[2]domain.Coordinates]ports.RouteResult),
	}
}

// AddAddress registers coordinates for an address.
func (m *MockRoutingProvider) AddAddress(address string, coords domain.Coordinates) {
	m.Coords[address] = coords
}

// AddRoute registers a route between two previously added addresses,
// in both directions.
func (m *MockRoutingProvider) AddRoute(from, to string, meters, seconds int) {
	fc, ok := m.Coords[from]
	if !ok {
		panic(fmt.Sprintf("mock routing provider: unknown address %q", from))
	}
	tc, ok := m.Coords[to]
	if !ok {
		panic(fmt.Sprintf("mock routing provider: unknown address %q", to))
	}

	r := ports.RouteResult{DistanceMeters: meters, DurationSeconds: seconds}
	m.Routes[[2]domain.Coordinates{fc, tc}] = r
	m.Routes[[2]domain.Coordinates{tc, fc}] = r
}

func (m *MockRoutingProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	if m.GeocodeErr != nil {
		return domain.Coordinates{}, &domain.GeocodeError{Address: address, Err: m.GeocodeErr}
	}

	c, ok := m.Coords[address]
	if !ok {
		return domain.Coordinates{}, &domain.GeocodeError{
			Address: address,
			Err:     fmt.Errorf("unknown address"),
		}
	}
	return c, nil
}

func (m *MockRoutingProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, error) {
	if m.RouteErr != nil {
		return ports.RouteResult{}, &domain.RoutingError{Err: m.RouteErr}
	}

	r, ok := m.Routes[[2]domain.Coordinates{origin, destination}]
	if !ok {
		return ports.RouteResult{}, &domain.RoutingError{
			Err: fmt.Errorf("missing pair %v -> %v", origin, destination),
		}
	}
	return r, nil
}
