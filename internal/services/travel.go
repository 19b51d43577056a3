package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/ports"
)

const (
	metersPerKm   = 1000.0
	metersPerMile = 1609.344
)

// TravelEstimate carries the loaded-truck travel figures for one journey.
type TravelEstimate struct {
	Hours float64
	Km    float64
	Miles float64
}

// DepotJourney carries the 3-leg journey figures a depot-relative vendor
// bills from: depot -> origin -> destination -> depot.
type DepotJourney struct {
	TotalHours    float64
	TotalMiles    float64
	DepotLegHours float64 // depot->origin + destination->depot only
}

// Travel wraps the routing provider with the quote-level helpers the vendor
// strategies share. The truck-speed factor converts car-based provider
// estimates into loaded-truck estimates and is applied uniformly, never
// per vendor.
type Travel struct {
	provider         ports.RoutingProvider
	truckSpeedFactor float64
}

func NewTravel(provider ports.RoutingProvider, truckSpeedFactor float64) *Travel {
	return &Travel{provider: provider, truckSpeedFactor: truckSpeedFactor}
}

// OneWay estimates the loaded-truck trip from one address to another.
func (t *Travel) OneWay(ctx context.Context, originAddr, destAddr string) (TravelEstimate, error) {
	r, err := t.route(ctx, originAddr, destAddr)
	if err != nil {
		return TravelEstimate{}, fmt.Errorf("one way %q -> %q: %w", originAddr, destAddr, err)
	}
	return t.estimate(r), nil
}

// Journey estimates the 3-leg depot journey. The legs are independent once
// the endpoints are geocoded, so they are fetched concurrently.
func (t *Travel) Journey(ctx context.Context, depotAddr, originAddr, destAddr string) (DepotJourney, error) {
	type leg struct{ from, to string }
	legs := []leg{
		{depotAddr, originAddr},
		{originAddr, destAddr},
		{destAddr, depotAddr},
	}

	results := make([]ports.RouteResult, len(legs))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range legs {
		i, l := i, l
		g.Go(func() error {
			r, err := t.route(gctx, l.from, l.to)
			if err != nil {
				return fmt.Errorf("journey leg %q -> %q: %w", l.from, l.to, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DepotJourney{}, err
	}

	var totalSeconds, totalMeters int
	for _, r := range results {
		totalSeconds += r.DurationSeconds
		totalMeters += r.DistanceMeters
	}
	depotLegSeconds := results[0].DurationSeconds + results[2].DurationSeconds

	return DepotJourney{
		TotalHours:    t.hours(totalSeconds),
		TotalMiles:    float64(totalMeters) / metersPerMile,
		DepotLegHours: t.hours(depotLegSeconds),
	}, nil
}

// route geocodes both endpoints concurrently, then fetches the route.
func (t *Travel) route(ctx context.Context, originAddr, destAddr string) (ports.RouteResult, error) {
	var originCoord, destCoord domain.Coordinates

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		originCoord, err = t.provider.Geocode(gctx, originAddr)
		return err
	})
	g.Go(func() error {
		var err error
		destCoord, err = t.provider.Geocode(gctx, destAddr)
		return err
	})
	if err := g.Wait(); err != nil {
		return ports.RouteResult{}, err
	}

	return t.provider.Route(ctx, originCoord, destCoord)
}

func (t *Travel) hours(seconds int) float64 {
	return float64(seconds) / 3600.0 * t.truckSpeedFactor
}

func (t *Travel) estimate(r ports.RouteResult) TravelEstimate {
	return TravelEstimate{
		Hours: t.hours(r.DurationSeconds),
		Km:    float64(r.DistanceMeters) / metersPerKm,
		Miles: float64(r.DistanceMeters) / metersPerMile,
	}
}
