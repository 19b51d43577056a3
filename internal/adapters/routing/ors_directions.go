package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"

	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
	"moving-quote-service/internal/ports"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// Route returns driving distance and duration between two coordinate pairs.
//
// Results are cached persistently by coordinate key. Cache failures are
// logged and treated as misses; provider failures produce a RoutingError.
func (o *ORSRoutingProvider) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (ports.RouteResult, error) {
	originKey := coordKey(origin)
	destKey := coordKey(destination)

	if o.routeCache != nil {
		r, ok, err := o.routeCache.Get(ctx, originKey, destKey)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if ok {
			return r, nil
		}
	}

	result, err := o.fetchRoute(ctx, origin, destination)
	if err != nil {
		return ports.RouteResult{}, &domain.RoutingError{Err: err}
	}

	if o.routeCache != nil {
		if err := o.routeCache.Put(ctx, originKey, destKey, result); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return result, nil
}

// fetchRoute calls the ORS directions endpoint for a single pair under the
// configured travel profile.
func (o *ORSRoutingProvider) fetchRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	bodyObj := directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.RouteResult{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 {
		return ports.RouteResult{}, errors.New("no route found")
	}

	summary := dr.Routes[0].Summary

	// ORS returns float metrics; round to nearest integer for domain consistency.
	return ports.RouteResult{
		DistanceMeters:  int(math.Round(summary.Distance)),
		DurationSeconds: int(math.Round(summary.Duration)),
	}, nil
}
