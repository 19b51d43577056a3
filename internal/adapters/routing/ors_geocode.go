package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a free-text address to coordinates.
//
// Lookup order: in-process TTL cache, persistent cache, then the ORS
// /geocode/search endpoint. Cache failures are logged and treated as misses;
// only provider failures produce a GeocodeError.
func (o *ORSRoutingProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	norm := o.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, &domain.GeocodeError{
			Address: address,
			Err:     errors.New("address must be non-empty"),
		}
	}

	if o.memCache != nil {
		if c, ok := o.memCache.Get(norm); ok {
			return c, nil
		}
	}

	if o.geocodeCache != nil {
		hits, err := o.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if c, ok := hits[norm]; ok {
			if o.memCache != nil {
				o.memCache.Put(norm, c)
			}
			return c, nil
		}
	}

	coords, err := o.fetchGeocode(ctx, norm)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodeError{Address: norm, Err: err}
	}

	if o.memCache != nil {
		o.memCache.Put(norm, coords)
	}
	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: coords}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coords, nil
}

// fetchGeocode calls the ORS forward-geocoding endpoint for one address,
// restricted to the configured country.
func (o *ORSRoutingProvider) fetchGeocode(
	ctx context.Context,
	norm string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("boundary.country", o.country)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, errors.New("no geocode results")
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, errors.New("invalid coordinate format")
	}

	return domain.Coordinates{Lon: coords[0], Lat: coords[1]}, nil
}
