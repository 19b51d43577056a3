package services

import (
	"errors"

	"moving-quote-service/internal/domain"
)

// DefaultDepots is the fixed dispatch depot set for the Phoenix metro.
// Declaration order matters: nearest-depot ties resolve to the earliest entry.
func DefaultDepots() []domain.DispatcherLocation {
	return []domain.DispatcherLocation{
		{
			Name:    "Phoenix Central",
			Address: "2330 W McDowell Rd, Phoenix, AZ 85009",
			Coords:  domain.Coordinates{Lon: -112.107, Lat: 33.466},
		},
		{
			Name:    "Mesa East",
			Address: "440 S Country Club Dr, Mesa, AZ 85210",
			Coords:  domain.Coordinates{Lon: -111.843, Lat: 33.408},
		},
		{
			Name:    "Scottsdale North",
			Address: "7333 E Butherus Dr, Scottsdale, AZ 85260",
			Coords:  domain.Coordinates{Lon: -111.923, Lat: 33.621},
		},
		{
			Name:    "Glendale West",
			Address: "5605 W Glendale Ave, Glendale, AZ 85301",
			Coords:  domain.Coordinates{Lon: -112.179, Lat: 33.538},
		},
	}
}

// NearestDepot returns the depot closest to origin by great-circle distance.
// Ties resolve to the earliest declared depot, keeping selection
// deterministic. Pure function; no I/O.
func NearestDepot(origin domain.Coordinates, depots []domain.DispatcherLocation) (domain.DispatcherLocation, error) {
	if len(depots) == 0 {
		return domain.DispatcherLocation{}, errors.New("nearest depot: depot list must not be empty")
	}

	best := depots[0]
	bestKm := domain.HaversineKm(origin, best.Coords)

	// Strict less-than keeps declaration order on ties.
	for _, d := range depots[1:] {
		km := domain.HaversineKm(origin, d.Coords)
		if km < bestKm {
			best = d
			bestKm = km
		}
	}

	return best, nil
}
