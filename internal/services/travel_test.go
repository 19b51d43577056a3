package services

import (
	"context"
	"math"
	"testing"

	"moving-quote-service/internal/adapters/routing"
	"moving-quote-service/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOneWayAppliesTruckSpeedFactor(t *testing.T) {
	mock := routing.NewMockRoutingProvider()
	mock.AddAddress("a", domain.Coordinates{Lon: -112.0, Lat: 33.0})
	mock.AddAddress("b", domain.Coordinates{Lon: -112.1, Lat: 33.1})
	mock.AddRoute("a", "b", 1609344, 3600) // 1,609,344 m = 1000 mi

	travel := NewTravel(mock, 1.3)

	est, err := travel.OneWay(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("OneWay returned error: %v", err)
	}

	if !almostEqual(est.Hours, 1.3) {
		t.Errorf("hours = %v, want 1.3 (one provider hour scaled by truck factor)", est.Hours)
	}
	if !almostEqual(est.Km, 1609.344) {
		t.Errorf("km = %v, want 1609.344", est.Km)
	}
	if !almostEqual(est.Miles, 1000) {
		t.Errorf("miles = %v, want 1000", est.Miles)
	}
}

func TestOneWayUnknownAddress(t *testing.T) {
	mock := routing.NewMockRoutingProvider()
	travel := NewTravel(mock, 1.0)

	_, err := travel.OneWay(context.Background(), "nowhere", "elsewhere")
	if err == nil {
		t.Fatal("expected error for unknown addresses")
	}
}

func TestJourney(t *testing.T) {
	mock := routing.NewMockRoutingProvider()
	mock.AddAddress("depot", domain.Coordinates{Lon: -112.0, Lat: 33.0})
	mock.AddAddress("origin", domain.Coordinates{Lon: -112.1, Lat: 33.1})
	mock.AddAddress("dest", domain.Coordinates{Lon: -112.2, Lat: 33.2})
	mock.AddRoute("depot", "origin", 10000, 600)
	mock.AddRoute("origin", "dest", 20000, 1800)
	mock.AddRoute("dest", "depot", 15000, 900)

	travel := NewTravel(mock, 1.0)

	j, err := travel.Journey(context.Background(), "depot", "origin", "dest")
	if err != nil {
		t.Fatalf("Journey returned error: %v", err)
	}

	if !almostEqual(j.TotalHours, 3300.0/3600.0) {
		t.Errorf("total hours = %v, want %v", j.TotalHours, 3300.0/3600.0)
	}
	if !almostEqual(j.DepotLegHours, 1500.0/3600.0) {
		t.Errorf("depot leg hours = %v, want %v", j.DepotLegHours, 1500.0/3600.0)
	}
	if !almostEqual(j.TotalMiles, 45000/1609.344) {
		t.Errorf("total miles = %v, want %v", j.TotalMiles, 45000/1609.344)
	}
}

func TestJourneyPropagatesLegFailure(t *testing.T) {
	mock := routing.NewMockRoutingProvider()
	mock.AddAddress("depot", domain.Coordinates{Lon: -112.0, Lat: 33.0})
	mock.AddAddress("origin", domain.Coordinates{Lon: -112.1, Lat: 33.1})
	mock.AddRoute("depot", "origin", 10000, 600)
	// "dest" never registered, so two legs fail to geocode.

	travel := NewTravel(mock, 1.0)

	if _, err := travel.Journey(context.Background(), "depot", "origin", "dest"); err == nil {
		t.Fatal("expected error when a leg cannot be routed")
	}
}
