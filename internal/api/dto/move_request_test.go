package dto

import (
	"testing"

	"moving-quote-service/internal/domain"
)

func TestToDomainMapsFields(t *testing.T) {
	req := QuoteRequest{
		OriginAddress:      "a",
		DestinationAddress: "b",
		MoveDate:           "2026-09-01",
		MoveTime:           "afternoon",
		HomeType:           "condo",
		RoomCount:          2,
		HeavyItems:         map[string]int{"piano": 1},
		AdditionalServices: []string{"packing"},
	}

	got := req.ToDomain()

	if got.MoveDate.IsZero() {
		t.Error("move date not parsed")
	}
	if got.TimeOfDay != domain.TimeAfternoon {
		t.Errorf("time of day = %q", got.TimeOfDay)
	}
	if got.HeavyItems[domain.HeavyPiano] != 1 {
		t.Errorf("heavy items = %v", got.HeavyItems)
	}
	if len(got.AdditionalServices) != 1 || got.AdditionalServices[0] != domain.ServicePacking {
		t.Errorf("additional services = %v", got.AdditionalServices)
	}
}

func TestToDomainUnparsableDate(t *testing.T) {
	req := QuoteRequest{MoveDate: "September 1st"}

	// A bad date maps to the zero time so central validation reports it.
	if got := req.ToDomain(); !got.MoveDate.IsZero() {
		t.Errorf("move date = %v, want zero time", got.MoveDate)
	}
}
