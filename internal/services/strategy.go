package services

import (
	"context"
	"fmt"

	"moving-quote-service/internal/domain"
)

// Config centralizes the engine-wide pricing constants shared by every
// vendor strategy. Values are passed in at construction, never re-declared
// per file.
type Config struct {
	MarkupRate               float64 // fraction added to every subtotal
	TruckSpeedFactor         float64 // loaded-truck multiplier over car travel time
	MinLaborHours            float64 // global labor-hour floor
	LongDistanceCeilingHours float64 // one-way travel beyond this is rejected
}

func DefaultConfig() Config {
	return Config{
		MarkupRate:               0.20,
		TruckSpeedFactor:         1.3,
		MinLaborHours:            2.0,
		LongDistanceCeilingHours: 10.0,
	}
}

// VendorStrategy is the contract every vendor pricing model implements.
// A strategy produces exactly one Quote-or-Rejection per request; returned
// errors are provider failures, never business outcomes.
type VendorStrategy interface {
	Name() string
	CalculateQuote(ctx context.Context, req domain.MoveRequest) (domain.QuoteResult, error)
}

// longDistanceGate measures one-way travel time and short-circuits into a
// Rejection when it exceeds the global ceiling. The measured estimate is
// returned either way so travel-as-labor vendors reuse the same routing call.
// Rejection is terminal: the request is never retried automatically.
func longDistanceGate(
	ctx context.Context,
	travel *Travel,
	cfg Config,
	vendor string,
	req domain.MoveRequest,
) (*domain.Rejection, TravelEstimate, error) {
	est, err := travel.OneWay(ctx, req.OriginAddress, req.DestinationAddress)
	if err != nil {
		return nil, TravelEstimate{}, fmt.Errorf("long distance gate: %w", err)
	}

	if est.Hours > cfg.LongDistanceCeilingHours {
		return &domain.Rejection{
			Vendor: vendor,
			Reason: fmt.Sprintf(
				"one-way travel time of %.1f hours exceeds the %.0f-hour service limit; contact sales for a custom long-distance quote",
				est.Hours, cfg.LongDistanceCeilingHours,
			),
			LongDistance: true,
			OneWayHours:  est.Hours,
		}, est, nil
	}

	return nil, est, nil
}

// sizeMeasure converts the request's size inputs into the room-count measure
// the crew tables key on. Commercial moves approximate rooms from floor area.
func sizeMeasure(req domain.MoveRequest) int {
	if req.IsCommercial() {
		m := req.SquareFeet / 400
		if m < 2 {
			m = 2
		}
		return m
	}
	return req.RoomCount
}
