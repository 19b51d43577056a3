package services

import (
	"context"
	"fmt"

	"moving-quote-service/internal/domain"
)

// ValleyHaulAndPack prices from a base rate plus a linear add-on per crew
// member beyond the second, and bills travel relative to its home depot: a
// tiered fee keyed off the depot->origin + destination->depot duration,
// falling through to per-mile long-haul pricing beyond the last tier.
//
// Valley is the one vendor with published flat rates for extras, so packing
// and storage carry a nonzero cost at quote time.
type ValleyHaulAndPack struct {
	travel *Travel
	cfg    Config
	depots []domain.DispatcherLocation
}

func NewValleyHaulAndPack(travel *Travel, cfg Config, depots []domain.DispatcherLocation) *ValleyHaulAndPack {
	return &ValleyHaulAndPack{travel: travel, cfg: cfg, depots: depots}
}

func (v *ValleyHaulAndPack) Name() string { return "Valley Haul & Pack" }

const (
	valleyBaseHourly   = 99.0
	valleyPerCrewAddon = 45.0 // per crew member beyond the second
)

var valleyCrewTable = CrewTable{
	Tiers: []Tier{
		{UpTo: 2, Value: 2},
		{UpTo: 4, Value: 3},
		{UpTo: 6, Value: 4},
		{UpTo: 12, Value: 5},
	},
	HeavyItemMin: 3,
}

var valleyTruckTiers = []Tier{
	{UpTo: 5, Value: 1},
	{UpTo: 8, Value: 2},
	{UpTo: 12, Value: 3},
}

var valleyTravelFees = domain.TravelFeeSchedule{
	Tiers: []domain.TravelFeeTier{
		{MaxHours: 0.5, RateFactor: 1.0},
		{MaxHours: 1.0, RateFactor: 1.5},
		{MaxHours: 1.5, RateFactor: 2.0},
		{MaxHours: 2.0, RateFactor: 2.5},
		{MaxHours: 3.0, RateFactor: 3.5},
	},
	LongHaulPerMile: 4.0,
}

var valleyHeavyRates = domain.HeavyItemRateTable{
	domain.HeavyPiano:     {Base: 225, LaborHours: 1.5},
	domain.HeavySafe:      {Base: 190, LaborHours: 1.0},
	domain.HeavyPoolTable: {Base: 210, LaborHours: 1.5},
	domain.HeavyTreadmill: {Base: 70, LaborHours: 0.5},
	domain.HeavyHotTub:    {Base: 310, LaborHours: 2.0},
}

// Published flat rates for extras. Services missing from the table are
// assessed manually after booking, like every other vendor.
var valleyServiceRates = map[domain.AdditionalService]float64{
	domain.ServicePacking: 150,
	domain.ServiceStorage: 200,
}

func (v *ValleyHaulAndPack) CalculateQuote(ctx context.Context, req domain.MoveRequest) (domain.QuoteResult, error) {
	rejection, _, err := longDistanceGate(ctx, v.travel, v.cfg, v.Name(), req)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("valley haul and pack: %w", err)
	}
	if rejection != nil {
		return domain.RejectedResult(rejection), nil
	}

	originCoords, err := v.travel.provider.Geocode(ctx, req.OriginAddress)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("valley haul and pack: %w", err)
	}

	depot, err := NearestDepot(originCoords, v.depots)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("valley haul and pack: %w", err)
	}

	journey, err := v.travel.Journey(ctx, depot.Address, req.OriginAddress, req.DestinationAddress)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("valley haul and pack: %w", err)
	}

	measure := sizeMeasure(req)
	hasHeavy := HasHeavyItems(req.HeavyItems)

	crew := valleyCrewTable.CrewFor(measure, hasHeavy)
	trucks := TrucksFor(valleyTruckTiers, measure)
	rate := valleyBaseHourly + valleyPerCrewAddon*float64(crew-2)

	heavy := HeavyItemsCost(req.HeavyItems, valleyHeavyRates)
	laborHours := TotalLaborHours(req, 1.0, v.cfg.MinLaborHours) + heavy.LaborHours

	services := 0.0
	for _, s := range req.AdditionalServices {
		services += valleyServiceRates[s]
	}

	breakdown := domain.CostBreakdown{
		Labor:      laborHours * rate,
		Travel:     valleyTravelFees.Fee(journey.DepotLegHours, journey.TotalMiles, rate, trucks),
		Fees:       0,
		HeavyItems: heavy.Cost,
		Services:   services,
	}

	mk, err := ApplyMarkup(breakdown.Sum(), v.cfg.MarkupRate)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("valley haul and pack: %w", err)
	}

	return domain.PricedResult(&domain.Quote{
		Vendor:      v.Name(),
		HourlyRate:  rate,
		CrewSize:    crew,
		TruckCount:  trucks,
		LaborHours:  laborHours,
		TravelHours: journey.TotalHours,
		Breakdown:   breakdown,
		Subtotal:    mk.Subtotal,
		Markup:      mk.Markup,
		Total:       mk.Total,
	}), nil
}
