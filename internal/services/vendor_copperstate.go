package services

import (
	"context"
	"fmt"

	"moving-quote-service/internal/domain"
)

// CopperStateMovers prices from a base hourly rate conditioned on the
// nearest dispatch depot, stepped up per extra truck. Travel is billed as
// labor hours, plus a fuel surcharge proportional to distance beyond a
// free-distance threshold.
type CopperStateMovers struct {
	travel *Travel
	cfg    Config
	depots []domain.DispatcherLocation
}

func NewCopperStateMovers(travel *Travel, cfg Config, depots []domain.DispatcherLocation) *CopperStateMovers {
	return &CopperStateMovers{travel: travel, cfg: cfg, depots: depots}
}

func (v *CopperStateMovers) Name() string { return "Copper State Movers" }

const (
	copperFreeDistanceKm    = 30.0
	copperFuelRatePerKm     = 1.80
	copperPerTruckRateStep  = 0.10 // hourly rate uplift per truck beyond the first
	copperDefaultBaseHourly = 139
)

// Base hourly rate by dispatching depot. Outlying depots run leaner crews.
var copperBaseHourlyByDepot = map[string]float64{
	"Phoenix Central":  139,
	"Mesa East":        129,
	"Scottsdale North": 149,
	"Glendale West":    129,
}

var copperCrewTable = CrewTable{
	Tiers: []Tier{
		{UpTo: 2, Value: 2},
		{UpTo: 4, Value: 3},
		{UpTo: 6, Value: 4},
		{UpTo: 12, Value: 5},
	},
	HeavyItemMin: 3,
}

var copperTruckTiers = []Tier{
	{UpTo: 4, Value: 1},
	{UpTo: 8, Value: 2},
	{UpTo: 12, Value: 3},
}

var copperHeavyRates = domain.HeavyItemRateTable{
	domain.HeavyPiano:     {Base: 275, LaborHours: 2.0},
	domain.HeavySafe:      {Base: 225, LaborHours: 1.5},
	domain.HeavyPoolTable: {Base: 200, LaborHours: 1.5},
	domain.HeavyTreadmill: {Base: 80, LaborHours: 0.5},
	domain.HeavyHotTub:    {Base: 325, LaborHours: 2.0},
}

func (v *CopperStateMovers) CalculateQuote(ctx context.Context, req domain.MoveRequest) (domain.QuoteResult, error) {
	rejection, oneWay, err := longDistanceGate(ctx, v.travel, v.cfg, v.Name(), req)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("copper state movers: %w", err)
	}
	if rejection != nil {
		return domain.RejectedResult(rejection), nil
	}

	originCoords, err := v.travel.provider.Geocode(ctx, req.OriginAddress)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("copper state movers: %w", err)
	}

	depot, err := NearestDepot(originCoords, v.depots)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("copper state movers: %w", err)
	}

	measure := sizeMeasure(req)
	hasHeavy := HasHeavyItems(req.HeavyItems)

	crew := copperCrewTable.CrewFor(measure, hasHeavy)
	trucks := TrucksFor(copperTruckTiers, measure)

	base, ok := copperBaseHourlyByDepot[depot.Name]
	if !ok {
		base = copperDefaultBaseHourly
	}
	rate := base * (1 + copperPerTruckRateStep*float64(trucks-1))

	multiplier := 1.0
	if measure >= 5 {
		multiplier = 1.1
	}

	heavy := HeavyItemsCost(req.HeavyItems, copperHeavyRates)
	laborHours := TotalLaborHours(req, multiplier, v.cfg.MinLaborHours) + heavy.LaborHours

	fuel := 0.0
	if oneWay.Km > copperFreeDistanceKm {
		fuel = (oneWay.Km - copperFreeDistanceKm) * copperFuelRatePerKm
	}

	breakdown := domain.CostBreakdown{
		Labor:      laborHours * rate,
		Travel:     oneWay.Hours * rate,
		Fees:       fuel,
		HeavyItems: heavy.Cost,
		Services:   0,
	}

	mk, err := ApplyMarkup(breakdown.Sum(), v.cfg.MarkupRate)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("copper state movers: %w", err)
	}

	return domain.PricedResult(&domain.Quote{
		Vendor:      v.Name(),
		HourlyRate:  rate,
		CrewSize:    crew,
		TruckCount:  trucks,
		LaborHours:  laborHours,
		TravelHours: oneWay.Hours,
		Breakdown:   breakdown,
		Subtotal:    mk.Subtotal,
		Markup:      mk.Markup,
		Total:       mk.Total,
	}), nil
}
