package services

import (
	"context"
	"fmt"

	"moving-quote-service/internal/domain"
)

// DesertMoving prices with a stepped day-rate table keyed by crew size and
// bills job travel (home to home) as additional hours at the same rate.
// Requested extras are assessed manually after booking, not priced here.
type DesertMoving struct {
	travel *Travel
	cfg    Config
}

func NewDesertMoving(travel *Travel, cfg Config) *DesertMoving {
	return &DesertMoving{travel: travel, cfg: cfg}
}

func (v *DesertMoving) Name() string { return "Desert Moving Co." }

var desertCrewTable = CrewTable{
	Tiers: []Tier{
		{UpTo: 3, Value: 2},
		{UpTo: 4, Value: 3},
		{UpTo: 5, Value: 4},
		{UpTo: 7, Value: 5},
		{UpTo: 12, Value: 6},
	},
	HeavyItemMin: 3,
}

var desertTruckTiers = []Tier{
	{UpTo: 4, Value: 1},
	{UpTo: 7, Value: 2},
	{UpTo: 12, Value: 3},
}

// Stepped day rates by crew size, dollars per hour.
var desertHourlyByCrew = map[int]float64{
	2: 129,
	3: 169,
	4: 209,
	5: 249,
	6: 289,
}

// Flat truck/fuel fee by room-count bracket. Small moves ride free.
var desertTruckFeeTiers = []Tier{
	{UpTo: 3, Value: 0},
	{UpTo: 5, Value: 95},
	{UpTo: 12, Value: 150},
}

var desertHeavyRates = domain.HeavyItemRateTable{
	domain.HeavyPiano:     {Base: 250, LaborHours: 1.5},
	domain.HeavySafe:      {Base: 200, LaborHours: 1.0},
	domain.HeavyPoolTable: {Base: 180, LaborHours: 1.5},
	domain.HeavyTreadmill: {Base: 75, LaborHours: 0.5},
	domain.HeavyHotTub:    {Base: 300, LaborHours: 2.0},
}

func (v *DesertMoving) CalculateQuote(ctx context.Context, req domain.MoveRequest) (domain.QuoteResult, error) {
	rejection, oneWay, err := longDistanceGate(ctx, v.travel, v.cfg, v.Name(), req)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("desert moving: %w", err)
	}
	if rejection != nil {
		return domain.RejectedResult(rejection), nil
	}

	measure := sizeMeasure(req)
	hasHeavy := HasHeavyItems(req.HeavyItems)

	crew := desertCrewTable.CrewFor(measure, hasHeavy)
	trucks := TrucksFor(desertTruckTiers, measure)
	rate := desertHourlyByCrew[crew]

	// Larger homes carry packing overhead the room table alone understates.
	multiplier := 1.0
	if measure >= 4 {
		multiplier = 1.2
	}

	heavy := HeavyItemsCost(req.HeavyItems, desertHeavyRates)
	laborHours := TotalLaborHours(req, multiplier, v.cfg.MinLaborHours) + heavy.LaborHours

	breakdown := domain.CostBreakdown{
		Labor:      laborHours * rate,
		Travel:     oneWay.Hours * rate,
		Fees:       float64(tierValue(desertTruckFeeTiers, measure)),
		HeavyItems: heavy.Cost,
		Services:   0,
	}

	mk, err := ApplyMarkup(breakdown.Sum(), v.cfg.MarkupRate)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("desert moving: %w", err)
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
