package services

import (
	"context"
	"fmt"

	"moving-quote-service/internal/domain"
)

// SaguaroVanLines prices by estimated shipment weight: room count converts to
// pounds, and both the crew size and the flat hourly rate come from weight
// buckets. Travel is billed as labor hours; there is no separate truck fee.
type SaguaroVanLines struct {
	travel *Travel
	cfg    Config
}

func NewSaguaroVanLines(travel *Travel, cfg Config) *SaguaroVanLines {
	return &SaguaroVanLines{travel: travel, cfg: cfg}
}

func (v *SaguaroVanLines) Name() string { return "Saguaro Van Lines" }

// Industry rule of thumb for a furnished room.
const saguaroPoundsPerRoom = 1500

var saguaroCrewTable = CrewTable{
	Tiers: []Tier{
		{UpTo: 3000, Value: 2},
		{UpTo: 6000, Value: 3},
		{UpTo: 9000, Value: 4},
		{UpTo: 12000, Value: 5},
		{UpTo: 18000, Value: 6},
	},
	HeavyItemMin: 3,
}

// Flat hourly rate by weight bucket, dollars per hour.
var saguaroRateTiers = []Tier{
	{UpTo: 3000, Value: 119},
	{UpTo: 6000, Value: 159},
	{UpTo: 9000, Value: 199},
	{UpTo: 12000, Value: 239},
	{UpTo: 18000, Value: 279},
}

var saguaroTruckTiers = []Tier{
	{UpTo: 7500, Value: 1},
	{UpTo: 15000, Value: 2},
	{UpTo: 18000, Value: 3},
}

var saguaroHeavyRates = domain.HeavyItemRateTable{
	domain.HeavyPiano:     {Base: 300, LaborHours: 1.5},
	domain.HeavySafe:      {Base: 175, LaborHours: 1.0},
	domain.HeavyPoolTable: {Base: 220, LaborHours: 2.0},
	domain.HeavyTreadmill: {Base: 60, LaborHours: 0.5},
	domain.HeavyHotTub:    {Base: 350, LaborHours: 2.5},
}

func (v *SaguaroVanLines) CalculateQuote(ctx context.Context, req domain.MoveRequest) (domain.QuoteResult, error) {
	rejection, oneWay, err := longDistanceGate(ctx, v.travel, v.cfg, v.Name(), req)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("saguaro van lines: %w", err)
	}
	if rejection != nil {
		return domain.RejectedResult(rejection), nil
	}

	weight := sizeMeasure(req) * saguaroPoundsPerRoom
	hasHeavy := HasHeavyItems(req.HeavyItems)

	crew := saguaroCrewTable.CrewFor(weight, hasHeavy)
	trucks := TrucksFor(saguaroTruckTiers, weight)
	rate := float64(tierValue(saguaroRateTiers, weight))

	heavy := HeavyItemsCost(req.HeavyItems, saguaroHeavyRates)
	laborHours := TotalLaborHours(req, 1.0, v.cfg.MinLaborHours) + heavy.LaborHours

	breakdown := domain.CostBreakdown{
		Labor:      laborHours * rate,
		Travel:     oneWay.Hours * rate,
		Fees:       0,
		HeavyItems: heavy.Cost,
		Services:   0,
	}

	mk, err := ApplyMarkup(breakdown.Sum(), v.cfg.MarkupRate)
	if err != nil {
		return domain.QuoteResult{}, fmt.Errorf("saguaro van lines: %w", err)
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
