package dto

import "moving-quote-service/internal/domain"

type CostBreakdownResponse struct {
	Labor      float64 `json:"labor"`
	Travel     float64 `json:"travel"`
	Fees       float64 `json:"fees"`
	HeavyItems float64 `json:"heavy_items"`
	Services   float64 `json:"services"`
}

// QuoteResultResponse renders one vendor outcome. Status discriminates the
// two shapes: priced results carry cost fields, rejected results carry a
// reason instead.
type QuoteResultResponse struct {
	Status       string                 `json:"status"`
	Vendor       string                 `json:"vendor"`
	QuoteID      string                 `json:"quote_id,omitempty"`
	HourlyRate   float64                `json:"hourly_rate,omitempty"`
	CrewSize     int                    `json:"crew_size,omitempty"`
	TruckCount   int                    `json:"truck_count,omitempty"`
	LaborHours   float64                `json:"labor_hours,omitempty"`
	TravelHours  float64                `json:"travel_hours,omitempty"`
	Breakdown    *CostBreakdownResponse `json:"breakdown,omitempty"`
	Subtotal     float64                `json:"subtotal,omitempty"`
	Markup       float64                `json:"markup,omitempty"`
	Total        float64                `json:"total,omitempty"`
	Reason       string                 `json:"reason,omitempty"`
	LongDistance bool                   `json:"long_distance,omitempty"`
}

type ListQuotesResponse struct {
	Quotes []QuoteResultResponse `json:"quotes"`
}

// FromResult maps a domain outcome onto the wire shape.
func FromResult(r domain.QuoteResult) QuoteResultResponse {
	if r.Kind == domain.ResultRejected {
		return QuoteResultResponse{
			Status:       string(r.Kind),
			Vendor:       r.Rejection.Vendor,
			Reason:       r.Rejection.Reason,
			LongDistance: r.Rejection.LongDistance,
		}
	}

	q := r.Quote
	return QuoteResultResponse{
		Status:      string(r.Kind),
		Vendor:      q.Vendor,
		QuoteID:     q.QuoteID.String(),
		HourlyRate:  q.HourlyRate,
		CrewSize:    q.CrewSize,
		TruckCount:  q.TruckCount,
		LaborHours:  q.LaborHours,
		TravelHours: q.TravelHours,
		Breakdown: &CostBreakdownResponse{
			Labor:      q.Breakdown.Labor,
			Travel:     q.Breakdown.Travel,
			Fees:       q.Breakdown.Fees,
			HeavyItems: q.Breakdown.HeavyItems,
			Services:   q.Breakdown.Services,
		},
		Subtotal: q.Subtotal,
		Markup:   q.Markup,
		Total:    q.Total,
	}
}
