package domain

import "github.com/google/uuid"

// ResultKind discriminates the two outcomes a vendor strategy can produce.
type ResultKind string

const (
	ResultPriced   ResultKind = "priced"
	ResultRejected ResultKind = "rejected"
)

// CostBreakdown itemizes a quote's pre-markup cost components.
type CostBreakdown struct {
	Labor      float64
	Travel     float64
	Fees       float64
	HeavyItems float64
	Services   float64
}

// Sum returns the pre-markup subtotal of all components.
func (b CostBreakdown) Sum() float64 {
	return b.Labor + b.Travel + b.Fees + b.HeavyItems + b.Services
}

// Quote is the priced outcome of one vendor strategy for one request.
// Invariant: Total = Subtotal x (1 + markup rate), rounded to cents at that
// final step only; every other field keeps full precision.
type Quote struct {
	QuoteID     uuid.UUID
	Vendor      string
	HourlyRate  float64
	CrewSize    int
	TruckCount  int
	LaborHours  float64
	TravelHours float64
	Breakdown   CostBreakdown
	Subtotal    float64
	Markup      float64
	Total       float64
}

// Rejection is the alternate terminal outcome: the vendor will not price the
// move automatically and a sales follow-up is the only path forward.
// It carries no cost fields.
type Rejection struct {
	Vendor       string
	Reason       string
	LongDistance bool
	OneWayHours  float64
}

// QuoteResult is a tagged union. Exactly one of Quote / Rejection is non-nil,
// matching Kind, so consumers must handle both variants explicitly.
type QuoteResult struct {
	Kind      ResultKind
	Quote     *Quote
	Rejection *Rejection
}

func PricedResult(q *Quote) QuoteResult {
	return QuoteResult{Kind: ResultPriced, Quote: q}
}

func RejectedResult(r *Rejection) QuoteResult {
	return QuoteResult{Kind: ResultRejected, Rejection: r}
}
