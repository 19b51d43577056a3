package services

import (
	"math"

	"moving-quote-service/internal/domain"
)

// MarkupResult carries the pre-markup subtotal, the markup amount, and the
// final total shown to the customer.
type MarkupResult struct {
	Subtotal float64
	Markup   float64
	Total    float64
}

// ApplyMarkup adds the platform markup to a vendor subtotal.
//
// The total is rounded to currency precision here and nowhere else;
// intermediate values keep full precision so rounding error never compounds.
// A negative or non-finite subtotal fails with InvalidCostError: this is the
// one place the calculation library rejects input, because letting such a
// value through would silently corrupt every downstream quote.
func ApplyMarkup(subtotal, markupRate float64) (MarkupResult, error) {
	if subtotal < 0 || math.IsNaN(subtotal) || math.IsInf(subtotal, 0) {
		return MarkupResult{}, &domain.InvalidCostError{Subtotal: subtotal}
	}

	markup := subtotal * markupRate
	return MarkupResult{
		Subtotal: subtotal,
		Markup:   markup,
		Total:    round2(subtotal + markup),
	}, nil
}

// round2 rounds to currency precision (2 decimals).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
