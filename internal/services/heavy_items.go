package services

import "moving-quote-service/internal/domain"

// HeavyItemsResult totals the flat surcharges and added labor for a move's
// heavy items against one vendor's rate table.
type HeavyItemsResult struct {
	Cost       float64
	LaborHours float64
}

// HeavyItemsCost sums count x base surcharge and count x added labor hours
// per item kind. Unknown kinds and non-positive counts contribute zero, and
// malformed input yields a zeroed result rather than an error: the rendering
// layer must not crash on partial data.
func HeavyItemsCost(items map[domain.HeavyItemKind]int, rates domain.HeavyItemRateTable) HeavyItemsResult {
	var out HeavyItemsResult
	if len(items) == 0 || len(rates) == 0 {
		return out
	}

	for kind, count := range items {
		if count <= 0 {
			continue
		}
		rate, ok := rates[kind]
		if !ok {
			continue
		}
		out.Cost += float64(count) * rate.Base
		out.LaborHours += float64(count) * rate.LaborHours
	}

	return out
}

// HasHeavyItems reports whether the request includes at least one heavy item.
func HasHeavyItems(items map[domain.HeavyItemKind]int) bool {
	for _, count := range items {
		if count > 0 {
			return true
		}
	}
	return false
}
