package services

import (
	"testing"

	"moving-quote-service/internal/domain"
)

var testHeavyRates = domain.HeavyItemRateTable{
	domain.HeavyPiano: {Base: 250, LaborHours: 1.5},
	domain.HeavySafe:  {Base: 200, LaborHours: 1.0},
}

func TestHeavyItemsCost(t *testing.T) {
	got := HeavyItemsCost(map[domain.HeavyItemKind]int{
		domain.HeavyPiano: 1,
		domain.HeavySafe:  2,
	}, testHeavyRates)

	if got.Cost != 650 {
		t.Errorf("cost = %v, want 650", got.Cost)
	}
	if got.LaborHours != 3.5 {
		t.Errorf("labor hours = %v, want 3.5", got.LaborHours)
	}
}

func TestHeavyItemsCostMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		items map[domain.HeavyItemKind]int
	}{
		{"nil map", nil},
		{"unknown kind", map[domain.HeavyItemKind]int{"forklift": 2}},
		{"zero count", map[domain.HeavyItemKind]int{domain.HeavyPiano: 0}},
		{"negative count", map[domain.HeavyItemKind]int{domain.HeavyPiano: -3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := HeavyItemsCost(c.items, testHeavyRates)
			if got.Cost != 0 || got.LaborHours != 0 {
				t.Errorf("got %+v, want zero result", got)
			}
		})
	}
}

func TestHasHeavyItems(t *testing.T) {
	if HasHeavyItems(nil) {
		t.Error("nil map reported as having heavy items")
	}
	if HasHeavyItems(map[domain.HeavyItemKind]int{domain.HeavyPiano: 0}) {
		t.Error("zero-count map reported as having heavy items")
	}
	if !HasHeavyItems(map[domain.HeavyItemKind]int{domain.HeavyPiano: 1}) {
		t.Error("piano not detected")
	}
}
