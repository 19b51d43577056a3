package domain

import "testing"

var testSchedule = TravelFeeSchedule{
	Tiers: []TravelFeeTier{
		{MaxHours: 0.5, RateFactor: 1.0},
		{MaxHours: 1.0, RateFactor: 1.5},
		{MaxHours: 3.0, RateFactor: 3.5},
	},
	LongHaulPerMile: 4.0,
}

func TestTravelFeeScheduleTiers(t *testing.T) {
	cases := []struct {
		hours float64
		want  float64
	}{
		{0.0, 100},   // first tier
		{0.5, 100},   // inclusive bound
		{0.51, 150},  // next tier
		{3.0, 350},   // last tier, inclusive
	}

	for _, c := range cases {
		if got := testSchedule.Fee(c.hours, 500, 100, 2); got != c.want {
			t.Errorf("Fee(hours=%v) = %v, want %v", c.hours, got, c.want)
		}
	}
}

func TestTravelFeeScheduleLongHaul(t *testing.T) {
	// Beyond the last tier the fee ignores the hourly rate entirely.
	got := testSchedule.Fee(3.1, 500, 100, 2)
	if got != 500*4.0*2 {
		t.Errorf("long-haul fee = %v, want %v", got, 500*4.0*2)
	}
}
