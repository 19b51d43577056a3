package domain

// HeavyItemRate holds one vendor's pricing for a single heavy item kind:
// a flat surcharge plus added crew time.
type HeavyItemRate struct {
	Base       float64
	LaborHours float64
}

// HeavyItemRateTable maps item kinds to one vendor's rates. Vendors maintain
// independent tables over the same item vocabulary.
type HeavyItemRateTable map[HeavyItemKind]HeavyItemRate

// TravelFeeTier maps an inclusive upper bound of depot-relative travel hours
// to a fee expressed as a multiple of the vendor's hourly rate.
type TravelFeeTier struct {
	MaxHours   float64
	RateFactor float64
}

// TravelFeeSchedule is an ordered tier list (ascending MaxHours) terminating
// in a long-haul mileage rate for travel beyond the last tier.
type TravelFeeSchedule struct {
	Tiers           []TravelFeeTier
	LongHaulPerMile float64 // currency per mile per truck
}

// Fee computes the travel fee for a depot-relative journey. Within the tier
// table the fee is a multiple of the hourly rate; journeys beyond the last
// tier bill long-haul mileage per truck instead.
func (s TravelFeeSchedule) Fee(travelHours, travelMiles, hourlyRate float64, truckCount int) float64 {
	for _, t := range s.Tiers {
		if travelHours <= t.MaxHours {
			return t.RateFactor * hourlyRate
		}
	}
	return travelMiles * s.LongHaulPerMile * float64(truckCount)
}

// DispatcherLocation is a fixed dispatch depot: static reference data,
// read-only at runtime.
type DispatcherLocation struct {
	Name    string
	Address string
	Coords  Coordinates
}
