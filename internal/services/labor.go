package services

import "moving-quote-service/internal/domain"

// Base labor hours indexed by room count. Monotonically non-decreasing;
// counts above the last bucket use the ceiling value.
var baseLaborHoursByRooms = []float64{2.0, 3.0, 4.0, 5.0, 6.5, 7.5, 8.5, 9.5}

const (
	laborHoursCeiling        = 10.0
	commercialBaseLaborHours = 4.0

	minutesPerStairFlight  = 15.0
	minutesPerElevatorSite = 30.0

	sqftAdjustmentThreshold = 1000
	sqftAdjustmentStep      = 500
	sqftAdjustmentHours     = 0.5
)

// BaseLaborHours is the step-function estimate of loading/unloading time by
// room count.
func BaseLaborHours(roomCount int) float64 {
	if roomCount < 0 {
		roomCount = 0
	}
	if roomCount >= len(baseLaborHoursByRooms) {
		return laborHoursCeiling
	}
	return baseLaborHoursByRooms[roomCount]
}

// StairTime is the added hours for carrying over stair flights at both sites.
func StairTime(pickupFlights, dropoffFlights int) float64 {
	flights := 0
	if pickupFlights > 0 {
		flights += pickupFlights
	}
	if dropoffFlights > 0 {
		flights += dropoffFlights
	}
	return float64(flights) * minutesPerStairFlight / 60.0
}

// ElevatorTime is the added hours for elevator handling, applied once per
// site where an elevator is involved.
func ElevatorTime(pickupHasElevator, dropoffHasElevator bool) float64 {
	sites := 0
	if pickupHasElevator {
		sites++
	}
	if dropoffHasElevator {
		sites++
	}
	return float64(sites) * minutesPerElevatorSite / 60.0
}

// SqftAdjustment adds half-hour blocks per started step of floor area above
// the base threshold. Zero at or below the threshold.
func SqftAdjustment(sqft int) float64 {
	if sqft <= sqftAdjustmentThreshold {
		return 0
	}
	blocks := (sqft - sqftAdjustmentThreshold + sqftAdjustmentStep - 1) / sqftAdjustmentStep
	return float64(blocks) * sqftAdjustmentHours
}

// TotalLaborHours composes the base estimate with site adjustments, applies
// the vendor's complexity multiplier, then enforces the global minimum floor.
// The floor is the engine's most important invariant: no quote may ever
// reflect fewer hours, regardless of how small the inputs are.
func TotalLaborHours(req domain.MoveRequest, complexityMultiplier, minLaborHours float64) float64 {
	var hours float64
	if req.IsCommercial() {
		hours = commercialBaseLaborHours + SqftAdjustment(req.SquareFeet)
	} else {
		hours = BaseLaborHours(req.RoomCount)
	}

	hours += StairTime(req.StairsPickup, req.StairsDropoff)
	hours += ElevatorTime(req.ElevatorPickup, req.ElevatorDropoff)

	if complexityMultiplier > 0 {
		hours *= complexityMultiplier
	}

	if hours < minLaborHours {
		hours = minLaborHours
	}
	return hours
}
