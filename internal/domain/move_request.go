package domain

import (
	"strings"
	"time"
)

// HomeType classifies the property being moved out of. It determines whether
// the request is sized by room count or by floor area.
type HomeType string

const (
	HomeHouse      HomeType = "house"
	HomeTownhouse  HomeType = "townhouse"
	HomeCondo      HomeType = "condo"
	HomeApartment  HomeType = "apartment"
	HomeCommercial HomeType = "commercial"
)

// TimeOfDay is the requested arrival window for the crew.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// HeavyItemKind identifies a move item that carries both a flat surcharge and
// added labor time. The vocabulary is shared across vendors; rates are not.
type HeavyItemKind string

const (
	HeavyPiano     HeavyItemKind = "piano"
	HeavySafe      HeavyItemKind = "safe"
	HeavyPoolTable HeavyItemKind = "pool_table"
	HeavyTreadmill HeavyItemKind = "treadmill"
	HeavyHotTub    HeavyItemKind = "hot_tub"
)

// AdditionalService is a requested extra. Most vendors assess these manually
// after booking and price them at zero at quote time.
type AdditionalService string

const (
	ServicePacking     AdditionalService = "packing"
	ServiceStorage     AdditionalService = "storage"
	ServiceJunkRemoval AdditionalService = "junk_removal"
)

// MoveRequest is the immutable input for one quote session. It is constructed
// once, validated once by the orchestrator, and never mutated. Exactly one of
// RoomCount / SquareFeet is meaningful, determined by HomeType.
type MoveRequest struct {
	OriginAddress      string
	DestinationAddress string
	MoveDate           time.Time
	TimeOfDay          TimeOfDay
	HomeType           HomeType
	RoomCount          int
	SquareFeet         int
	StairsPickup       int // flights
	StairsDropoff      int // flights
	ElevatorPickup     bool
	ElevatorDropoff    bool
	HeavyItems         map[HeavyItemKind]int
	AdditionalServices []AdditionalService
}

// IsCommercial reports whether the request is sized by floor area.
func (r MoveRequest) IsCommercial() bool { return r.HomeType == HomeCommercial }

// MissingFields lists every structural completeness problem with the request.
// An empty result means the request is safe to hand to the vendor strategies.
func (r MoveRequest) MissingFields() []string {
	var missing []string

	if strings.TrimSpace(r.OriginAddress) == "" {
		missing = append(missing, "origin_address")
	}
	if strings.TrimSpace(r.DestinationAddress) == "" {
		missing = append(missing, "destination_address")
	}
	if r.MoveDate.IsZero() {
		missing = append(missing, "move_date")
	}
	if r.TimeOfDay == "" {
		missing = append(missing, "move_time")
	}

	switch r.HomeType {
	case HomeHouse, HomeTownhouse, HomeCondo, HomeApartment:
		if r.RoomCount < 1 {
			missing = append(missing, "room_count")
		}
	case HomeCommercial:
		if r.SquareFeet < 1 {
			missing = append(missing, "square_feet")
		}
	default:
		missing = append(missing, "home_type")
	}

	return missing
}
