package dto

import (
	"time"

	"moving-quote-service/internal/domain"
)

type QuoteRequest struct {
	OriginAddress      string         `json:"origin_address"`
	DestinationAddress string         `json:"destination_address"`
	MoveDate           string         `json:"move_date"` // YYYY-MM-DD
	MoveTime           string         `json:"move_time"`
	HomeType           string         `json:"home_type"`
	RoomCount          int            `json:"room_count"`
	SquareFeet         int            `json:"square_feet"`
	StairsPickup       int            `json:"stairs_pickup"`
	StairsDropoff      int            `json:"stairs_dropoff"`
	ElevatorPickup     bool           `json:"elevator_pickup"`
	ElevatorDropoff    bool           `json:"elevator_dropoff"`
	HeavyItems         map[string]int `json:"heavy_items"`
	AdditionalServices []string       `json:"additional_services"`
}

// ToDomain maps the wire shape onto the engine's move request. An unparsable
// date maps to the zero time so central validation reports it as missing
// rather than the handler growing its own validation rules.
func (q QuoteRequest) ToDomain() domain.MoveRequest {
	moveDate, _ := time.Parse("2006-01-02", q.MoveDate)

	heavy := make(map[domain.HeavyItemKind]int, len(q.HeavyItems))
	for kind, count := range q.HeavyItems {
		heavy[domain.HeavyItemKind(kind)] = count
	}

	services := make([]domain.AdditionalService, 0, len(q.AdditionalServices))
	for _, s := range q.AdditionalServices {
		services = append(services, domain.AdditionalService(s))
	}

	return domain.MoveRequest{
		OriginAddress:      q.OriginAddress,
		DestinationAddress: q.DestinationAddress,
		MoveDate:           moveDate,
		TimeOfDay:          domain.TimeOfDay(q.MoveTime),
		HomeType:           domain.HomeType(q.HomeType),
		RoomCount:          q.RoomCount,
		SquareFeet:         q.SquareFeet,
		StairsPickup:       q.StairsPickup,
		StairsDropoff:      q.StairsDropoff,
		ElevatorPickup:     q.ElevatorPickup,
		ElevatorDropoff:    q.ElevatorDropoff,
		HeavyItems:         heavy,
		AdditionalServices: services,
	}
}
