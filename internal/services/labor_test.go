package services

import (
	"testing"

	"moving-quote-service/internal/domain"
)

func TestBaseLaborHours(t *testing.T) {
	cases := []struct {
		rooms int
		want  float64
	}{
		{-1, 2.0},
		{0, 2.0},
		{1, 3.0},
		{3, 5.0},
		{7, 9.5},
		{8, 10.0},
		{25, 10.0},
	}

	for _, c := range cases {
		if got := BaseLaborHours(c.rooms); got != c.want {
			t.Errorf("BaseLaborHours(%d) = %v, want %v", c.rooms, got, c.want)
		}
	}
}

func TestBaseLaborHoursMonotone(t *testing.T) {
	prev := BaseLaborHours(0)
	for rooms := 1; rooms <= 12; rooms++ {
		got := BaseLaborHours(rooms)
		if got < prev {
			t.Fatalf("BaseLaborHours(%d) = %v decreased below %v", rooms, got, prev)
		}
		prev = got
	}
}

func TestStairTime(t *testing.T) {
	if got := StairTime(2, 1); got != 0.75 {
		t.Errorf("StairTime(2, 1) = %v, want 0.75", got)
	}
	if got := StairTime(0, 0); got != 0 {
		t.Errorf("StairTime(0, 0) = %v, want 0", got)
	}
	if got := StairTime(-3, 2); got != 0.5 {
		t.Errorf("StairTime(-3, 2) = %v, want 0.5 (negative flights ignored)", got)
	}
}

func TestElevatorTime(t *testing.T) {
	if got := ElevatorTime(true, true); got != 1.0 {
		t.Errorf("ElevatorTime(true, true) = %v, want 1.0", got)
	}
	if got := ElevatorTime(true, false); got != 0.5 {
		t.Errorf("ElevatorTime(true, false) = %v, want 0.5", got)
	}
	if got := ElevatorTime(false, false); got != 0 {
		t.Errorf("ElevatorTime(false, false) = %v, want 0", got)
	}
}

func TestSqftAdjustment(t *testing.T) {
	cases := []struct {
		sqft int
		want float64
	}{
		{0, 0},
		{1000, 0},
		{1001, 0.5}, // a started step counts in full
		{1500, 0.5},
		{1501, 1.0},
		{3000, 2.0},
	}

	for _, c := range cases {
		if got := SqftAdjustment(c.sqft); got != c.want {
			t.Errorf("SqftAdjustment(%d) = %v, want %v", c.sqft, got, c.want)
		}
	}
}

func TestTotalLaborHoursFloor(t *testing.T) {
	req := domain.MoveRequest{HomeType: domain.HomeApartment, RoomCount: 0}

	for _, mult := range []float64{0, 0.1, 1.0, 1.2} {
		if got := TotalLaborHours(req, mult, 2.0); got < 2.0 {
			t.Errorf("TotalLaborHours(multiplier=%v) = %v, below the 2.0 floor", mult, got)
		}
	}
}

func TestTotalLaborHoursResidential(t *testing.T) {
	req := domain.MoveRequest{
		HomeType:       domain.HomeHouse,
		RoomCount:      6,
		StairsPickup:   2,
		ElevatorPickup: true,
	}

	// 8.5 base + 0.5 stairs + 0.5 elevator
	if got := TotalLaborHours(req, 1.0, 2.0); got != 9.5 {
		t.Errorf("TotalLaborHours = %v, want 9.5", got)
	}

	// Multiplier applies to the adjusted hours, before the floor.
	if got := TotalLaborHours(req, 1.2, 2.0); got != 9.5*1.2 {
		t.Errorf("TotalLaborHours with multiplier = %v, want %v", got, 9.5*1.2)
	}
}

func TestTotalLaborHoursCommercial(t *testing.T) {
	req := domain.MoveRequest{HomeType: domain.HomeCommercial, SquareFeet: 2000}

	// 4.0 commercial base + 1.0 for two started 500 sqft steps above 1000.
	if got := TotalLaborHours(req, 1.0, 2.0); got != 5.0 {
		t.Errorf("TotalLaborHours commercial = %v, want 5.0", got)
	}
}
