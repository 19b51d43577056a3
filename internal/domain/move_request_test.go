package domain

import (
	"reflect"
	"testing"
	"time"
)

func completeRequest() MoveRequest {
	return MoveRequest{
		OriginAddress:      "100 N 1st St, Phoenix, AZ",
		DestinationAddress: "200 E Oak St, Tempe, AZ",
		MoveDate:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeOfDay:          TimeMorning,
		HomeType:           HomeHouse,
		RoomCount:          3,
	}
}

func TestMissingFieldsComplete(t *testing.T) {
	if missing := completeRequest().MissingFields(); len(missing) != 0 {
		t.Errorf("complete request reported missing fields: %v", missing)
	}
}

func TestMissingFieldsAggregates(t *testing.T) {
	got := MoveRequest{}.MissingFields()
	want := []string{"origin_address", "destination_address", "move_date", "move_time", "home_type"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("missing = %v, want %v", got, want)
	}
}

func TestMissingFieldsSizeByHomeType(t *testing.T) {
	cases := []struct {
		name string
		edit func(*MoveRequest)
		want []string
	}{
		{
			name: "whitespace address",
			edit: func(r *MoveRequest) { r.OriginAddress = "   " },
			want: []string{"origin_address"},
		},
		{
			name: "residential without rooms",
			edit: func(r *MoveRequest) { r.RoomCount = 0 },
			want: []string{"room_count"},
		},
		{
			name: "commercial without floor area",
			edit: func(r *MoveRequest) { r.HomeType = HomeCommercial },
			want: []string{"square_feet"},
		},
		{
			name: "commercial ignores room count",
			edit: func(r *MoveRequest) {
				r.HomeType = HomeCommercial
				r.RoomCount = 0
				r.SquareFeet = 1200
			},
			want: nil,
		},
		{
			name: "unknown home type",
			edit: func(r *MoveRequest) { r.HomeType = "yurt" },
			want: []string{"home_type"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := completeRequest()
			c.edit(&req)
			if got := req.MissingFields(); !reflect.DeepEqual(got, c.want) {
				t.Errorf("missing = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIsCommercial(t *testing.T) {
	if (MoveRequest{HomeType: HomeHouse}).IsCommercial() {
		t.Error("house reported as commercial")
	}
	if !(MoveRequest{HomeType: HomeCommercial}).IsCommercial() {
		t.Error("commercial not detected")
	}
}
