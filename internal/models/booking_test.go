package models

import (
	"testing"
	"time"
)

func TestBookingCovers(t *testing.T) {
	booking := Booking{
		ID:       "b1",
		PetName:  "Whiskers",
		PetType:  PetTypeCat,
		CheckIn:  NewDate(2024, time.March, 1),
		CheckOut: NewDate(2024, time.March, 5),
	}

	tests := []struct {
		name string
		date Date
		want bool
	}{
		{
			name: "check-in day is counted",
			date: NewDate(2024, time.March, 1),
			want: true,
		},
		{
			name: "middle of the stay is counted",
			date: NewDate(2024, time.March, 4),
			want: true,
		},
		{
			name: "check-out day is not counted",
			date: NewDate(2024, time.March, 5),
			want: false,
		},
		{
			name: "day before check-in is not counted",
			date: NewDate(2024, time.February, 29),
			want: false,
		},
		{
			name: "day after check-out is not counted",
			date: NewDate(2024, time.March, 6),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := booking.Covers(tt.date); got != tt.want {
				t.Errorf("Covers(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestPetTypeValid(t *testing.T) {
	tests := []struct {
		pt   PetType
		want bool
	}{
		{PetTypeCat, true},
		{PetTypeDog, true},
		{PetType("hamster"), false},
		{PetType(""), false},
	}

	for _, tt := range tests {
		if got := tt.pt.Valid(); got != tt.want {
			t.Errorf("PetType(%q).Valid() = %v, want %v", tt.pt, got, tt.want)
		}
	}
}
