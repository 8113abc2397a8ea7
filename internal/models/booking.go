package models

import "time"

type PetType string

const (
	PetTypeCat PetType = "cat"
	PetTypeDog PetType = "dog"
)

// Valid reports whether p is one of the known pet types.
func (p PetType) Valid() bool {
	return p == PetTypeCat || p == PetTypeDog
}

// Booking is one pet's reservation record. A booking is created only through
// the store's add operation and is never mutated in place; the only way to
// change one is to delete it and create a replacement.
type Booking struct {
	ID         string    `json:"id"`
	PetName    string    `json:"pet_name"`
	PetType    PetType   `json:"pet_type"`
	OwnerName  string    `json:"owner_name"`
	OwnerPhone string    `json:"owner_phone"`
	CheckIn    Date      `json:"check_in"`
	CheckOut   Date      `json:"check_out"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Covers reports whether the booking occupies a space on the given date.
// The check-in day is inclusive and the check-out day is exclusive: a pet
// departing on day D does not occupy a space on day D.
func (b Booking) Covers(d Date) bool {
	return !d.Before(b.CheckIn) && d.Before(b.CheckOut)
}

// BookingFormData carries the caller-supplied fields for a new booking.
// The id and creation timestamp are assigned by the store.
type BookingFormData struct {
	PetName    string
	PetType    PetType
	OwnerName  string
	OwnerPhone string
	CheckIn    Date
	CheckOut   Date
	Notes      string
}

// CapacityCount is the number of active bookings per pet type covering a
// given date.
type CapacityCount struct {
	Cats int
	Dogs int
}
