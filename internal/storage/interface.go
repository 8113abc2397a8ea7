package storage

import (
	"errors"

	"github.com/a3faarms/petboarding/internal/models"
)

// errNotLoaded guards operations called before Load.
var errNotLoaded = errors.New("storage not loaded")

// Provider is the single owner of the booking collection and its
// persistence. It is constructed once at startup and injected into every
// command and view that needs it; nothing else writes persisted state.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Mutations. AddBooking assigns the id and creation timestamp; the
	// store performs no field validation (that is the form's job).
	AddBooking(data models.BookingFormData) (models.Booking, error)
	// DeleteBooking removes the booking with the given id. Deleting an
	// unknown id is silently a no-op, not an error.
	DeleteBooking(id string) error

	// Queries. Results are copies; callers never hold a reference that can
	// mutate the canonical collection.
	GetBooking(id string) (models.Booking, error)
	AllBookings() ([]models.Booking, error)
	CapacityOn(date models.Date) (models.CapacityCount, error)
	BookingsOn(date models.Date) ([]models.Booking, error)

	// Utils
	GetConfigPath() string
}
