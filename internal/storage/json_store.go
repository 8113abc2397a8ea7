package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/a3faarms/petboarding/internal/logger"
	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/query"
)

// Store is the persisted file layout: the whole booking collection as one
// array under a fixed key, rewritten in full on every mutation.
type Store struct {
	Version  int              `json:"version"`
	Bookings []models.Booking `json:"bookings"`
}

// JSONStore keeps the booking collection in memory and mirrors it to a
// single JSON file. The in-memory slice is authoritative for the session; a
// failed write is logged and the session carries on.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{Version: 1, Bookings: []models.Booking{}}
	return s.save()
}

// Load reads the persisted collection. A missing file or an unparseable one
// is not fatal: the store falls back to an empty collection, logging the
// problem, and the session continues.
func (s *JSONStore) Load() error {
	s.store = &Store{Version: 1, Bookings: []models.Booking{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error("Failed to read bookings file, starting empty", "path", s.path, "error", err)
		}
		return nil
	}

	var loaded Store
	if err := json.Unmarshal(data, &loaded); err != nil {
		logger.Error("Failed to parse bookings file, starting empty", "path", s.path, "error", err)
		return nil
	}
	if loaded.Bookings == nil {
		loaded.Bookings = []models.Booking{}
	}
	s.store = &loaded

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save rewrites the whole collection. Callers that must not fail on a write
// error (the mutators) log instead of propagating.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize bookings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write bookings: %w", err)
	}

	return nil
}

// persist saves and logs on failure. The in-memory collection stays
// authoritative for the session either way.
func (s *JSONStore) persist() {
	if err := s.save(); err != nil {
		logger.Error("Failed to persist bookings", "path", s.path, "error", err)
	}
}

func (s *JSONStore) AddBooking(data models.BookingFormData) (models.Booking, error) {
	if s.store == nil {
		return models.Booking{}, errNotLoaded
	}

	booking := models.Booking{
		ID:         uuid.New().String(),
		PetName:    data.PetName,
		PetType:    data.PetType,
		OwnerName:  data.OwnerName,
		OwnerPhone: data.OwnerPhone,
		CheckIn:    data.CheckIn,
		CheckOut:   data.CheckOut,
		Notes:      data.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	s.store.Bookings = append(s.store.Bookings, booking)
	s.persist()
	return booking, nil
}

func (s *JSONStore) DeleteBooking(id string) error {
	if s.store == nil {
		return errNotLoaded
	}

	kept := s.store.Bookings[:0]
	for _, b := range s.store.Bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(s.store.Bookings) {
		// Unknown id: a no-op, not an error.
		return nil
	}

	s.store.Bookings = kept
	s.persist()
	return nil
}

func (s *JSONStore) GetBooking(id string) (models.Booking, error) {
	if s.store == nil {
		return models.Booking{}, errNotLoaded
	}

	for _, b := range s.store.Bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, fmt.Errorf("booking not found: %s", id)
}

func (s *JSONStore) AllBookings() ([]models.Booking, error) {
	if s.store == nil {
		return nil, errNotLoaded
	}

	out := make([]models.Booking, len(s.store.Bookings))
	copy(out, s.store.Bookings)
	return out, nil
}

func (s *JSONStore) CapacityOn(date models.Date) (models.CapacityCount, error) {
	if s.store == nil {
		return models.CapacityCount{}, errNotLoaded
	}
	return query.Capacity(s.store.Bookings, date), nil
}

func (s *JSONStore) BookingsOn(date models.Date) ([]models.Booking, error) {
	if s.store == nil {
		return nil, errNotLoaded
	}
	return query.CoveringDate(s.store.Bookings, date), nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
