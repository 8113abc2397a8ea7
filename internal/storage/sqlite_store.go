package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/a3faarms/petboarding/internal/logger"
	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/query"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id          TEXT PRIMARY KEY,
	pet_name    TEXT NOT NULL,
	pet_type    TEXT NOT NULL,
	owner_name  TEXT NOT NULL,
	owner_phone TEXT NOT NULL,
	check_in    TEXT NOT NULL,
	check_out   TEXT NOT NULL,
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
`

// SQLiteStore is the alternative provider for users who prefer a database
// file over the flat JSON layout. Dates are stored as YYYY-MM-DD text so the
// persisted form stays calendar-date, never an instant. Row order (rowid)
// preserves insertion order.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.open()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddBooking(data models.BookingFormData) (models.Booking, error) {
	if s.db == nil {
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

	_, err := s.db.Exec(`
		INSERT INTO bookings (id, pet_name, pet_type, owner_name, owner_phone, check_in, check_out, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		booking.ID, booking.PetName, string(booking.PetType), booking.OwnerName, booking.OwnerPhone,
		booking.CheckIn.String(), booking.CheckOut.String(), booking.Notes,
		booking.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		// Write failure is logged, not surfaced; the caller's view of the
		// session continues from the value returned here.
		logger.Error("Failed to persist booking", "id", booking.ID, "error", err)
	}

	return booking, nil
}

func (s *SQLiteStore) DeleteBooking(id string) error {
	if s.db == nil {
		return errNotLoaded
	}

	// Deleting an unknown id affects zero rows, which is exactly the
	// required no-op.
	if _, err := s.db.Exec(`DELETE FROM bookings WHERE id = ?`, id); err != nil {
		logger.Error("Failed to delete booking", "id", id, "error", err)
	}
	return nil
}

func (s *SQLiteStore) GetBooking(id string) (models.Booking, error) {
	if s.db == nil {
		return models.Booking{}, errNotLoaded
	}

	row := s.db.QueryRow(`
		SELECT id, pet_name, pet_type, owner_name, owner_phone, check_in, check_out, notes, created_at
		FROM bookings WHERE id = ?`, id)

	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return models.Booking{}, fmt.Errorf("booking not found: %s", id)
	}
	return booking, err
}

func (s *SQLiteStore) AllBookings() ([]models.Booking, error) {
	if s.db == nil {
		return nil, errNotLoaded
	}

	rows, err := s.db.Query(`
		SELECT id, pet_name, pet_type, owner_name, owner_phone, check_in, check_out, notes, created_at
		FROM bookings ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (s *SQLiteStore) CapacityOn(date models.Date) (models.CapacityCount, error) {
	bookings, err := s.AllBookings()
	if err != nil {
		return models.CapacityCount{}, err
	}
	return query.Capacity(bookings, date), nil
}

func (s *SQLiteStore) BookingsOn(date models.Date) ([]models.Booking, error) {
	bookings, err := s.AllBookings()
	if err != nil {
		return nil, err
	}
	return query.CoveringDate(bookings, date), nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func scanBooking(scan func(dest ...any) error) (models.Booking, error) {
	var b models.Booking
	var petType, checkIn, checkOut, createdAt string

	if err := scan(&b.ID, &b.PetName, &petType, &b.OwnerName, &b.OwnerPhone,
		&checkIn, &checkOut, &b.Notes, &createdAt); err != nil {
		return models.Booking{}, err
	}

	b.PetType = models.PetType(petType)

	var err error
	if b.CheckIn, err = models.ParseDate(checkIn); err != nil {
		return models.Booking{}, fmt.Errorf("bad check_in for booking %s: %w", b.ID, err)
	}
	if b.CheckOut, err = models.ParseDate(checkOut); err != nil {
		return models.Booking{}, fmt.Errorf("bad check_out for booking %s: %w", b.ID, err)
	}
	if b.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Booking{}, fmt.Errorf("bad created_at for booking %s: %w", b.ID, err)
	}

	return b, nil
}
