package storage

import (
	"path/filepath"
	"testing"

	"github.com/a3faarms/petboarding/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bookings.db"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	added, err := store.AddBooking(testFormData("Whiskers", models.PetTypeCat))
	if err != nil {
		t.Fatalf("AddBooking() error = %v", err)
	}

	got, err := store.GetBooking(added.ID)
	if err != nil {
		t.Fatalf("GetBooking() error = %v", err)
	}
	if got.PetName != "Whiskers" || got.PetType != models.PetTypeCat {
		t.Errorf("pet = %s/%s, want Whiskers/cat", got.PetName, got.PetType)
	}
	if got.CheckIn.Compare(added.CheckIn) != 0 || got.CheckOut.Compare(added.CheckOut) != 0 {
		t.Errorf("dates = %s..%s, want %s..%s", got.CheckIn, got.CheckOut, added.CheckIn, added.CheckOut)
	}
	if got.OwnerPhone != "555-0142" || got.Notes != "grain-free diet" {
		t.Errorf("owner/notes round-trip lost data: %+v", got)
	}
}

func TestSQLiteStorePreservesInsertionOrder(t *testing.T) {
	store := newTestSQLiteStore(t)

	first, _ := store.AddBooking(testFormData("Rex", models.PetTypeDog))
	second, _ := store.AddBooking(testFormData("Mittens", models.PetTypeCat))

	all, err := store.AllBookings()
	if err != nil {
		t.Fatalf("AllBookings() error = %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Errorf("AllBookings() order = %v, want [%s %s]", all, first.ID, second.ID)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	store := newTestSQLiteStore(t)

	added, _ := store.AddBooking(testFormData("Rex", models.PetTypeDog))

	if err := store.DeleteBooking("no-such-id"); err != nil {
		t.Errorf("DeleteBooking(unknown) error = %v, want nil", err)
	}
	if err := store.DeleteBooking(added.ID); err != nil {
		t.Fatalf("DeleteBooking() error = %v", err)
	}

	all, _ := store.AllBookings()
	if len(all) != 0 {
		t.Errorf("AllBookings() after delete = %v, want empty", all)
	}
	if _, err := store.GetBooking(added.ID); err == nil {
		t.Error("GetBooking() of deleted booking returned nil error")
	}
}

func TestSQLiteStoreCapacityOn(t *testing.T) {
	store := newTestSQLiteStore(t)

	store.AddBooking(testFormData("Whiskers", models.PetTypeCat))
	store.AddBooking(testFormData("Rex", models.PetTypeDog))

	count, err := store.CapacityOn(models.NewDate(2024, 3, 3))
	if err != nil {
		t.Fatalf("CapacityOn() error = %v", err)
	}
	if count.Cats != 1 || count.Dogs != 1 {
		t.Errorf("CapacityOn(2024-03-03) = %+v, want 1 cat 1 dog", count)
	}

	count, _ = store.CapacityOn(models.NewDate(2024, 3, 5))
	if count.Cats != 0 || count.Dogs != 0 {
		t.Errorf("CapacityOn(check-out day) = %+v, want zero", count)
	}
}

func TestSQLiteStoreNotLoaded(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "bookings.db"))

	if _, err := store.AllBookings(); err == nil {
		t.Error("AllBookings() before Load() returned nil error")
	}
	if err := store.DeleteBooking("x"); err == nil {
		t.Error("DeleteBooking() before Load() returned nil error")
	}
}
