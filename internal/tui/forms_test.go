package tui

import (
	"strings"
	"testing"

	"github.com/a3faarms/petboarding/internal/models"
)

func TestBookingFormModelFormData(t *testing.T) {
	fm := &BookingFormModel{
		PetName:    "  Whiskers ",
		PetType:    models.PetTypeCat,
		OwnerName:  "Dana Reyes",
		OwnerPhone: "555-0142",
		CheckIn:    "2024-03-01",
		CheckOut:   "2024-03-05",
		Notes:      " grain-free diet ",
	}

	data, err := fm.FormData()
	if err != nil {
		t.Fatalf("FormData() error = %v", err)
	}
	if data.PetName != "Whiskers" {
		t.Errorf("PetName = %q, want trimmed Whiskers", data.PetName)
	}
	if data.Notes != "grain-free diet" {
		t.Errorf("Notes = %q, want trimmed", data.Notes)
	}
	if data.CheckIn.Compare(models.NewDate(2024, 3, 1)) != 0 {
		t.Errorf("CheckIn = %s, want 2024-03-01", data.CheckIn)
	}
	if data.CheckOut.Compare(models.NewDate(2024, 3, 5)) != 0 {
		t.Errorf("CheckOut = %s, want 2024-03-05", data.CheckOut)
	}
}

func TestBookingFormModelFormDataBadDates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"bad check-in", "yesterday", "2024-03-05"},
		{"bad check-out", "2024-03-01", "next week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := &BookingFormModel{
				PetName:  "Rex",
				PetType:  models.PetTypeDog,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			}
			if _, err := fm.FormData(); err == nil {
				t.Error("FormData() = nil error, want parse failure")
			}
		})
	}
}

func TestRequireText(t *testing.T) {
	validate := requireText("owner name")

	if err := validate("Dana"); err != nil {
		t.Errorf("validate(Dana) error = %v", err)
	}
	err := validate("   ")
	if err == nil {
		t.Fatal("validate(blank) = nil, want error")
	}
	if !strings.Contains(err.Error(), "owner name") {
		t.Errorf("error %q should name the field", err)
	}
}

func TestRequireDate(t *testing.T) {
	if err := requireDate(" 2024-03-01 "); err != nil {
		t.Errorf("requireDate(valid) error = %v", err)
	}
	if err := requireDate("03/01/2024"); err == nil {
		t.Error("requireDate(US format) = nil, want error")
	}
}
