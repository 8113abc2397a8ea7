package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/a3faarms/petboarding/internal/models"
)

// BookingFormModel represents the form model for booking creation. Dates are
// captured as text and parsed on completion; the cross-field check runs in
// the check-out validator so the user sees it before submitting.
type BookingFormModel struct {
	PetName    string
	PetType    models.PetType
	OwnerName  string
	OwnerPhone string
	CheckIn    string
	CheckOut   string
	Notes      string
}

// NewBookingForm creates the booking creation form
func NewBookingForm(fm *BookingFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pet Name").
				Value(&fm.PetName).
				Validate(requireText("pet name")),
			huh.NewSelect[models.PetType]().
				Title("Pet Type").
				Options(
					huh.NewOption("Cat", models.PetTypeCat),
					huh.NewOption("Dog", models.PetTypeDog),
				).
				Value(&fm.PetType),
			huh.NewInput().
				Title("Owner Name").
				Value(&fm.OwnerName).
				Validate(requireText("owner name")),
			huh.NewInput().
				Title("Owner Phone").
				Value(&fm.OwnerPhone).
				Validate(requireText("owner phone")),
			huh.NewInput().
				Title("Check-in (YYYY-MM-DD)").
				Value(&fm.CheckIn).
				Validate(requireDate),
			huh.NewInput().
				Title("Check-out (YYYY-MM-DD)").
				Value(&fm.CheckOut).
				Validate(func(s string) error {
					if err := requireDate(s); err != nil {
						return err
					}
					checkIn, err := models.ParseDate(strings.TrimSpace(fm.CheckIn))
					if err != nil {
						// Check-in has its own validator.
						return nil
					}
					checkOut, _ := models.ParseDate(strings.TrimSpace(s))
					if !checkOut.After(checkIn) {
						return fmt.Errorf("check-out must be after check-in")
					}
					return nil
				}),
			huh.NewText().
				Title("Special Notes").
				Description("Diet, medication, behavior (optional)").
				Value(&fm.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func requireDate(s string) error {
	if _, err := models.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected a date in YYYY-MM-DD format")
	}
	return nil
}

// FormData converts the completed form into the store's input type.
func (fm *BookingFormModel) FormData() (models.BookingFormData, error) {
	checkIn, err := models.ParseDate(strings.TrimSpace(fm.CheckIn))
	if err != nil {
		return models.BookingFormData{}, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := models.ParseDate(strings.TrimSpace(fm.CheckOut))
	if err != nil {
		return models.BookingFormData{}, fmt.Errorf("invalid check-out date: %w", err)
	}

	return models.BookingFormData{
		PetName:    strings.TrimSpace(fm.PetName),
		PetType:    fm.PetType,
		OwnerName:  strings.TrimSpace(fm.OwnerName),
		OwnerPhone: strings.TrimSpace(fm.OwnerPhone),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Notes:      strings.TrimSpace(fm.Notes),
	}, nil
}
