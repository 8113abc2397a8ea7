package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/a3faarms/petboarding/internal/cli"
	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/remote"
)

type AddCmd struct {
	PetName    string `arg:"" help:"Name of the pet."`
	PetType    string `short:"t" help:"Pet type (cat|dog)." required:""`
	Owner      string `short:"o" help:"Owner's name." required:""`
	Phone      string `short:"p" help:"Owner's phone number." required:""`
	CheckIn    string `short:"i" help:"Check-in date (YYYY-MM-DD)." required:""`
	CheckOut   string `short:"c" help:"Check-out date (YYYY-MM-DD)." required:""`
	Notes      string `short:"n" help:"Special notes (diet, medication, behavior)."`
	SkipRemote bool   `help:"Do not sync the booking to the remote table."`
}

func (c *AddCmd) Validate() error {
	if strings.TrimSpace(c.PetName) == "" {
		return fmt.Errorf("pet name must not be empty")
	}
	if !models.PetType(c.PetType).Valid() {
		return fmt.Errorf("pet type must be cat or dog")
	}
	if strings.TrimSpace(c.Owner) == "" {
		return fmt.Errorf("owner name must not be empty")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("owner phone must not be empty")
	}

	checkIn, err := models.ParseDate(c.CheckIn)
	if err != nil {
		return fmt.Errorf("invalid check-in date %q (expected YYYY-MM-DD)", c.CheckIn)
	}
	checkOut, err := models.ParseDate(c.CheckOut)
	if err != nil {
		return fmt.Errorf("invalid check-out date %q (expected YYYY-MM-DD)", c.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("check-out must be after check-in")
	}

	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	checkIn, _ := models.ParseDate(c.CheckIn)
	checkOut, _ := models.ParseDate(c.CheckOut)

	data := models.BookingFormData{
		PetName:    strings.TrimSpace(c.PetName),
		PetType:    models.PetType(c.PetType),
		OwnerName:  strings.TrimSpace(c.Owner),
		OwnerPhone: strings.TrimSpace(c.Phone),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Notes:      strings.TrimSpace(c.Notes),
	}

	booking, err := ctx.Store.AddBooking(data)
	if err != nil {
		return err
	}

	fmt.Printf("Added booking for %s (%s), %s\n", booking.PetName, booking.PetType, cli.FormatStay(booking))

	if !c.SkipRemote && ctx.Remote.Configured() {
		result := ctx.Remote.InsertBooking(context.Background(), remote.PayloadFromForm(data))
		if result.Success {
			fmt.Println("✓ Synced to remote")
		} else {
			fmt.Printf("⚠ Remote sync failed: %v (booking saved locally)\n", result.Err)
		}
	}

	return nil
}
