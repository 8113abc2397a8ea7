package bookings

import (
	"fmt"
	"strings"

	"github.com/a3faarms/petboarding/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Booking ID (a unique prefix is enough)."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	bookings, err := ctx.Store.AllBookings()
	if err != nil {
		return err
	}

	// Resolve a prefix to a full id; an unmatched id is reported but is not
	// an error.
	var matches []string
	for _, b := range bookings {
		if strings.HasPrefix(b.ID, c.ID) {
			matches = append(matches, b.ID)
		}
	}
	switch len(matches) {
	case 0:
		fmt.Printf("No booking with ID %s\n", c.ID)
		return nil
	case 1:
	default:
		return fmt.Errorf("booking ID %s is ambiguous (%d matches)", c.ID, len(matches))
	}

	booking, err := ctx.Store.GetBooking(matches[0])
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteBooking(matches[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted booking for %s (%s)\n", booking.PetName, cli.FormatStay(booking))
	return nil
}
