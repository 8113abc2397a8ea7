package bookings

import (
	"fmt"

	"github.com/a3faarms/petboarding/internal/cli"
	"github.com/a3faarms/petboarding/internal/models"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	today := models.Today()

	onSite, err := ctx.Store.BookingsOn(today)
	if err != nil {
		return err
	}

	if len(onSite) == 0 {
		fmt.Println("No pets boarding today.")
		return nil
	}

	fmt.Printf("Boarding today (%s):\n", today)
	for _, b := range onSite {
		fmt.Printf("  %-12s %-4s %s  owner: %s\n", b.PetName, b.PetType, cli.FormatStay(b), b.OwnerName)
	}

	return nil
}
