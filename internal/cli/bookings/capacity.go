package bookings

import (
	"fmt"

	"github.com/a3faarms/petboarding/internal/cli"
	"github.com/a3faarms/petboarding/internal/constants"
)

type CapacityCmd struct {
	Date string `short:"d" help:"Date to check (YYYY-MM-DD, default today)."`
}

func (c *CapacityCmd) Run(ctx *cli.Context) error {
	date, err := cli.ParseDateArg(c.Date)
	if err != nil {
		return err
	}

	count, err := ctx.Store.CapacityOn(date)
	if err != nil {
		return err
	}

	fmt.Printf("Occupancy on %s:\n", date)
	fmt.Printf("  Cat rooms:  %d/%d\n", count.Cats, constants.CatRoomsTotal)
	fmt.Printf("  Dog spaces: %d/%d\n", count.Dogs, constants.DogSpacesTotal)

	if count.Cats >= constants.CatRoomsTotal {
		fmt.Println("  ⚠ Cat rooms are full")
	}
	if count.Dogs >= constants.DogSpacesTotal {
		fmt.Println("  ⚠ Dog spaces are full")
	}

	return nil
}
