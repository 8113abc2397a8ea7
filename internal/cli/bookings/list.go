package bookings

import (
	"fmt"
	"strings"

	"github.com/a3faarms/petboarding/internal/cli"
	"github.com/a3faarms/petboarding/internal/models"
	"github.com/a3faarms/petboarding/internal/query"
)

type ListCmd struct {
	Search   string `short:"s" help:"Filter by pet name, owner name, or pet type (case-insensitive substring)."`
	Category string `short:"c" help:"Category filter (all|active|upcoming|cat|dog)." default:"all"`
}

func (c *ListCmd) Validate() error {
	if _, err := query.ParseCategory(c.Category); err != nil {
		return err
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	bookings, err := ctx.Store.AllBookings()
	if err != nil {
		return err
	}

	category, _ := query.ParseCategory(c.Category)
	filtered := query.Apply(bookings, c.Search, category, models.Today())

	if len(filtered) == 0 {
		if len(bookings) == 0 {
			fmt.Println("No bookings yet.")
		} else {
			fmt.Println("No bookings match the current filters.")
		}
		return nil
	}

	for _, b := range filtered {
		line := fmt.Sprintf("%-12s %-4s %s  %s  owner: %s (%s)",
			b.PetName, b.PetType, cli.FormatStay(b), shortID(b.ID), b.OwnerName, b.OwnerPhone)
		if b.Notes != "" {
			line += "  - " + b.Notes
		}
		fmt.Println(line)
	}
	fmt.Printf("\n%d booking(s)\n", len(filtered))

	return nil
}

// shortID shows enough of a UUID to pass back to delete.
func shortID(id string) string {
	if i := strings.Index(id, "-"); i > 0 {
		return id[:i]
	}
	return id
}
