package bookings

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/a3faarms/petboarding/internal/cli"
	"github.com/a3faarms/petboarding/internal/constants"
	"github.com/a3faarms/petboarding/internal/remote"
)

// GuidedCmd walks through the booking questions one at a time and submits
// the answers straight to the remote table. Answers are captured loosely,
// as spoken; the hosted table is the validator of record for this pathway.
type GuidedCmd struct{}

func (c *GuidedCmd) Run(ctx *cli.Context) error {
	if !ctx.Remote.Configured() {
		return fmt.Errorf("remote sync is not configured; set %s and an API key", constants.EnvSyncURL)
	}

	var payload remote.Payload

	steps := []struct {
		question string
		value    *string
	}{
		{"What's your pet's name?", &payload.PetName},
		{"Who is the owner?", &payload.OwnerName},
		{"What's the owner's phone number?", &payload.OwnerPhone},
		{"What is the start date? Say in YYYY-MM-DD format.", &payload.StartDate},
		{"What is the end date? Say in YYYY-MM-DD format.", &payload.EndDate},
		{"What kind of pet is it? Dog, cat, etc.?", &payload.PetType},
		{"Any special instructions?", &payload.SpecialNotes},
	}

	groups := make([]*huh.Group, 0, len(steps))
	for _, step := range steps {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title(step.question).Value(step.value),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		if err == huh.ErrUserAborted {
			fmt.Println("Booking cancelled.")
			return nil
		}
		return err
	}

	fmt.Println("Submitting your booking now.")
	result := ctx.Remote.InsertBooking(context.Background(), payload)
	if result.Success {
		fmt.Println("Your booking has been confirmed. Thank you!")
		return nil
	}

	fmt.Printf("Something went wrong while booking: %v. Please try again.\n", result.Err)
	return nil
}
