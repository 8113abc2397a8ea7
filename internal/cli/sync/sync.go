package sync

import (
	"errors"
	"fmt"

	"github.com/a3faarms/petboarding/internal/cli"
	"github.com/a3faarms/petboarding/internal/constants"
	"github.com/a3faarms/petboarding/internal/keyring"
)

// SetKeyCmd stores the remote sync API key in the OS keyring
type SetKeyCmd struct {
	Key string `arg:"" help:"API key for the hosted bookings table."`
}

func (cmd *SetKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetSyncKey(cmd.Key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}

	fmt.Println("✓ API key stored successfully in OS keyring")
	fmt.Printf("  Set %s to finish configuring sync\n", constants.EnvSyncURL)
	return nil
}

// ClearKeyCmd removes the remote sync API key from the OS keyring
type ClearKeyCmd struct{}

func (cmd *ClearKeyCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteSyncKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}

	fmt.Println("✓ API key deleted from OS keyring")
	return nil
}

// StatusCmd reports whether remote sync is usable
type StatusCmd struct{}

func (cmd *StatusCmd) Run(ctx *cli.Context) error {
	if ctx.Remote.Configured() {
		fmt.Println("✓ Remote sync is configured")
	} else {
		fmt.Printf("ℹ Remote sync is not configured (set %s and an API key)\n", constants.EnvSyncURL)
	}

	if keyring.IsAvailable() {
		fmt.Println("✓ OS keyring is available")

		_, err := keyring.GetSyncKey()
		if err == nil {
			fmt.Println("✓ API key is stored in keyring")
		} else if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("ℹ No API key stored in keyring")
		}
	} else {
		fmt.Println("❌ OS keyring is not available on this system")
	}

	return nil
}
